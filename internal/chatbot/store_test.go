package chatbot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrarent/vastra-rental-be/internal/kvstore"
)

func testStore(t *testing.T) *ConversationStore {
	t.Helper()
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "chat.db"), StoragePrefix)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return NewConversationStore(kv)
}

func TestStoreLoadEmptySession(t *testing.T) {
	s := testStore(t)

	log, err := s.Load("never-seen")
	require.NoError(t, err)
	assert.Empty(t, log)
	assert.NotNil(t, log)
}

func TestStoreAppendRoundTrip(t *testing.T) {
	s := testStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		sender := SenderUser
		if i%2 == 1 {
			sender = SenderBot
		}
		_, err := s.Append("s1", Message{
			Text:      "message",
			Sender:    sender,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	log, err := s.Load("s1")
	require.NoError(t, err)
	require.Len(t, log, 5)

	// insertion order survives the round trip
	for i := 1; i < len(log); i++ {
		assert.True(t, log[i].Timestamp.After(log[i-1].Timestamp))
	}
	assert.Equal(t, SenderUser, log[0].Sender)
	assert.Equal(t, SenderBot, log[1].Sender)
}

func TestStoreAppendPreservesQuickRepliesAndCards(t *testing.T) {
	s := testStore(t)

	msg := Message{
		Text:         "reply",
		Sender:       SenderBot,
		Timestamp:    time.Now().UTC(),
		QuickReplies: []string{"View Collections", "Contact Us"},
		Cards: []SuggestionCard{
			{Title: "Lehngas", Description: "Bridal lehngas", Price: "₹2,499 - ₹14,999/day", Action: ActionShowCategory, Query: "Show me the Lehngas collection"},
		},
	}
	_, err := s.Append("s1", msg)
	require.NoError(t, err)

	log, err := s.Load("s1")
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, msg.QuickReplies, log[0].QuickReplies)
	require.Len(t, log[0].Cards, 1)
	assert.Equal(t, "Lehngas", log[0].Cards[0].Title)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	s := testStore(t)

	_, err := s.Append("a", Message{Text: "for a", Sender: SenderUser, Timestamp: time.Now().UTC()})
	require.NoError(t, err)

	logB, err := s.Load("b")
	require.NoError(t, err)
	assert.Empty(t, logB)
}

func TestStoreClear(t *testing.T) {
	s := testStore(t)

	_, err := s.Append("s1", Message{Text: "hello", Sender: SenderUser, Timestamp: time.Now().UTC()})
	require.NoError(t, err)
	require.NoError(t, s.MarkRateReset("s1", time.Now().Add(time.Minute)))

	require.NoError(t, s.Clear("s1"))

	log, err := s.Load("s1")
	require.NoError(t, err)
	assert.Empty(t, log)

	// clearing an already-empty session is fine
	assert.NoError(t, s.Clear("s1"))
}
