package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrarent/vastra-rental-be/internal/chatbot"
	"github.com/vastrarent/vastra-rental-be/internal/kvstore"
)

// failingCompleter simulates a configured remote endpoint that always errors.
type failingCompleter struct{}

func (failingCompleter) Configured() bool { return true }
func (failingCompleter) Complete(context.Context, string) (chatbot.Response, error) {
	return chatbot.Response{}, errors.New("endpoint unreachable")
}

func newTestChatService(t *testing.T, limit int, remote chatbot.Completer) *ChatService {
	t.Helper()

	kb, err := chatbot.NewKBProvider("")
	require.NoError(t, err)
	t.Cleanup(kb.Close)

	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "chat.db"), chatbot.StoragePrefix)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return NewChatService(kb, chatbot.NewConversationStore(kv), chatbot.NewLimiter(limit), remote)
}

func TestSendPersistsUserThenBot(t *testing.T) {
	s := newTestChatService(t, 0, nil)

	result := s.Send(t.Context(), "s1", "what does a lehnga cost?")
	assert.False(t, result.RateLimited)
	assert.NotEmpty(t, result.Reply.Text)
	assert.Equal(t, chatbot.SenderBot, result.Reply.Sender)

	log, err := s.History("s1")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, chatbot.SenderUser, log[0].Sender)
	assert.Equal(t, "what does a lehnga cost?", log[0].Text)
	assert.Equal(t, chatbot.SenderBot, log[1].Sender)
	assert.Equal(t, result.Reply.Text, log[1].Text)
}

// A failing remote must be invisible: the reply equals what the local
// responder produces on its own.
func TestSendFallsBackWhenRemoteFails(t *testing.T) {
	withRemote := newTestChatService(t, 0, failingCompleter{})
	localOnly := newTestChatService(t, 0, nil)

	got := withRemote.Send(t.Context(), "s1", "how much is a saree rental?")
	want := localOnly.Send(t.Context(), "s1", "how much is a saree rental?")

	assert.Equal(t, want.Reply.Text, got.Reply.Text)
	assert.Equal(t, want.Reply.QuickReplies, got.Reply.QuickReplies)
}

func TestSendRateLimited(t *testing.T) {
	s := newTestChatService(t, 1, nil)

	first := s.Send(t.Context(), "s1", "hello")
	assert.False(t, first.RateLimited)

	second := s.Send(t.Context(), "s1", "hello again")
	assert.True(t, second.RateLimited)
	assert.Contains(t, second.Reply.Text, "too fast")

	// the limited message is not recorded as an exchange
	log, err := s.History("s1")
	require.NoError(t, err)
	assert.Len(t, log, 2)
}

func TestSendRateLimitSessionsIndependent(t *testing.T) {
	s := newTestChatService(t, 1, nil)

	assert.False(t, s.Send(t.Context(), "a", "hello").RateLimited)
	assert.True(t, s.Send(t.Context(), "a", "hello").RateLimited)
	assert.False(t, s.Send(t.Context(), "b", "hello").RateLimited)
}

func TestSendRoutesToTeamMember(t *testing.T) {
	s := newTestChatService(t, 0, nil)

	result := s.Send(t.Context(), "s1", "who is Sana Irani")
	assert.Contains(t, result.Reply.Text, "Sana Irani")
	assert.Contains(t, result.Reply.Text, "Head Stylist")
}

func TestClearHistory(t *testing.T) {
	s := newTestChatService(t, 0, nil)

	s.Send(t.Context(), "s1", "hello")
	require.NoError(t, s.ClearHistory("s1"))

	log, err := s.History("s1")
	require.NoError(t, err)
	assert.Empty(t, log)
}
