package chatbot

import (
	"fmt"
	"time"

	"github.com/vastrarent/vastra-rental-be/internal/kvstore"
)

// StoragePrefix namespaces every chatbot key so the chat store can share a
// file with unrelated state without collisions.
const StoragePrefix = "vastrabot"

// ConversationStore persists per-session message logs. Every append rewrites
// the whole log under one key; the log is small and never pruned, matching
// the storage behavior of the widget this replaces.
type ConversationStore struct {
	kv *kvstore.Store
}

func NewConversationStore(kv *kvstore.Store) *ConversationStore {
	return &ConversationStore{kv: kv}
}

func conversationKey(sessionID string) string {
	return "conversation:" + sessionID
}

func lastInteractionKey(sessionID string) string {
	return "last_interaction:" + sessionID
}

func rateResetKey(sessionID string) string {
	return "rate_reset:" + sessionID
}

// Load returns the session's message log in insertion order. A session with
// no history yields an empty slice.
func (s *ConversationStore) Load(sessionID string) ([]Message, error) {
	var log []Message
	ok, err := s.kv.Get(conversationKey(sessionID), &log)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Message{}, nil
	}
	return log, nil
}

// Append adds a message to the session log and persists the whole log plus
// the last-interaction timestamp. Returns the updated log.
func (s *ConversationStore) Append(sessionID string, msg Message) ([]Message, error) {
	log, err := s.Load(sessionID)
	if err != nil {
		return nil, err
	}

	log = append(log, msg)
	if err := s.kv.Set(conversationKey(sessionID), log); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}
	if err := s.kv.Set(lastInteractionKey(sessionID), msg.Timestamp); err != nil {
		return nil, fmt.Errorf("failed to persist last interaction: %w", err)
	}
	return log, nil
}

// MarkRateReset records when the session's rate-limit window resets.
func (s *ConversationStore) MarkRateReset(sessionID string, resetAt time.Time) error {
	return s.kv.Set(rateResetKey(sessionID), resetAt)
}

// Clear drops the session's log and markers.
func (s *ConversationStore) Clear(sessionID string) error {
	for _, key := range []string{conversationKey(sessionID), lastInteractionKey(sessionID), rateResetKey(sessionID)} {
		if err := s.kv.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
