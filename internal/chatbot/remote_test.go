package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteConfigSecure(t *testing.T) {
	assert.True(t, RemoteConfig{APIKey: "sk-x", Model: "gpt-4o-mini", MaxTokens: 300}.Secure())
	assert.False(t, RemoteConfig{Model: "gpt-4o-mini", MaxTokens: 300}.Secure())
	assert.False(t, RemoteConfig{APIKey: "sk-x", MaxTokens: 300}.Secure())
	assert.False(t, RemoteConfig{APIKey: "sk-x", Model: "gpt-4o-mini"}.Secure())
}

func TestUnconfiguredCompleterReturnsError(t *testing.T) {
	r := NewRemoteCompleter(RemoteConfig{}, DefaultKnowledgeBase())

	assert.False(t, r.Configured())
	_, err := r.Complete(t.Context(), "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDeriveQuickRepliesMatchesGroups(t *testing.T) {
	replies := DeriveQuickReplies("Our lehnga collection rents at great prices with free delivery.")
	assert.Equal(t, []string{"View Collections", "Rental Prices", "Delivery Info"}, replies)
}

func TestDeriveQuickRepliesCapsAtThree(t *testing.T) {
	replies := DeriveQuickReplies("collection price size delivery")
	assert.Len(t, replies, 3)
}

func TestDeriveQuickRepliesFallsBackToGeneric(t *testing.T) {
	replies := DeriveQuickReplies("Namaste! Happy to help.")
	assert.Equal(t, []string{"View Collections", "Rental Prices", "Contact Us"}, replies)
}

func TestBuildSystemPromptCarriesBusinessFacts(t *testing.T) {
	kb := DefaultKnowledgeBase()
	prompt := buildSystemPrompt(kb)

	require.Contains(t, prompt, kb.Company.Name)
	assert.Contains(t, prompt, kb.Contact.Phone)
	assert.Contains(t, prompt, kb.Contact.Address)
	assert.Contains(t, prompt, "Lehngas")
	assert.Contains(t, prompt, "Sherwanis")
}
