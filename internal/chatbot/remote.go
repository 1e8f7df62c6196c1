package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured signals that no usable remote credential is present. The
// caller treats it exactly like a remote failure: silent local fallback.
var ErrNotConfigured = errors.New("remote completion not configured")

// RemoteConfig carries the settings for the third-party completion endpoint.
type RemoteConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Secure reports whether the config carries a usable credential and the
// request parameters the endpoint needs.
func (c RemoteConfig) Secure() bool {
	return c.APIKey != "" && c.Model != "" && c.MaxTokens > 0
}

// Completer is the remote-attempt seam the send pipeline goes through.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, userText string) (Response, error)
}

// RemoteCompleter asks a chat-completion endpoint for the reply instead of
// the local matcher. Every failure is returned as an error value: the
// fallback to the local path is the caller's explicit branch, and no failure
// here ever reaches the user.
type RemoteCompleter struct {
	client       *openai.Client
	cfg          RemoteConfig
	systemPrompt string
}

func NewRemoteCompleter(cfg RemoteConfig, kb *KnowledgeBase) *RemoteCompleter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &RemoteCompleter{
		client:       openai.NewClientWithConfig(clientCfg),
		cfg:          cfg,
		systemPrompt: buildSystemPrompt(kb),
	}
}

func (r *RemoteCompleter) Configured() bool {
	return r.cfg.Secure()
}

// Complete sends one request: the fixed business-facts system prompt plus the
// user's message. No retries; the local fallback is the whole resilience
// strategy.
func (r *RemoteCompleter) Complete(ctx context.Context, userText string) (Response, error) {
	if !r.Configured() {
		return Response{}, ErrNotConfigured
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: float32(r.cfg.Temperature),
	})
	if err != nil {
		return Response{}, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("completion response has no choices")
	}

	content := resp.Choices[0].Message.Content
	return Response{
		Content:      FormatMessage(content),
		QuickReplies: DeriveQuickReplies(content),
	}, nil
}

// buildSystemPrompt fixes the business facts the endpoint may use: address,
// phone, hours and price bands.
func buildSystemPrompt(kb *KnowledgeBase) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the website assistant for %s, a fashion rental store.\n", kb.Company.Name)
	fmt.Fprintf(&sb, "Address: %s\n", kb.Contact.Address)
	fmt.Fprintf(&sb, "Phone: %s\n", kb.Contact.Phone)
	fmt.Fprintf(&sb, "Hours: %s\n", kb.Contact.Hours)
	fmt.Fprintf(&sb, "Rentals run ₹%d to ₹%d per day.\n", kb.Pricing.MinPerDay, kb.Pricing.MaxPerDay)
	sb.WriteString("Women's collections: ")
	sb.WriteString(collectionNames(kb.Categories.Women) + "\n")
	sb.WriteString("Men's collections: ")
	sb.WriteString(collectionNames(kb.Categories.Men) + "\n")
	sb.WriteString("Answer briefly and warmly. Only use the facts above; if unsure, suggest calling the store.")
	return sb.String()
}

func collectionNames(cols []Collection) string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// replyGroups is the keyword subset scanned to suggest follow-ups for
// remotely generated text.
var replyGroups = []struct {
	keywords []string
	reply    string
}{
	{[]string{"collection", "category", "outfit", "dress"}, "View Collections"},
	{[]string{"price", "cost", "rental"}, "Rental Prices"},
	{[]string{"size", "fit"}, "Size Guide"},
	{[]string{"delivery", "pickup"}, "Delivery Info"},
}

var genericReplies = []string{"View Collections", "Rental Prices", "Contact Us"}

// DeriveQuickReplies scans generated text for the category keyword groups and
// emits up to three matching suggestions, defaulting to three generic ones.
func DeriveQuickReplies(text string) []string {
	lower := strings.ToLower(text)
	var replies []string
	for _, group := range replyGroups {
		if len(replies) == 3 {
			break
		}
		if containsAny(lower, group.keywords) {
			replies = append(replies, group.reply)
		}
	}
	if len(replies) == 0 {
		return append([]string(nil), genericReplies...)
	}
	return replies
}
