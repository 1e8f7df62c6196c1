package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vastrarent/vastra-rental-be/internal/chatbot"
)

// ChatService runs the send pipeline for the storefront chat widget:
// rate-limit check, persist user message, attempt the remote completion,
// fall back to the local matcher+composer, persist the bot reply. Every
// failure path degrades to a local, deterministic response; nothing here is
// allowed to surface a raw error to the widget.
type ChatService struct {
	kb      *chatbot.KBProvider
	store   *chatbot.ConversationStore
	limiter *chatbot.Limiter
	remote  chatbot.Completer // nil when no remote endpoint is configured
	now     func() time.Time
}

// SendResult is one completed exchange.
type SendResult struct {
	Reply       chatbot.Message `json:"reply"`
	RateLimited bool            `json:"rate_limited"`
}

func NewChatService(kb *chatbot.KBProvider, store *chatbot.ConversationStore, limiter *chatbot.Limiter, remote chatbot.Completer) *ChatService {
	return &ChatService{
		kb:      kb,
		store:   store,
		limiter: limiter,
		remote:  remote,
		now:     time.Now,
	}
}

const rateLimitedReply = "You're sending messages a little too fast — please wait a minute and try again."

// Send processes one user message and returns the bot reply. The returned
// message is always usable; internal failures produce the fixed call-us
// reply rather than an error.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (result SendResult) {
	kb := s.kb.Current()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("session", sessionID).Msg("chat send panicked")
			result = SendResult{Reply: s.failureReply(kb)}
		}
	}()

	result, err := s.send(ctx, kb, sessionID, text)
	if err != nil {
		log.Error().Err(err).Str("session", sessionID).Msg("chat send failed")
		return SendResult{Reply: s.failureReply(kb)}
	}
	return result
}

func (s *ChatService) send(ctx context.Context, kb *chatbot.KnowledgeBase, sessionID, text string) (SendResult, error) {
	// Rate limit first: an exhausted session gets the canned reply and the
	// message is not counted as a real exchange.
	if !s.limiter.Allow(sessionID) {
		windowStart := s.limiter.WindowStart(sessionID)
		if err := s.store.MarkRateReset(sessionID, windowStart.Add(60*time.Second)); err != nil {
			log.Warn().Err(err).Msg("failed to persist rate reset marker")
		}
		return SendResult{
			Reply: chatbot.Message{
				Text:      rateLimitedReply,
				Sender:    chatbot.SenderBot,
				Timestamp: s.now(),
			},
			RateLimited: true,
		}, nil
	}

	userMsg := chatbot.Message{
		Text:      text,
		Sender:    chatbot.SenderUser,
		Timestamp: s.now(),
	}
	if _, err := s.store.Append(sessionID, userMsg); err != nil {
		return SendResult{}, fmt.Errorf("failed to persist user message: %w", err)
	}

	response := s.respond(ctx, kb, text)

	botMsg := chatbot.Message{
		Text:         response.Content,
		Sender:       chatbot.SenderBot,
		Timestamp:    s.now(),
		QuickReplies: response.QuickReplies,
		Cards:        response.Cards,
	}
	if _, err := s.store.Append(sessionID, botMsg); err != nil {
		return SendResult{}, fmt.Errorf("failed to persist bot message: %w", err)
	}

	return SendResult{Reply: botMsg}, nil
}

// respond attempts the remote completion and falls back to the local
// matcher+composer on any failure. The fallback is an explicit branch: the
// remote path never decides what the user sees on error.
func (s *ChatService) respond(ctx context.Context, kb *chatbot.KnowledgeBase, text string) chatbot.Response {
	if s.remote != nil && s.remote.Configured() {
		response, err := s.remote.Complete(ctx, text)
		if err == nil {
			return response
		}
		log.Warn().Err(err).Msg("remote completion failed, using local responder")
	}

	matcher := chatbot.NewMatcher(kb)
	composer := chatbot.NewComposer(kb)

	category := matcher.Match(text)
	if category == chatbot.CategoryTeamMember {
		if member := matcher.MemberFor(text); member != nil {
			return composer.ComposeMember(member)
		}
	}
	return composer.Compose(category)
}

func (s *ChatService) failureReply(kb *chatbot.KnowledgeBase) chatbot.Message {
	return chatbot.Message{
		Text: fmt.Sprintf("Sorry, something went wrong on our side. Please call us at %s and we'll sort you out right away.",
			kb.Contact.Phone),
		Sender:    chatbot.SenderBot,
		Timestamp: s.now(),
	}
}

// History returns the session's conversation log in order.
func (s *ChatService) History(sessionID string) ([]chatbot.Message, error) {
	return s.store.Load(sessionID)
}

// ClearHistory drops the session's log and markers.
func (s *ChatService) ClearHistory(sessionID string) error {
	return s.store.Clear(sessionID)
}
