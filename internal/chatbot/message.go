package chatbot

import "time"

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in a conversation log.
type Message struct {
	Text         string           `json:"text"`
	Sender       Sender           `json:"sender"`
	Timestamp    time.Time        `json:"timestamp"`
	QuickReplies []string         `json:"quick_replies,omitempty"`
	Cards        []SuggestionCard `json:"cards,omitempty"`
}

// CardAction tells the widget what a suggestion card opens.
type CardAction string

const (
	ActionShowCategory CardAction = "show_category"
	ActionShowTeam     CardAction = "show_team"
	ActionShowOccasion CardAction = "show_occasion"
	ActionOther        CardAction = "other"
)

// SuggestionCard is a structured tile rendered alongside a bot reply.
// Activating it resubmits Query as a new user message.
type SuggestionCard struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Price       string     `json:"price,omitempty"`
	Image       string     `json:"image,omitempty"`
	Action      CardAction `json:"action"`
	Query       string     `json:"query"`
}

// Response is what the composer (or the remote adapter) hands back for one
// user message.
type Response struct {
	Content      string           `json:"content"`
	QuickReplies []string         `json:"quick_replies"`
	Cards        []SuggestionCard `json:"cards,omitempty"`
}
