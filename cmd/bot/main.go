package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vastrarent/vastra-rental-be/internal/chatbot"
	"github.com/vastrarent/vastra-rental-be/internal/config"
	"github.com/vastrarent/vastra-rental-be/internal/kvstore"
	"github.com/vastrarent/vastra-rental-be/internal/services"
)

// A terminal REPL for exercising the chat pipeline without the API in front
// of it. Type a message, get the bot reply; /history and /clear manage the
// session; /quit exits.
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.LoadConfig()

	kbProvider, err := chatbot.NewKBProvider(cfg.KnowledgeBasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load knowledge base")
	}
	defer kbProvider.Close()

	kv, err := kvstore.Open(cfg.ChatStorePath, chatbot.StoragePrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open chat store")
	}
	defer kv.Close()

	remoteCfg := chatbot.RemoteConfig{
		APIKey:      cfg.OpenAIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.OpenAIMaxTokens,
		Temperature: cfg.OpenAITemperature,
	}
	var remote chatbot.Completer
	if remoteCfg.Secure() {
		remote = chatbot.NewRemoteCompleter(remoteCfg, kbProvider.Current())
	}

	chatService := services.NewChatService(
		kbProvider,
		chatbot.NewConversationStore(kv),
		chatbot.NewLimiter(cfg.ChatRateLimit),
		remote,
	)

	sessionID := "cli-" + uuid.New().String()[:8]
	kb := kbProvider.Current()

	fmt.Printf("%s assistant — session %s\n", kb.Company.Name, sessionID)
	fmt.Println("Type a message, or /history, /clear, /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			fmt.Println("Bye 👋")
			return
		case "/clear":
			if err := chatService.ClearHistory(sessionID); err != nil {
				log.Error().Err(err).Msg("Failed to clear history")
				continue
			}
			fmt.Println("(conversation cleared)")
			continue
		case "/history":
			messages, err := chatService.History(sessionID)
			if err != nil {
				log.Error().Err(err).Msg("Failed to load history")
				continue
			}
			for _, msg := range messages {
				fmt.Printf("[%s] %s: %s\n", msg.Timestamp.Format("15:04:05"), msg.Sender, msg.Text)
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		result := chatService.Send(ctx, sessionID, line)
		cancel()

		// Replies carry widget markup; the terminal just wants the line breaks
		fmt.Println(strings.ReplaceAll(result.Reply.Text, "<br>", "\n"))
		if len(result.Reply.QuickReplies) > 0 {
			fmt.Printf("  suggestions: %s\n", strings.Join(result.Reply.QuickReplies, " | "))
		}
		for _, card := range result.Reply.Cards {
			fmt.Printf("  [card] %s — %s (%s)\n", card.Title, card.Description, card.Price)
		}
	}
}
