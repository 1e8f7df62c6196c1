package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/vastrarent/vastra-rental-be/internal/chatbot"
	"github.com/vastrarent/vastra-rental-be/internal/config"
	"github.com/vastrarent/vastra-rental-be/internal/database"
	"github.com/vastrarent/vastra-rental-be/internal/handlers"
	"github.com/vastrarent/vastra-rental-be/internal/jobs"
	"github.com/vastrarent/vastra-rental-be/internal/kvstore"
	"github.com/vastrarent/vastra-rental-be/internal/payment"
	"github.com/vastrarent/vastra-rental-be/internal/repositories"
	"github.com/vastrarent/vastra-rental-be/internal/services"
	"github.com/vastrarent/vastra-rental-be/internal/utils"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting vastra-rental-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	productRepo := repositories.NewProductRepo(db.GORM)
	cartRepo := repositories.NewCartRepo(db.GORM)
	orderRepo := repositories.NewOrderRepo(db.GORM)
	profileRepo := repositories.NewProfileRepo(db.GORM)

	// Init chatbot knowledge base (hot reloads on file change)
	kbProvider, err := chatbot.NewKBProvider(cfg.KnowledgeBasePath)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	defer kbProvider.Close()

	// Init conversation store
	kv, err := kvstore.Open(cfg.ChatStorePath, chatbot.StoragePrefix)
	if err != nil {
		log.Fatalf("Failed to open chat store: %v", err)
	}
	defer kv.Close()

	// Init remote completion (optional)
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
		log.Printf("🤖 Remote completion enabled (model: %s)", cfg.OpenAIModel)
	} else {
		log.Printf("💬 Remote completion not configured, using local responder only")
	}

	// Init payment gateway (simulated)
	gateway := payment.NewSimulatedGateway(cfg.UPIPayeeName, cfg.UPIPayeeVPA)
	log.Printf("💳 Payment mode: simulated (UPI payee: %s)", cfg.UPIPayeeVPA)

	// Init services
	chatService := services.NewChatService(
		kbProvider,
		chatbot.NewConversationStore(kv),
		chatbot.NewLimiter(cfg.ChatRateLimit),
		remote,
	)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	checkoutService := services.NewCheckoutService(cartRepo, orderRepo, productRepo, profileRepo, gateway)
	profileService := services.NewProfileService(profileRepo)

	// Init cart expiry sweeper
	sweeper := jobs.NewSweeper(cartRepo)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start cart sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(kbProvider)
	chatHandler := handlers.NewChatHandler(chatService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	profileHandler := handlers.NewProfileHandler(profileService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "VastraRent API",
	})

	// Middleware
	app.Use(cors.New())

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Chat routes
	app.Post("/chat/messages", chatHandler.SendMessage)
	app.Get("/chat/messages/:session_id", chatHandler.GetHistory)
	app.Delete("/chat/messages/:session_id", chatHandler.ClearHistory)

	// Catalog routes
	app.Post("/products", productHandler.CreateProduct)
	app.Get("/products", productHandler.ListProducts)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)
	app.Patch("/products/:id/stock", productHandler.UpdateStock)
	app.Patch("/products/:id/toggle", productHandler.ToggleProductStatus)

	// Shopping Cart routes
	app.Post("/cart/add", cartHandler.AddToCart)
	app.Get("/cart/:customer_id", cartHandler.ViewCart)
	app.Put("/cart/:customer_id/update", cartHandler.UpdateCartItem)
	app.Delete("/cart/:customer_id/remove", cartHandler.RemoveFromCart)
	app.Delete("/cart/:customer_id/clear", cartHandler.ClearCart)

	// Checkout/Order routes
	app.Post("/checkout", checkoutHandler.Checkout)
	app.Get("/orders/customer/:customer_id", checkoutHandler.ListOrders)
	app.Get("/orders/:order_number", checkoutHandler.GetOrder)
	app.Post("/orders/:order_number/return", checkoutHandler.MarkReturned)

	// Profile routes
	app.Get("/profiles/:customer_id", profileHandler.GetProfile)
	app.Put("/profiles/:customer_id", profileHandler.UpdateProfile)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("✅ vastra-rental-api running at :%s", port)
	log.Fatal(app.Listen(":" + port))
}
