package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"debate-arena/handlers"
	"debate-arena/middleware"
	"debate-arena/services"
	"debate-arena/utils"
	"debate-arena/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		MaxAge:       36000,
	}))

	store, err := utils.NewObjectStore(ctx)
	if err != nil {
		log.Fatal("failed to initialize object store:", err)
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set — scoring falls back to neutral scores, topics to the canned lists")
	}
	gemini := services.NewGeminiClient(geminiKey)

	playerService := services.NewPlayerService(store)
	scorer := services.NewScorer(gemini)
	topicService := services.NewTopicService(gemini)
	debateService := services.NewDebateService(playerService, scorer, store)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "Debate API is running"})
	})
	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupTopicRoutes(app, topicService)
	handlers.SetupDebateRoutes(app, debateService)

	sweeper, err := workers.StartRoomSweeper(debateService, 30*time.Minute, time.Hour, 24*time.Hour)
	if err != nil {
		log.Fatal("failed to start room sweeper:", err)
	}
	defer func() { _ = sweeper.Shutdown() }()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Debate API running on http://localhost:%s", port)
	log.Println("✅ Room sweeper running (every 30m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
