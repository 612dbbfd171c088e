package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-ai-backend/internal/config"
	"fitness-ai-backend/internal/handlers"
	"fitness-ai-backend/internal/router"
	"fitness-ai-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Fitness AI Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Initialize Handlers ────
	pageHandler := handlers.NewPageHandler(cfg.TemplatesPath)
	chatHandler := handlers.NewChatHandler(geminiService)

	// ──── Step 3: Start HTTP Server ────
	r := router.New(pageHandler, chatHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generous write timeout: the chat route holds the connection open
		// for the duration of one Gemini call.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Fitness AI Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: http://localhost:%s/", cfg.Port)
	log.Printf("  API:  http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
