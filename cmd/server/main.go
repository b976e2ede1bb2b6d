package main

import (
	"fmt"
	"log"
	"os"

	"github.com/staff-star/HTML-parser/config"
	httpDelivery "github.com/staff-star/HTML-parser/internal/delivery/http"
	"github.com/staff-star/HTML-parser/internal/renderer"
	"github.com/staff-star/HTML-parser/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting HTML-parser v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize usecase layer
	parserService := usecase.NewParserService(usecase.ParserServiceConfig{
		MaxInputLength:     cfg.Parser.MaxInputLength,
		EnableDebugLogging: cfg.Parser.EnableDebugLogging,
	})
	log.Printf("Max input length: %d", parserService.MaxInputLength())

	if cfg.Parser.EnableDebugLogging {
		log.Printf("Parser debug logging enabled")
	}

	generator := renderer.NewGenerator()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(parserService, generator)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
