package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"registration-engine/internal/eventconfig"
	"registration-engine/internal/handler"
)

func main() {
	godotenv.Load()

	cfg, err := eventconfig.Load()
	if err != nil {
		log.Fatalf("Event config: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Registration pricing engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, handler.NewQuoteHandler(cfg)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
