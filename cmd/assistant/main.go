package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spec-assistant/internal/assistant"
	"spec-assistant/internal/catalog"
	"spec-assistant/internal/completion"
	"spec-assistant/internal/config"
	"spec-assistant/internal/server"
	"spec-assistant/internal/storage"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	var rec storage.Recorder
	if cfg.TurnLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.TurnLogPath)
		if err != nil {
			log.Printf("failed to init turn recorder: %v", err)
		} else {
			rec = fr
		}
	}

	client := completion.NewClient(cfg.CompletionURL)
	orch := assistant.New(client, rec)
	srv := server.New(orch, catalog.MobileShopProduct(), catalog.MobileShopDemo(), cfg.AssistantPort)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("assistant server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
