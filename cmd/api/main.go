package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aventra/cmd/app"
	"aventra/internal/config"
	handlers "aventra/internal/handler"
	"aventra/internal/telemetry"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Println("JWT_SECRET_KEY is not set: auth endpoints and token identity are disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	deps := app.App(ctx, cfg)
	defer deps.Close()

	handler := handlers.NewHandlers(deps.Services, deps.DB, cfg)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlers.NewRouter(handler, deps.Limiter),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Starting the server
	go func() {
		log.Printf("Server started on %s", addr)
		if cfg.DB.UseSQLite {
			log.Printf("Database: sqlite %s", cfg.DB.SQLitePath)
		} else {
			log.Printf("Database: postgres %s", cfg.DB.DbNAME)
		}

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}
}
