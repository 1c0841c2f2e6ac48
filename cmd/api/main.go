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

	"github.com/redis/go-redis/v9"

	"github.com/simonkvalheim/bankify/internal/bootstrap"
	"github.com/simonkvalheim/bankify/internal/handler"
	appMiddleware "github.com/simonkvalheim/bankify/internal/middleware"
	"github.com/simonkvalheim/bankify/internal/processor"
	"github.com/simonkvalheim/bankify/internal/queue"
)

func main() {
	// Load configuration from environment
	cfg := loadConfig()

	// Seed the in-memory accounts
	store, err := bootstrap.Initialize()
	if err != nil {
		log.Fatalf("Failed to initialize accounts: %v", err)
	}

	var (
		opts    []processor.Option
		backlog handler.Backlog
	)
	if cfg.EventsEnabled {
		redisClient, err := connectRedis(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis (movement events enabled)")
		publisher := queue.NewPublisher(redisClient)
		opts = append(opts, processor.WithPublisher(publisher))
		backlog = publisher
	} else {
		log.Println("Movement events disabled (set EVENTS_ENABLED=true to publish to Redis)")
	}

	ctrl := processor.NewController(store, opts...)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: handler.NewRouter(ctrl, cfg.CORS, backlog),
	}

	// Graceful shutdown setup
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// Config holds all configuration for the application
type Config struct {
	Port          string
	RedisURL      string
	RedisPassword string
	EventsEnabled bool // If true, publish movement events to Redis
	CORS          appMiddleware.CORSConfig
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	return Config{
		Port:          port,
		RedisURL:      redisURL,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		EventsEnabled: os.Getenv("EVENTS_ENABLED") == "true",
		CORS:          appMiddleware.ParseOrigins(os.Getenv("CORS_ORIGINS")),
	}
}

// connectRedis creates a client and verifies the connection
func connectRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("unable to ping redis: %w", err)
	}

	return client, nil
}
