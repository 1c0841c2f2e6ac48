package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/simonkvalheim/bankify/internal/queue"
)

func main() {
	cfg := loadConfig()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	worker := queue.NewWorker(redisClient, queue.LogHandler)

	if cfg.DrainOnly {
		n, err := worker.Drain(ctx)
		if err != nil {
			log.Fatalf("Failed to drain queue after %d events: %v", n, err)
		}
		log.Printf("Drained %d events", n)
		return
	}

	// Handle shutdown signals
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received, stopping worker...")
		cancel()
		worker.Stop()
	}()

	log.Println("Starting movement worker...")
	worker.Start(ctx)

	log.Println("Worker stopped")
}

// Config holds all configuration for the worker
type Config struct {
	RedisURL      string
	RedisPassword string
	DrainOnly     bool // If true, process the current backlog and exit
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	return Config{
		RedisURL:      redisURL,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DrainOnly:     os.Getenv("WORKER_DRAIN_ONLY") == "true",
	}
}
