package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonkvalheim/bankify/internal/bootstrap"
	"github.com/simonkvalheim/bankify/internal/cli"
	"github.com/simonkvalheim/bankify/internal/processor"
)

func main() {
	// Keep the terminal clean unless BANKIFY_DEBUG is set
	if os.Getenv("BANKIFY_DEBUG") != "true" {
		log.SetOutput(io.Discard)
	}

	store, err := bootstrap.Initialize()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to initialize accounts: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shell := cli.NewShell(processor.NewController(store), os.Stdout)
	if err := shell.Run(ctx, os.Stdin); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to read input: %v", err)
	}
}
