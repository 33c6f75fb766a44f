package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"matchday/internal/app"
	"matchday/internal/config"
	"matchday/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "matchday: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	application, err := app.New(cfg, web.FS)
	if err != nil {
		return fmt.Errorf("assemble application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
