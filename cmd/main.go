package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/homecraft/homecraft-cli/internal/api"
	"github.com/homecraft/homecraft-cli/internal/cli"
	"github.com/homecraft/homecraft-cli/internal/config"
	"github.com/homecraft/homecraft-cli/internal/logger"
	"github.com/homecraft/homecraft-cli/internal/model"
	"github.com/homecraft/homecraft-cli/internal/service"
	"github.com/homecraft/homecraft-cli/internal/store"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	credStore, err := store.NewFileStore(cfg.State.Dir)
	if err != nil {
		logger.Fatal("failed to initialize credential store", "error", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, credStore, logger)

	session := model.NewSession()
	cartService := service.NewCart(session, client, logger)
	authService := service.NewAuth(session, client, cartService, credStore, logger)
	chatService := service.NewChat(client, logger)

	root := cli.NewRootCommand(&cli.App{
		Auth: authService,
		Cart: cartService,
		Chat: chatService,
		API:  client,
	})
	root.Version = appVersion()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func appVersion() string {
	return fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit)
}
