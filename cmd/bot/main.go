package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"golang.org/x/oauth2/google"

	"github.com/r507/suguan-bot/internal/bot/clients"
	"github.com/r507/suguan-bot/internal/bot/domain"
	"github.com/r507/suguan-bot/internal/bot/repository/memory"
	botservice "github.com/r507/suguan-bot/internal/bot/service"
	"github.com/r507/suguan-bot/internal/bot/telegram"
	"github.com/r507/suguan-bot/internal/common/metrics"
	"github.com/r507/suguan-bot/internal/config"
	"github.com/r507/suguan-bot/internal/notifier"
	"github.com/r507/suguan-bot/internal/sheets"
	"github.com/r507/suguan-bot/pkg"
)

func setupTelegramCommands(telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []domain.BotCommand{
		{Command: "start", Description: "Start the bot po"},
		{Command: "help", Description: "Show available commands po"},
		{Command: "send", Description: "Submit your suguan po"},
		{Command: "review", Description: "Request a review of your suguan po"},
		{Command: "chatid", Description: "Show your chat ID po"},
		{Command: "info", Description: "Submit your personal information po"},
		{Command: "concern", Description: "Send a concern to the bot owner po"},
		{Command: "guidelines", Description: "Read the bot guidelines po"},
		{Command: "cancel", Description: "Cancel the current operation po"},
	}

	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Failed to register bot commands",
			"error", err,
		)
	} else {
		appLogger.Info("Bot commands registered")
	}
}

func gracefulShutdown(poller *telegram.Poller, pendingNotifier *notifier.Notifier,
	metricsServer *metrics.Server, stopCh <-chan struct{}, appLogger *slog.Logger) {
	<-stopCh
	appLogger.Info("Received shutdown signal")

	poller.Stop()
	pendingNotifier.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := metricsServer.Stop(ctx); err != nil {
		appLogger.Error("Failed to stop metrics server",
			"error", err,
		)
	}

	appLogger.Info("Shutdown complete")
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx := context.Background()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	credentials, err := os.ReadFile(cfg.GoogleCredentialsFile)
	if err != nil {
		return fmt.Errorf("reading service account credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, sheets.SpreadsheetScope)
	if err != nil {
		return fmt.Errorf("parsing service account credentials: %w", err)
	}

	sheetsClient := sheets.NewClient(cfg, jwtConfig.TokenSource(ctx), appLogger)

	registry := notifier.NewRegistry()
	sessionRepo := memory.NewSessionRepository()

	botService := botservice.NewBotService(sessionRepo, sheetsClient, registry, location, appLogger)

	telegramClient := clients.NewTelegramClient(cfg.TelegramBotToken, cfg.SendRateLimit, cfg.SendRateBurst, appLogger)
	setupTelegramCommands(telegramClient, appLogger)

	poller := telegram.NewPoller(telegramClient, botService, cfg.ExternalRequestTimeout, appLogger)
	poller.Start()

	pendingNotifier := notifier.NewNotifier(registry, telegramClient, cfg.NotifyInterval, cfg.ExternalRequestTimeout, appLogger)
	pendingNotifier.Start()

	metricsServer := metrics.NewServer(cfg.MetricsPort, appLogger)
	metricsServer.Start()

	appLogger.Info("Bot is running")

	stopCh := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Received system signal",
			"signal", sig.String(),
		)
		close(stopCh)
	}()

	gracefulShutdown(poller, pendingNotifier, metricsServer, stopCh, appLogger)

	return nil
}
