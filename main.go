package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"telegramNewsBot/internal/application"
	"telegramNewsBot/internal/domain/repository"
	"telegramNewsBot/internal/infrastructure/oracle"
	"telegramNewsBot/internal/infrastructure/rss"
	"telegramNewsBot/internal/infrastructure/scraper"
	"telegramNewsBot/internal/infrastructure/storage"
	"telegramNewsBot/internal/infrastructure/telegram"
	"telegramNewsBot/internal/interfaces/config"
)

func main() {
	fmt.Println("Starting Telegram News Bot...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messageRepo := telegram.NewMessageRepository(telegram.Config{
		Token:     cfg.BotToken,
		ChannelID: cfg.ChannelID,
		ParseMode: cfg.ParseMode,
	})

	oracleClient, err := oracle.NewClient(ctx, oracle.Config{
		Provider: cfg.OracleProvider,
		URL:      cfg.OracleURL,
		APIKey:   cfg.OracleAPIKey,
		Model:    cfg.OracleModel,
		Region:    cfg.OracleRegion,
		MaxTokens: cfg.OracleMaxTokens,
		Timeout:   cfg.GetOracleTimeout(),
	})
	if err != nil {
		log.Fatal("Failed to initialize oracle client:", err)
	}

	fingerprints := newFingerprintRepository(cfg.DBPath)
	if closer, ok := fingerprints.(io.Closer); ok {
		defer closer.Close()
	}

	service := application.NewNewsService(
		rss.NewFeedRepository(),
		messageRepo,
		oracle.NewClassifier(oracleClient),
		oracle.NewTransformer(oracleClient),
		fingerprints,
		scraper.NewContentFetcher(0),
		application.NewsServiceConfig{
			DefaultLanguage: cfg.DefaultLanguage,
			PublishDelay:    cfg.GetPublishDelay(),
		},
	)

	runner := application.NewRunner(service, messageRepo, oracle.NewAnalytics(oracleClient), application.RunnerConfig{
		Feeds:             cfg.Feeds,
		PollInterval:      cfg.GetPollInterval(),
		AnalyticsInterval: cfg.GetAnalyticsInterval(),
	})

	if err := runner.TestConnection(ctx); err != nil {
		log.Printf("Warning: connection test failed: %v", err)
	}

	if err := runner.Start(); err != nil {
		log.Fatal("Failed to start runner:", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received")
	runner.Stop()
	log.Println("Shutting down...")
}

func newFingerprintRepository(dbPath string) repository.FingerprintRepository {
	if dbPath == "" {
		return storage.NewMemoryFingerprintRepository()
	}

	repo, err := storage.NewSQLiteFingerprintRepository(dbPath)
	if err != nil {
		log.Printf("Warning: SQLite store initialization failed: %v", err)
		log.Println("Continuing with in-memory duplicate tracking...")
		return storage.NewMemoryFingerprintRepository()
	}
	return repo
}
