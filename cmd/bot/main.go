package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mmynk/splitbot/internal/bot"
	"github.com/mmynk/splitbot/internal/config"
	"github.com/mmynk/splitbot/internal/httpapi"
	"github.com/mmynk/splitbot/internal/metrics"
	"github.com/mmynk/splitbot/internal/storage/sqlstore"
	"github.com/mmynk/splitbot/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Bot stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlstore.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized")

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return err
	}
	api.Debug = cfg.TelegramDebug
	slog.Info("Authorized on Telegram", "username", api.Self.UserName)

	m := metrics.New()
	b := bot.New(api, store, m)
	if err := b.RegisterCommands(); err != nil {
		slog.Warn("Could not register bot commands", "error", err)
	}

	// The webhook route is only mounted when Telegram is told to use it.
	var webhook httpapi.WebhookHandler
	if cfg.WebhookURL != "" {
		webhook = b
	}
	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(webhook, cfg.WebhookSecret, m.Handler()))

	errc := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "address", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	if cfg.WebhookURL != "" {
		if err := setWebhook(api, cfg.WebhookURL, cfg.WebhookSecret); err != nil {
			return err
		}
		slog.Info("Receiving updates via webhook", "url", cfg.WebhookURL)
	} else {
		if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
			slog.Warn("Could not delete webhook", "error", err)
		}
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60
		updates := api.GetUpdatesChan(u)
		go func() {
			slog.Info("Receiving updates via long polling")
			b.Poll(ctx, updates)
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info("Shutting down")
	case err := <-errc:
		return err
	}

	api.StopReceivingUpdates()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setWebhook registers url with Telegram. WebhookConfig in v5.5.1 has no
// secret_token field, so the request is built by hand.
func setWebhook(api *tgbotapi.BotAPI, url, secret string) error {
	if _, err := tgbotapi.NewWebhook(url); err != nil {
		return err
	}
	params := tgbotapi.Params{
		"url":          url,
		"secret_token": secret,
	}
	if _, err := api.MakeRequest("setWebhook", params); err != nil {
		return err
	}
	return nil
}
