// Package bot routes Telegram updates to the bill conversation.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/mmynk/splitbot/internal/metrics"
	"github.com/mmynk/splitbot/internal/storage"
)

// Messenger is the part of the Telegram API the bot uses.
// *tgbotapi.BotAPI satisfies it.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot runs the bill conversation for each (chat, user) on top of a Store.
type Bot struct {
	api     Messenger
	store   storage.Store
	metrics *metrics.Metrics
}

// New creates a Bot. m may be nil.
func New(api Messenger, store storage.Store, m *metrics.Metrics) *Bot {
	return &Bot{
		api:     api,
		store:   store,
		metrics: m,
	}
}

// RegisterCommands publishes the command list shown in Telegram's menu.
func (b *Bot) RegisterCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "newbill", Description: "Create a new bill"},
		tgbotapi.BotCommand{Command: "start", Description: "Show available commands"},
	)
	if _, err := b.api.Request(cfg); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	return nil
}

// Poll handles updates from a long polling channel until it is closed
// or ctx is cancelled.
func (b *Bot) Poll(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleWebhook decodes a webhook request body and handles the update.
func (b *Bot) HandleWebhook(ctx context.Context, body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return fmt.Errorf("failed to decode update: %w", err)
	}

	b.HandleUpdate(ctx, update)
	return nil
}

// HandleUpdate dispatches a single update. Errors are reported to the user
// and logged, never returned.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	log := slog.With("trace_id", uuid.NewString(), "update_id", update.UpdateID)

	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.metrics.Update(metrics.KindCommand)
		b.handleCommand(ctx, log, update.Message)
	case update.CallbackQuery != nil:
		b.metrics.Update(metrics.KindCallback)
		b.handleCallback(ctx, log, update.CallbackQuery)
	case update.Message != nil:
		b.metrics.Update(metrics.KindMessage)
		b.handleMessage(ctx, log, update.Message)
	default:
		b.metrics.Update(metrics.KindOther)
		log.Debug("Ignoring update")
	}
}

func (b *Bot) send(log *slog.Logger, c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Error("Failed to send message", "error", err)
		b.metrics.HandlerError("send")
	}
}

func (b *Bot) request(log *slog.Logger, c tgbotapi.Chattable) {
	if _, err := b.api.Request(c); err != nil {
		log.Error("Telegram request failed", "error", err)
		b.metrics.HandlerError("request")
	}
}
