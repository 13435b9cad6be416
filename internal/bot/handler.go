package bot

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mmynk/splitbot/internal/callback"
	"github.com/mmynk/splitbot/internal/models"
	"github.com/mmynk/splitbot/internal/render"
	"github.com/mmynk/splitbot/internal/storage"
)

func (b *Bot) handleCommand(ctx context.Context, log *slog.Logger, msg *tgbotapi.Message) {
	if msg.Chat == nil || !msg.Chat.IsPrivate() || msg.From == nil {
		return
	}
	cmdLog := log.With("chat_id", msg.Chat.ID, "user_id", msg.From.ID, "command", msg.Command())

	switch msg.Command() {
	case "start":
		b.send(cmdLog, tgbotapi.NewMessage(msg.Chat.ID, MsgStart))
	case "newbill":
		b.handleNewBill(ctx, cmdLog, msg)
	default:
		// Unknown commands are plain text to the conversation, e.g. a bill named "/dinner".
		b.handleMessage(ctx, log, msg)
	}
}

func (b *Bot) handleNewBill(ctx context.Context, log *slog.Logger, msg *tgbotapi.Message) {
	err := b.store.WithTx(ctx, func(tx storage.Tx) error {
		return setSession(ctx, tx, msg, models.ActionAwaitingBillName)
	})
	if err != nil {
		log.Error("newbill: failed to start session", "error", err)
		b.metrics.HandlerError("newbill")
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, MsgSomethingWentWrong))
		return
	}

	log.Info("Awaiting bill name")
	b.send(log, tgbotapi.NewMessage(msg.Chat.ID, MsgRequestBillName))
}

// setSession records the sender and their pending action for this chat.
func setSession(ctx context.Context, tx storage.Tx, msg *tgbotapi.Message, action models.PendingAction) error {
	user := msg.From
	if err := tx.UpsertUser(ctx, models.User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.UserName,
	}); err != nil {
		return err
	}
	return tx.SetPendingAction(ctx, msg.Chat.ID, user.ID, action)
}

func (b *Bot) handleMessage(ctx context.Context, log *slog.Logger, msg *tgbotapi.Message) {
	if msg.Chat == nil || !msg.Chat.IsPrivate() || msg.From == nil {
		return
	}
	log = log.With("chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	var (
		reply  *tgbotapi.MessageConfig
		billID int64
	)
	err := b.store.WithTx(ctx, func(tx storage.Tx) error {
		action, err := tx.GetPendingAction(ctx, msg.From.ID, msg.Chat.ID)
		if err != nil {
			return err
		}

		switch action {
		case models.ActionAwaitingBillName:
			reply, billID, err = addBillName(ctx, tx, msg)
			return err
		default:
			log.Debug("No pending action for message", "action", action)
			return nil
		}
	})

	switch {
	case errors.Is(err, models.ErrBillNotFound):
		log.Warn("Bill lookup failed", "error", err)
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, err.Error()))
	case err != nil:
		log.Error("Failed to handle message", "error", err)
		b.metrics.HandlerError("message")
		b.send(log, tgbotapi.NewMessage(msg.Chat.ID, MsgSomethingWentWrong))
	case reply != nil:
		if billID != 0 {
			log.Info("Bill created", "bill_id", billID)
			b.metrics.BillCreated()
		}
		b.send(log, *reply)
	}
}

// addBillName validates the message as a bill title and creates the bill.
// An invalid name produces a corrective reply and leaves the session in place.
func addBillName(ctx context.Context, tx storage.Tx, msg *tgbotapi.Message) (*tgbotapi.MessageConfig, int64, error) {
	// Media messages carry no text and fail validation.
	if err := models.ValidateBillName(msg.Text); err != nil {
		reply := tgbotapi.NewMessage(msg.Chat.ID, MsgInvalidBillName)
		return &reply, 0, nil
	}

	billID, err := tx.CreateBill(ctx, msg.Text, msg.From.ID)
	if err != nil {
		return nil, 0, err
	}
	if err := tx.ResetPendingAction(ctx, msg.From.ID, msg.Chat.ID); err != nil {
		return nil, 0, err
	}

	details, err := tx.GetBillDetails(ctx, billID, msg.From.ID)
	if err != nil {
		return nil, 0, err
	}
	text, err := render.Bill(details)
	if err != nil {
		return nil, 0, err
	}
	keyboard, err := BillKeyboard(billID)
	if err != nil {
		return nil, 0, err
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeHTML
	reply.ReplyMarkup = keyboard
	return &reply, billID, nil
}

func (b *Bot) handleCallback(ctx context.Context, log *slog.Logger, cb *tgbotapi.CallbackQuery) {
	if cb.From != nil {
		log = log.With("user_id", cb.From.ID)
	}

	text, err := callbackAnswer(cb.Data)
	if err != nil {
		log.Error("Bad callback payload", "data", cb.Data, "error", err)
		b.metrics.HandlerError("callback")
		text = MsgSomethingWentWrong
	}

	b.request(log, tgbotapi.NewCallback(cb.ID, text))
}

// callbackAnswer picks the acknowledgement text for a button press.
// Item and tax editing is not wired yet, so every action is acknowledge-only.
func callbackAnswer(data string) (string, error) {
	p, err := callback.Decode(data)
	switch {
	case errors.Is(err, callback.ErrEmpty):
		return "", nil
	case errors.Is(err, callback.ErrMissingAction), errors.Is(err, callback.ErrUnknownAction):
		return AnswerNothing, nil
	case err != nil:
		return "", err
	}

	switch p.Action {
	case models.ActionAddingItem:
		return AnswerAdd, nil
	case models.ActionEditingItem:
		return AnswerEdit, nil
	case models.ActionDone:
		return AnswerDone, nil
	default:
		return AnswerNothing, nil
	}
}
