package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mmynk/splitbot/internal/callback"
	"github.com/mmynk/splitbot/internal/models"
)

// billButtons is the fixed layout of the bill keyboard, one button per row.
var billButtons = []struct {
	label  string
	action models.PendingAction
}{
	{"Add item(s)", models.ActionAddingItem},
	{"Edit item", models.ActionEditingItem},
	{"Delete item", models.ActionDeletingItem},
	{"Add tax", models.ActionAddingTax},
	{"Edit tax", models.ActionEditingTax},
	{"Delete tax", models.ActionDeletingTax},
	{"Done", models.ActionDone},
}

// BillKeyboard builds the inline keyboard shown under a bill.
func BillKeyboard(billID int64) (tgbotapi.InlineKeyboardMarkup, error) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(billButtons))
	for _, btn := range billButtons {
		data, err := callback.Encode(callback.Payload{Action: btn.action, BillID: billID})
		if err != nil {
			return tgbotapi.InlineKeyboardMarkup{}, err
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}
