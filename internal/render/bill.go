// Package render formats bills as Telegram HTML messages.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/mmynk/splitbot/internal/calculator"
	"github.com/mmynk/splitbot/internal/models"
)

const (
	EmojiMoneyBag = "💰"
	EmojiTax      = "💸"

	noItemsLine = "<i>Currently no items</i>"
)

// Bill renders a bill's title, items, taxes and computed total.
// The total is recomputed from items and taxes on every call.
func Bill(details *models.BillDetails) (string, error) {
	if details == nil || details.Title == "" {
		return "", models.ErrBillNotFound
	}

	blocks := []string{"<b>" + EscapeHTML(details.Title) + "</b>"}

	if len(details.Items) == 0 {
		blocks = append(blocks, noItemsLine)
	} else {
		lines := make([]string, len(details.Items))
		for i, item := range details.Items {
			lines[i] = strconv.Itoa(i) + ". " + EscapeHTML(item.Title) + "\n" +
				EmojiMoneyBag + FormatAmount(item.Price)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	if len(details.Taxes) > 0 {
		lines := make([]string, len(details.Taxes))
		for i, tax := range details.Taxes {
			lines[i] = EmojiTax + " " + EscapeHTML(tax.Title) + ": " + FormatAmount(tax.Rate) + "%"
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	total := calculator.Total(details.Items, details.Taxes)
	blocks = append(blocks, "Total: "+FormatAmount(roundCents(total)))

	return strings.Join(blocks, "\n\n"), nil
}

// FormatAmount prints v in its shortest exact decimal form: 0, 12.5, 3.75.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundCents hides float noise such as 33.550000000000004 in compounded totals.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
