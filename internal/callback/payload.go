// Package callback encodes and decodes the data attached to inline keyboard buttons.
//
// The wire form is a compact JSON object, {"a":<action code>,"b":<bill id>},
// which stays well under Telegram's 64 byte callback_data limit.
package callback

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/splitbot/internal/models"
)

var (
	ErrEmpty         = errors.New("empty callback payload")
	ErrMissingAction = errors.New("callback payload has no action")
	ErrUnknownAction = errors.New("callback payload has an unknown action")
	ErrMissingBill   = errors.New("callback payload has no bill id")
)

// Payload is the action a button triggers and the bill it applies to.
type Payload struct {
	Action models.PendingAction
	BillID int64
}

type wirePayload struct {
	Action *int   `json:"a"`
	BillID *int64 `json:"b"`
}

// Encode serializes p for use as callback data.
func Encode(p Payload) (string, error) {
	code := p.Action.Code()
	if code < 0 {
		return "", fmt.Errorf("%w: %v", ErrUnknownAction, p.Action)
	}

	data, err := json.Marshal(wirePayload{Action: &code, BillID: &p.BillID})
	if err != nil {
		return "", fmt.Errorf("failed to encode callback payload: %w", err)
	}
	return string(data), nil
}

// Decode parses callback data produced by Encode.
func Decode(data string) (Payload, error) {
	if data == "" {
		return Payload{}, ErrEmpty
	}

	var w wirePayload
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return Payload{}, fmt.Errorf("malformed callback payload: %w", err)
	}
	if w.Action == nil {
		return Payload{}, ErrMissingAction
	}

	action, err := models.ActionFromCode(*w.Action)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrUnknownAction, err)
	}
	if w.BillID == nil {
		return Payload{}, ErrMissingBill
	}

	return Payload{Action: action, BillID: *w.BillID}, nil
}
