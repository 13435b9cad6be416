package models

import (
	"errors"
	"strings"
	"testing"
)

func TestActionCodes(t *testing.T) {
	tests := []struct {
		action PendingAction
		code   int
	}{
		{ActionAwaitingBillName, 0},
		{ActionAddingItem, 1},
		{ActionEditingItem, 2},
		{ActionDeletingItem, 3},
		{ActionAddingTax, 4},
		{ActionEditingTax, 5},
		{ActionDeletingTax, 6},
		{ActionDone, 7},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			if got := tt.action.Code(); got != tt.code {
				t.Errorf("Code() = %d, want %d", got, tt.code)
			}
			got, err := ActionFromCode(tt.code)
			if err != nil {
				t.Fatalf("ActionFromCode(%d) failed: %v", tt.code, err)
			}
			if got != tt.action {
				t.Errorf("ActionFromCode(%d) = %v, want %v", tt.code, got, tt.action)
			}
		})
	}
}

func TestActionFromCodeRejectsUnknown(t *testing.T) {
	for _, code := range []int{-1, 8, 42} {
		if _, err := ActionFromCode(code); err == nil {
			t.Errorf("ActionFromCode(%d) expected error, got nil", code)
		}
	}
	if ActionNone.Code() != -1 {
		t.Errorf("ActionNone.Code() = %d, want -1", ActionNone.Code())
	}
}

func TestValidateBillName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single character", "a", false},
		{"regular name", "Groceries", false},
		{"exactly 250", strings.Repeat("x", 250), false},
		{"250 multibyte runes", strings.Repeat("é", 250), false},
		{"empty", "", true},
		{"251 characters", strings.Repeat("x", 251), true},
		{"300 characters", strings.Repeat("x", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBillName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBillName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBillName) {
				t.Errorf("expected ErrInvalidBillName, got %v", err)
			}
		})
	}
}
