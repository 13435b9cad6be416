package models

import (
	"errors"
	"unicode/utf8"
)

// MaxBillNameLength is the longest bill title accepted, counted in characters.
const MaxBillNameLength = 250

var (
	// ErrBillNotFound is returned when a bill does not exist or belongs to another user.
	ErrBillNotFound = errors.New("Bill does not exist")

	// ErrInvalidBillName is returned when a proposed bill title is empty or too long.
	ErrInvalidBillName = errors.New("invalid bill name")
)

// Bill represents a named bill owned by a single user.
type Bill struct {
	// ID is the database-assigned identifier.
	ID int64

	// Title is the user-provided name, 1 to MaxBillNameLength characters.
	Title string

	// OwnerID is the Telegram user ID of the bill's creator.
	OwnerID int64
}

// Item represents a single line item on a bill.
type Item struct {
	Title string
	Price float64
}

// Tax represents a percentage applied on top of the bill's running total.
type Tax struct {
	Title string

	// Rate is a percentage, e.g. 7 for 7%.
	Rate float64
}

// BillDetails is a bill together with its items and taxes in insertion order.
type BillDetails struct {
	Bill
	Items []Item
	Taxes []Tax
}

// ValidateBillName checks that name is usable as a bill title.
func ValidateBillName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxBillNameLength {
		return ErrInvalidBillName
	}
	return nil
}
