package models

// User represents a Telegram user that has interacted with the bot.
// Users are upserted on every session write and never deleted.
type User struct {
	// ID is the Telegram user ID.
	ID int64

	// FirstName is the user's first name as reported by Telegram.
	FirstName string

	// LastName is optional and may be empty.
	LastName string

	// Username is the Telegram @handle without the leading "@". May be empty.
	Username string
}
