// Package models defines the core domain models for splitbot.
//
// # Models
//
//   - User: a Telegram account that has talked to the bot
//   - PendingAction: the single multi-step operation a user is in the middle of, per chat
//   - Bill: a named collection of items and taxes owned by one user
//   - Item, Tax: line entries that belong to exactly one bill
//   - BillDetails: a bill loaded together with its items and taxes, ready for rendering
//
// # Design Principles
//
// 1. **Telegram identity**: users and chats are keyed by their Telegram IDs (int64)
// 2. **Totals are derived**: a bill never stores its total, see package calculator
// 3. **Closed enums**: pending actions only exist as the named constants in this package
// 4. **Avoid circular references**: relationships use IDs instead of pointers
package models
