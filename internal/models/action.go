package models

import "fmt"

// PendingAction is the step a user is in the middle of within one chat.
// The zero value, ActionNone, means nothing is pending and is never persisted.
type PendingAction int

const (
	ActionNone PendingAction = iota
	ActionAwaitingBillName
	ActionAddingItem
	ActionEditingItem
	ActionDeletingItem
	ActionAddingTax
	ActionEditingTax
	ActionDeletingTax
	ActionDone
)

var actionNames = map[PendingAction]string{
	ActionNone:             "none",
	ActionAwaitingBillName: "awaiting_bill_name",
	ActionAddingItem:       "adding_item",
	ActionEditingItem:      "editing_item",
	ActionDeletingItem:     "deleting_item",
	ActionAddingTax:        "adding_tax",
	ActionEditingTax:       "editing_tax",
	ActionDeletingTax:      "deleting_tax",
	ActionDone:             "done",
}

// String returns a lowercase name suitable for logs and metric labels.
func (a PendingAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("PendingAction(%d)", int(a))
}

// Code returns the wire code used in the sessions table and callback payloads.
// ActionNone has no code and returns -1.
func (a PendingAction) Code() int {
	if a <= ActionNone || a > ActionDone {
		return -1
	}
	return int(a) - 1
}

// ActionFromCode converts a stored or transmitted code back into a PendingAction.
func ActionFromCode(code int) (PendingAction, error) {
	a := PendingAction(code + 1)
	if a <= ActionNone || a > ActionDone {
		return ActionNone, fmt.Errorf("unknown action code %d", code)
	}
	return a, nil
}
