// Package ledger defines the error taxonomy shared by the ledger engine's
// domain packages. Every failure carries the identifiers a caller needs to
// act on it; nothing is swallowed or retried below this boundary.
package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotFoundError reports a lookup miss for a persisted record.
type NotFoundError struct {
	Kind string // "entity", "account", "entry"
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError reports malformed or inconsistent input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Kind string
	Key  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Key)
}

// UnbalancedEntryError reports a journal entry whose debits and credits
// do not match.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("entry is not balanced: debits %s != credits %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
}

// EmptyEntryError reports an entry submitted with no lines.
type EmptyEntryError struct{}

func (e *EmptyEntryError) Error() string {
	return "entry has no lines"
}

// InvalidAccountError reports a line referencing an account that is missing,
// inactive, or belongs to a different entity.
type InvalidAccountError struct {
	AccountID uuid.UUID
	Reason    string
}

func (e *InvalidAccountError) Error() string {
	return fmt.Sprintf("account %s: %s", e.AccountID, e.Reason)
}

// InvalidStateError reports an illegal status transition, including losing
// a compare-and-swap race on the entry status.
type InvalidStateError struct {
	EntryID uuid.UUID
	Status  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("entry %s is %s, transition not allowed", e.EntryID, e.Status)
}

// SelfApprovalError reports an approval attempt by the entry's creator.
type SelfApprovalError struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

func (e *SelfApprovalError) Error() string {
	return fmt.Sprintf("user %s cannot approve their own entry %s", e.UserID, e.EntryID)
}

// ImmutableEntryError reports a mutation attempt on an entry that has left
// the pending state.
type ImmutableEntryError struct {
	EntryID uuid.UUID
	Status  string
}

func (e *ImmutableEntryError) Error() string {
	return fmt.Sprintf("entry %s is %s and immutable", e.EntryID, e.Status)
}

// CycleError reports a parent assignment that would make an entity its own
// ancestor.
type CycleError struct {
	EntityID uuid.UUID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("entity %s would become its own ancestor", e.EntityID)
}
