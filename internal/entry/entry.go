package entry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a journal entry. Pending is the
// only non-terminal state; approved, rejected, and cancelled entries never
// transition again.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Line is one leg of a journal entry. Exactly one of Debit/Credit is
// non-zero. Lines are owned by their entry and never outlive it.
type Line struct {
	ID          uuid.UUID
	EntryID     uuid.UUID
	AccountID   uuid.UUID
	LineNumber  int
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Entry is the atomic unit of financial change: a balanced set of lines
// posted against one entity. EntryNumber is a per-entity monotonic sequence,
// never reused even for rejected or cancelled entries. Once an entry leaves
// pending it is immutable; corrections are new reversing entries.
type Entry struct {
	ID              uuid.UUID
	EntityID        uuid.UUID
	EntryNumber     int64
	Date            time.Time
	Description     string
	ReferenceNumber string
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Status          Status
	CreatedBy       uuid.UUID
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	ApprovalNotes   string
	Lines           []Line
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Total returns the entry's absolute total. Debits equal credits by
// construction, so either side serves.
func (e *Entry) Total() decimal.Decimal {
	return e.TotalDebit
}
