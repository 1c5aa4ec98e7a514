package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
)

// TrialBalanceRow is one account's position as of a date. Balance is signed
// by the account's normal side: debit accounts report debits minus credits,
// credit accounts the reverse.
type TrialBalanceRow struct {
	AccountID     uuid.UUID
	Code          string
	Name          string
	Type          account.Type
	NormalBalance account.NormalBalance
	TotalDebits   decimal.Decimal
	TotalCredits  decimal.Decimal
	Balance       decimal.Decimal
}

// AccountBalance is a single account's signed balance as of a date.
// LastActivity is nil when no approved entry has ever touched the account.
type AccountBalance struct {
	AccountID    uuid.UUID
	Balance      decimal.Decimal
	LastActivity *time.Time
}

// GeneralLedgerLine is one posting against an account, with the running
// balance after applying it.
type GeneralLedgerLine struct {
	EntryID        uuid.UUID
	EntryNumber    int64
	Date           time.Time
	Description    string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
}
