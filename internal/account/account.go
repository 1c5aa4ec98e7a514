package account

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies an account in the chart of accounts.
type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeEquity    Type = "equity"
	TypeRevenue   Type = "revenue"
	TypeExpense   Type = "expense"
)

// Valid reports whether t is one of the five account types.
func (t Type) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}

	return false
}

// NormalBalance is the side on which an account's balance increases.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// NormalBalance returns the economically correct side for the account type:
// assets and expenses increase on the debit side, everything else on credit.
func (t Type) NormalBalance() NormalBalance {
	if t == TypeAsset || t == TypeExpense {
		return NormalDebit
	}

	return NormalCredit
}

// Account is one row of an entity's chart of accounts. Codes conventionally
// encode the type (1xxxx asset .. 5xxxx expense) but only uniqueness per
// entity is enforced. Accounts referenced by posted lines are never deleted,
// only deactivated.
type Account struct {
	ID            uuid.UUID
	EntityID      uuid.UUID
	Code          string
	Name          string
	Type          Type
	NormalBalance NormalBalance
	Active        bool
	ParentID      *uuid.UUID
	CreatedAt     time.Time
}
