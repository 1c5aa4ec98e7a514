package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type classifies a legal business unit.
type Type string

const (
	TypeLLC         Type = "llc"
	TypeCorp        Type = "corp"
	TypePartnership Type = "partnership"
	TypeSoleProp    Type = "sole_prop"
)

// Valid reports whether t is one of the known entity types.
func (t Type) Valid() bool {
	switch t {
	case TypeLLC, TypeCorp, TypePartnership, TypeSoleProp:
		return true
	}

	return false
}

// Entity represents a legal business unit. ParentID is a weak reference:
// deleting or deactivating a parent never cascades to children.
type Entity struct {
	ID            uuid.UUID
	LegalName     string
	Type          Type
	EIN           string // empty = not assigned
	FormationDate *time.Time
	Active        bool
	ParentID      *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Relationship is an explicit parent/subsidiary ownership edge, distinct
// from the ParentID pointer, used for consolidation reporting. An entity
// pair may carry multiple relationship records over time.
type Relationship struct {
	ID            uuid.UUID
	ParentID      uuid.UUID
	SubsidiaryID  uuid.UUID
	OwnershipPct  decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
}
