package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

// maxAncestorDepth bounds parent-chain walks so malformed legacy data can
// never hang a caller.
const maxAncestorDepth = 32

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=entity
type Repository interface {
	CreateEntity(ctx context.Context, e *Entity) error
	GetEntity(ctx context.Context, id uuid.UUID) (*Entity, error)
	ListEntities(ctx context.Context, activeOnly bool) ([]*Entity, error)
	UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	CreateRelationship(ctx context.Context, r *Relationship) error
	ListRelationships(ctx context.Context, entityID uuid.UUID) ([]*Relationship, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	LegalName     string
	Type          Type
	EIN           string
	FormationDate *time.Time
	ParentID      *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Entity, error) {
	if params.LegalName == "" {
		return nil, &ledger.ValidationError{Field: "legal_name", Reason: "must not be empty"}
	}

	if !params.Type.Valid() {
		return nil, &ledger.ValidationError{Field: "entity_type", Reason: "unknown type " + string(params.Type)}
	}

	if params.ParentID != nil {
		if _, err := s.repo.GetEntity(ctx, *params.ParentID); err != nil {
			return nil, err
		}
	}

	e := &Entity{
		LegalName:     params.LegalName,
		Type:          params.Type,
		EIN:           params.EIN,
		FormationDate: params.FormationDate,
		Active:        true,
		ParentID:      params.ParentID,
	}
	if err := s.repo.CreateEntity(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entity, error) {
	return s.repo.GetEntity(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Entity, error) {
	return s.repo.ListEntities(ctx, activeOnly)
}

// SetParent assigns parentID as the parent of id after verifying the new
// edge cannot close a cycle: parentID must not be id itself or any of id's
// descendants, i.e. id must not appear in parentID's ancestor chain.
func (s *Service) SetParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	if _, err := s.repo.GetEntity(ctx, id); err != nil {
		return err
	}

	if parentID != nil {
		if *parentID == id {
			return &ledger.CycleError{EntityID: id}
		}

		chain, err := s.Ancestors(ctx, *parentID)
		if err != nil {
			return err
		}

		for _, a := range chain {
			if a.ID == id {
				return &ledger.CycleError{EntityID: id}
			}
		}
	}

	return s.repo.UpdateParent(ctx, id, parentID)
}

// Deactivate soft-disables an entity. Entities referenced by journal entries
// are never deleted, only deactivated.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetEntity(ctx, id); err != nil {
		return err
	}

	return s.repo.SetActive(ctx, id, false)
}

// Ancestors returns the parent chain of id, closest first. The walk is
// bounded and cycle-guarded; revisiting a node reports a CycleError rather
// than looping.
func (s *Service) Ancestors(ctx context.Context, id uuid.UUID) ([]*Entity, error) {
	e, err := s.repo.GetEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := map[uuid.UUID]bool{e.ID: true}

	var chain []*Entity

	for e.ParentID != nil {
		if len(chain) >= maxAncestorDepth || seen[*e.ParentID] {
			return nil, &ledger.CycleError{EntityID: id}
		}

		parent, err := s.repo.GetEntity(ctx, *e.ParentID)
		if err != nil {
			return nil, err
		}

		seen[parent.ID] = true
		chain = append(chain, parent)
		e = parent
	}

	return chain, nil
}

type RelationshipParams struct {
	ParentID      uuid.UUID
	SubsidiaryID  uuid.UUID
	OwnershipPct  decimal.Decimal
	EffectiveDate time.Time
}

// AddRelationship records an explicit ownership edge used for consolidation.
func (s *Service) AddRelationship(ctx context.Context, params RelationshipParams) (*Relationship, error) {
	if !params.OwnershipPct.IsPositive() || params.OwnershipPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, &ledger.ValidationError{Field: "ownership_pct", Reason: "must be in (0, 100]"}
	}

	if params.ParentID == params.SubsidiaryID {
		return nil, &ledger.ValidationError{Field: "subsidiary_id", Reason: "must differ from parent"}
	}

	if _, err := s.repo.GetEntity(ctx, params.ParentID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetEntity(ctx, params.SubsidiaryID); err != nil {
		return nil, err
	}

	r := &Relationship{
		ParentID:      params.ParentID,
		SubsidiaryID:  params.SubsidiaryID,
		OwnershipPct:  params.OwnershipPct,
		EffectiveDate: params.EffectiveDate,
	}
	if err := s.repo.CreateRelationship(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// Relationships lists ownership edges touching entityID, oldest effective
// date first.
func (s *Service) Relationships(ctx context.Context, entityID uuid.UUID) ([]*Relationship, error) {
	return s.repo.ListRelationships(ctx, entityID)
}
