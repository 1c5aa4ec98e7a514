package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lwhitworth8/ngi-ledger/internal/entity"
)

type entityResponse struct {
	ID            uuid.UUID   `json:"id"`
	LegalName     string      `json:"legal_name"`
	Type          entity.Type `json:"entity_type"`
	EIN           string      `json:"ein,omitempty"`
	FormationDate *string     `json:"formation_date,omitempty"`
	Active        bool        `json:"active"`
	ParentID      *uuid.UUID  `json:"parent_entity_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toResponse(e *entity.Entity) entityResponse {
	resp := entityResponse{
		ID:        e.ID,
		LegalName: e.LegalName,
		Type:      e.Type,
		EIN:       e.EIN,
		Active:    e.Active,
		ParentID:  e.ParentID,
		CreatedAt: e.CreatedAt,
	}

	if e.FormationDate != nil {
		d := e.FormationDate.Format(time.DateOnly)
		resp.FormationDate = &d
	}

	return resp
}

func toResponseList(entities []*entity.Entity) []entityResponse {
	resp := make([]entityResponse, len(entities))
	for i, e := range entities {
		resp[i] = toResponse(e)
	}

	return resp
}

type relationshipResponse struct {
	ID            uuid.UUID `json:"id"`
	ParentID      uuid.UUID `json:"parent_entity_id"`
	SubsidiaryID  uuid.UUID `json:"subsidiary_entity_id"`
	OwnershipPct  string    `json:"ownership_pct"`
	EffectiveDate string    `json:"effective_date"`
}

func toRelationshipResponse(r *entity.Relationship) relationshipResponse {
	return relationshipResponse{
		ID:            r.ID,
		ParentID:      r.ParentID,
		SubsidiaryID:  r.SubsidiaryID,
		OwnershipPct:  r.OwnershipPct.StringFixed(2),
		EffectiveDate: r.EffectiveDate.Format(time.DateOnly),
	}
}
