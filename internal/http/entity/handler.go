package entity

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/entity"
	ledgerHttp "github.com/lwhitworth8/ngi-ledger/internal/http/respond"
)

type Handler struct {
	svc *entity.Service
}

func NewHandler(svc *entity.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.deactivate)
	r.Patch("/{id}/parent", h.setParent)
	r.Get("/{id}/ancestors", h.ancestors)
	r.Post("/relationships", h.addRelationship)
	r.Get("/{id}/relationships", h.relationships)
}

type createEntityRequest struct {
	LegalName     string      `json:"legal_name"`
	Type          entity.Type `json:"entity_type"`
	EIN           string      `json:"ein,omitempty"`
	FormationDate *string     `json:"formation_date,omitempty"`
	ParentID      *uuid.UUID  `json:"parent_entity_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := entity.CreateParams{
		LegalName: req.LegalName,
		Type:      req.Type,
		EIN:       req.EIN,
		ParentID:  req.ParentID,
	}

	if req.FormationDate != nil {
		t, err := time.Parse(time.DateOnly, *req.FormationDate)
		if err != nil {
			http.Error(w, "invalid formation_date", http.StatusBadRequest)
			return
		}

		params.FormationDate = &t
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	entities, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponseList(entities))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setParentRequest struct {
	ParentID *uuid.UUID `json:"parent_entity_id"`
}

func (h *Handler) setParent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setParentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetParent(r.Context(), id, req.ParentID); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ancestors(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	chain, err := h.svc.Ancestors(r.Context(), id)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponseList(chain))
}

type addRelationshipRequest struct {
	ParentID      uuid.UUID       `json:"parent_entity_id"`
	SubsidiaryID  uuid.UUID       `json:"subsidiary_entity_id"`
	OwnershipPct  decimal.Decimal `json:"ownership_pct"`
	EffectiveDate string          `json:"effective_date"`
}

func (h *Handler) addRelationship(w http.ResponseWriter, r *http.Request) {
	var req addRelationshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	effective, err := time.Parse(time.DateOnly, req.EffectiveDate)
	if err != nil {
		http.Error(w, "invalid effective_date", http.StatusBadRequest)
		return
	}

	rel, err := h.svc.AddRelationship(r.Context(), entity.RelationshipParams{
		ParentID:      req.ParentID,
		SubsidiaryID:  req.SubsidiaryID,
		OwnershipPct:  req.OwnershipPct,
		EffectiveDate: effective,
	})
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusCreated, toRelationshipResponse(rel))
}

func (h *Handler) relationships(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rels, err := h.svc.Relationships(r.Context(), id)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	resp := make([]relationshipResponse, len(rels))
	for i, rel := range rels {
		resp[i] = toRelationshipResponse(rel)
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, resp)
}
