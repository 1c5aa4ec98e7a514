package account

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	ledgerHttp "github.com/lwhitworth8/ngi-ledger/internal/http/respond"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.deactivate)
	r.Post("/templates/{templateID}", h.applyTemplate)
}

type createAccountRequest struct {
	EntityID      uuid.UUID             `json:"entity_id"`
	Code          string                `json:"code"`
	Name          string                `json:"name"`
	Type          account.Type          `json:"account_type"`
	NormalBalance account.NormalBalance `json:"normal_balance"`
	ParentID      *uuid.UUID            `json:"parent_account_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		EntityID:      req.EntityID,
		Code:          req.Code,
		Name:          req.Name,
		Type:          req.Type,
		NormalBalance: req.NormalBalance,
		ParentID:      req.ParentID,
	})
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(r.URL.Query().Get("entity_id"))
	if err != nil {
		http.Error(w, "invalid entity_id", http.StatusBadRequest)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	accounts, err := h.svc.List(r.Context(), entityID, activeOnly)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponse(a))
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

type applyTemplateRequest struct {
	EntityID uuid.UUID `json:"entity_id"`
}

func (h *Handler) applyTemplate(w http.ResponseWriter, r *http.Request) {
	var req applyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.ApplyTemplate(r.Context(), req.EntityID, chi.URLParam(r, "templateID"))
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, map[string]int{"created": created})
}

type accountResponse struct {
	ID            uuid.UUID             `json:"id"`
	EntityID      uuid.UUID             `json:"entity_id"`
	Code          string                `json:"code"`
	Name          string                `json:"name"`
	Type          account.Type          `json:"account_type"`
	NormalBalance account.NormalBalance `json:"normal_balance"`
	Active        bool                  `json:"active"`
	ParentID      *uuid.UUID            `json:"parent_account_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:            a.ID,
		EntityID:      a.EntityID,
		Code:          a.Code,
		Name:          a.Name,
		Type:          a.Type,
		NormalBalance: a.NormalBalance,
		Active:        a.Active,
		ParentID:      a.ParentID,
		CreatedAt:     a.CreatedAt,
	}
}
