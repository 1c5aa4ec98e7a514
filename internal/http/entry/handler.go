package entry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/approval"
	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	ledgerHttp "github.com/lwhitworth8/ngi-ledger/internal/http/respond"
	"github.com/lwhitworth8/ngi-ledger/internal/http/middleware"
)

type Handler struct {
	entries   *entry.Service
	approvals *approval.Service
}

func NewHandler(entries *entry.Service, approvals *approval.Service) *Handler {
	return &Handler{entries: entries, approvals: approvals}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/cancel", h.cancel)
	r.Post("/{id}/reverse", h.reverse)
}

type lineRequest struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type createEntryRequest struct {
	EntityID        uuid.UUID     `json:"entity_id"`
	Date            string        `json:"entry_date"`
	Description     string        `json:"description"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	Lines           []lineRequest `json:"lines"`
}

// create posts a new entry and immediately runs the submission policy, so
// de-minimis entries come back already approved by the system approver.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid entry_date", http.StatusBadRequest)
		return
	}

	lines := make([]entry.LineParams, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = entry.LineParams{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}

	e, err := h.entries.Create(r.Context(), entry.CreateParams{
		EntityID:        req.EntityID,
		Date:            date,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Lines:           lines,
		CreatedBy:       userID,
	})
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	e, err = h.approvals.Submit(r.Context(), e.ID)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(r.URL.Query().Get("entity_id"))
	if err != nil {
		http.Error(w, "invalid entity_id", http.StatusBadRequest)
		return
	}

	filter := entry.ListFilter{EntityID: entityID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := entry.Status(s)
		filter.Status = &status
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	entries, err := h.entries.List(r.Context(), filter)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponseList(entries))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.entries.Get(r.Context(), id)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, toResponse(e))
}

type updateEntryRequest struct {
	Description     string `json:"description"`
	ReferenceNumber string `json:"reference_number,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.entries.Update(r.Context(), id, req.Description, req.ReferenceNumber); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type approveRequest struct {
	Notes string `json:"notes,omitempty"`
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.approvals.Approve(r.Context(), id, userID, req.Notes); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.approvals.Reject(r.Context(), id, userID, req.Reason); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := h.entries.Cancel(r.Context(), id, userID); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reverseRequest struct {
	Date string `json:"entry_date"`
}

func (h *Handler) reverse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req reverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid entry_date", http.StatusBadRequest)
		return
	}

	e, err := h.entries.CreateReversal(r.Context(), id, date, userID)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusCreated, toResponse(e))
}
