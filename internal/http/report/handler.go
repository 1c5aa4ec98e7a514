package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	ledgerHttp "github.com/lwhitworth8/ngi-ledger/internal/http/respond"
	"github.com/lwhitworth8/ngi-ledger/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/trial-balance", h.trialBalance)
	r.Get("/accounts/{id}/balance", h.accountBalance)
	r.Get("/accounts/{id}/general-ledger", h.generalLedger)
}

func queryDate(r *http.Request, key string, fallback time.Time) (time.Time, bool) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback, true
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

type trialBalanceRowResponse struct {
	AccountID    uuid.UUID `json:"account_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	AccountType  string    `json:"account_type"`
	TotalDebits  string    `json:"total_debits"`
	TotalCredits string    `json:"total_credits"`
	Balance      string    `json:"balance"`
}

func (h *Handler) trialBalance(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(r.URL.Query().Get("entity_id"))
	if err != nil {
		http.Error(w, "invalid entity_id", http.StatusBadRequest)
		return
	}

	asOf, ok := queryDate(r, "as_of", time.Now().UTC())
	if !ok {
		http.Error(w, "invalid as_of", http.StatusBadRequest)
		return
	}

	rows, err := h.svc.TrialBalance(r.Context(), entityID, asOf)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	resp := make([]trialBalanceRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = trialBalanceRowResponse{
			AccountID:    row.AccountID,
			Code:         row.Code,
			Name:         row.Name,
			AccountType:  string(row.Type),
			TotalDebits:  row.TotalDebits.StringFixed(2),
			TotalCredits: row.TotalCredits.StringFixed(2),
			Balance:      row.Balance.StringFixed(2),
		}
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, resp)
}

type accountBalanceResponse struct {
	AccountID    uuid.UUID `json:"account_id"`
	Balance      string    `json:"balance"`
	LastActivity *string   `json:"last_activity_date,omitempty"`
}

func (h *Handler) accountBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	asOf, ok := queryDate(r, "as_of", time.Now().UTC())
	if !ok {
		http.Error(w, "invalid as_of", http.StatusBadRequest)
		return
	}

	b, err := h.svc.AccountBalance(r.Context(), id, asOf)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	resp := accountBalanceResponse{
		AccountID: b.AccountID,
		Balance:   b.Balance.StringFixed(2),
	}

	if b.LastActivity != nil {
		d := b.LastActivity.Format(time.DateOnly)
		resp.LastActivity = &d
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, resp)
}

type generalLedgerLineResponse struct {
	EntryID        uuid.UUID `json:"entry_id"`
	EntryNumber    int64     `json:"entry_number"`
	Date           string    `json:"entry_date"`
	Description    string    `json:"description"`
	Debit          string    `json:"debit"`
	Credit         string    `json:"credit"`
	RunningBalance string    `json:"running_balance"`
}

func (h *Handler) generalLedger(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	from, ok := queryDate(r, "from", time.Time{})
	if !ok || from.IsZero() {
		http.Error(w, "invalid or missing from", http.StatusBadRequest)
		return
	}

	to, ok := queryDate(r, "to", time.Now().UTC())
	if !ok {
		http.Error(w, "invalid to", http.StatusBadRequest)
		return
	}

	run, err := h.svc.GeneralLedger(r.Context(), id, from, to)
	if err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}
	defer run.Close()

	var resp []generalLedgerLineResponse

	for run.Next() {
		l := run.Line()
		resp = append(resp, generalLedgerLineResponse{
			EntryID:        l.EntryID,
			EntryNumber:    l.EntryNumber,
			Date:           l.Date.Format(time.DateOnly),
			Description:    l.Description,
			Debit:          l.Debit.StringFixed(2),
			Credit:         l.Credit.StringFixed(2),
			RunningBalance: l.RunningBalance.StringFixed(2),
		})
	}

	if err := run.Err(); err != nil {
		ledgerHttp.WriteError(w, err)
		return
	}

	ledgerHttp.WriteJSON(w, http.StatusOK, resp)
}
