package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/lwhitworth8/ngi-ledger/internal/entry"
)

type lineResponse struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	LineNumber  int       `json:"line_number"`
	Description string    `json:"description,omitempty"`
	Debit       string    `json:"debit"`
	Credit      string    `json:"credit"`
}

type entryResponse struct {
	ID              uuid.UUID      `json:"id"`
	EntityID        uuid.UUID      `json:"entity_id"`
	EntryNumber     int64          `json:"entry_number"`
	Date            string         `json:"entry_date"`
	Description     string         `json:"description"`
	ReferenceNumber string         `json:"reference_number,omitempty"`
	TotalDebit      string         `json:"total_debit"`
	TotalCredit     string         `json:"total_credit"`
	Status          entry.Status   `json:"status"`
	CreatedBy       uuid.UUID      `json:"created_by"`
	ApprovedBy      *uuid.UUID     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	ApprovalNotes   string         `json:"approval_notes,omitempty"`
	Lines           []lineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func toResponse(e *entry.Entry) entryResponse {
	resp := entryResponse{
		ID:              e.ID,
		EntityID:        e.EntityID,
		EntryNumber:     e.EntryNumber,
		Date:            e.Date.Format(time.DateOnly),
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		TotalDebit:      e.TotalDebit.StringFixed(2),
		TotalCredit:     e.TotalCredit.StringFixed(2),
		Status:          e.Status,
		CreatedBy:       e.CreatedBy,
		ApprovedBy:      e.ApprovedBy,
		ApprovedAt:      e.ApprovedAt,
		ApprovalNotes:   e.ApprovalNotes,
		CreatedAt:       e.CreatedAt,
	}

	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ID:          l.ID,
			AccountID:   l.AccountID,
			LineNumber:  l.LineNumber,
			Description: l.Description,
			Debit:       l.Debit.StringFixed(2),
			Credit:      l.Credit.StringFixed(2),
		})
	}

	return resp
}

func toResponseList(entries []*entry.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
