package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=entry
type Repository interface {
	// CreateEntry persists the header and all lines in one transaction,
	// assigning the next per-entity entry number under a per-entity lock.
	// A failure leaves nothing behind.
	CreateEntry(ctx context.Context, e *Entry) error

	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)

	// CancelEntry transitions pending -> cancelled with compare-and-swap
	// semantics; a race loser gets InvalidStateError, never a silent no-op.
	CancelEntry(ctx context.Context, id uuid.UUID) error

	// UpdateHeader rewrites description and reference while the entry is
	// still pending.
	UpdateHeader(ctx context.Context, id uuid.UUID, description, referenceNumber string) error
}

type Service struct {
	repo   Repository
	policy ledger.Policy
}

func NewService(repo Repository, policy ledger.Policy) *Service {
	return &Service{repo: repo, policy: policy}
}

type LineParams struct {
	AccountID   uuid.UUID
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

type CreateParams struct {
	EntityID        uuid.UUID
	Date            time.Time
	Description     string
	ReferenceNumber string
	Lines           []LineParams
	CreatedBy       uuid.UUID
}

type ListFilter struct {
	EntityID  uuid.UUID
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

// Create validates and posts a new entry in pending state. The balanced-entry
// invariant is enforced here, before anything is durably visible: lines must
// be non-empty, each line one-sided, amounts within the configured precision,
// and total debits equal to total credits.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Entry, error) {
	if len(params.Lines) == 0 {
		return nil, &ledger.EmptyEntryError{}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	lines := make([]Line, len(params.Lines))

	for i, lp := range params.Lines {
		if lp.Debit.IsNegative() || lp.Credit.IsNegative() {
			return nil, &ledger.ValidationError{
				Field:  fmt.Sprintf("lines[%d]", i),
				Reason: "amounts must not be negative",
			}
		}

		if lp.Debit.IsZero() == lp.Credit.IsZero() {
			return nil, &ledger.ValidationError{
				Field:  fmt.Sprintf("lines[%d]", i),
				Reason: "exactly one of debit or credit must be non-zero",
			}
		}

		if exceedsPrecision(lp.Debit, s.policy.CurrencyPrecision) || exceedsPrecision(lp.Credit, s.policy.CurrencyPrecision) {
			return nil, &ledger.ValidationError{
				Field:  fmt.Sprintf("lines[%d]", i),
				Reason: fmt.Sprintf("amounts are limited to %d decimal places", s.policy.CurrencyPrecision),
			}
		}

		totalDebit = totalDebit.Add(lp.Debit)
		totalCredit = totalCredit.Add(lp.Credit)

		lines[i] = Line{
			AccountID:   lp.AccountID,
			LineNumber:  i + 1,
			Description: lp.Description,
			Debit:       lp.Debit,
			Credit:      lp.Credit,
		}
	}

	if !totalDebit.Equal(totalCredit) {
		return nil, &ledger.UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	e := &Entry{
		EntityID:        params.EntityID,
		Date:            params.Date,
		Description:     params.Description,
		ReferenceNumber: params.ReferenceNumber,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		Status:          StatusPending,
		CreatedBy:       params.CreatedBy,
		Lines:           lines,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Get returns the entry with its lines in line-number order.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// Cancel withdraws a pending entry. The entry number is not reused.
func (s *Service) Cancel(ctx context.Context, id, requesterID uuid.UUID) error {
	_ = requesterID // identity is authenticated upstream; any caller may cancel
	return s.repo.CancelEntry(ctx, id)
}

// Update rewrites the header description and reference of a pending entry.
// Entries that have left pending are immutable.
func (s *Service) Update(ctx context.Context, id uuid.UUID, description, referenceNumber string) error {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	if e.Status.Terminal() {
		return &ledger.ImmutableEntryError{EntryID: id, Status: string(e.Status)}
	}

	return s.repo.UpdateHeader(ctx, id, description, referenceNumber)
}

// CreateReversal posts a new pending entry mirroring an approved entry with
// debit and credit sides swapped. This is the only supported correction for
// approved entries; in-place edits are never allowed.
func (s *Service) CreateReversal(ctx context.Context, id uuid.UUID, date time.Time, createdBy uuid.UUID) (*Entry, error) {
	src, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if src.Status != StatusApproved {
		return nil, &ledger.InvalidStateError{EntryID: id, Status: string(src.Status)}
	}

	lines := make([]LineParams, len(src.Lines))
	for i, l := range src.Lines {
		lines[i] = LineParams{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Credit,
			Credit:      l.Debit,
		}
	}

	return s.Create(ctx, CreateParams{
		EntityID:        src.EntityID,
		Date:            date,
		Description:     fmt.Sprintf("Reversal of entry #%d: %s", src.EntryNumber, src.Description),
		ReferenceNumber: src.ReferenceNumber,
		Lines:           lines,
		CreatedBy:       createdBy,
	})
}

func exceedsPrecision(d decimal.Decimal, places int32) bool {
	return !d.Equal(d.Truncate(places))
}
