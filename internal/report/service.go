// Package report derives read-only views from approved journal entries:
// trial balance, account balances, and general-ledger runs. Nothing here
// mutates ledger state, and nothing is cached; identical approved sets give
// identical results.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)

	// TrialBalanceRows returns every account of the entity with debit and
	// credit sums over approved entries dated at or before asOf, ordered by
	// account code. Balance is left for the caller to sign.
	TrialBalanceRows(ctx context.Context, entityID uuid.UUID, asOf time.Time) ([]*TrialBalanceRow, error)

	// AccountActivity sums approved debits and credits against one account
	// up to asOf and reports the latest entry date, nil when untouched.
	AccountActivity(ctx context.Context, accountID uuid.UUID, asOf time.Time) (debits, credits decimal.Decimal, last *time.Time, err error)

	// GeneralLedgerRows streams approved postings against an account within
	// the date range, ordered by entry date then entry number then line
	// number. The cursor is lazy; callers own Close.
	GeneralLedgerRows(ctx context.Context, accountID uuid.UUID, from, to time.Time) (Cursor, error)
}

// Cursor lazily yields general-ledger lines in posting order.
type Cursor interface {
	Next() bool
	Line() GeneralLedgerLine
	Err() error
	Close() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// signed applies the normal-balance convention: debit accounts grow with
// debits, credit accounts with credits.
func signed(normal account.NormalBalance, debits, credits decimal.Decimal) decimal.Decimal {
	if normal == account.NormalDebit {
		return debits.Sub(credits)
	}

	return credits.Sub(debits)
}

// TrialBalance reports every account's signed balance as of a date, ordered
// by account code. Summing the rows signed back to the debit side always
// yields zero for a balanced ledger.
func (s *Service) TrialBalance(ctx context.Context, entityID uuid.UUID, asOf time.Time) ([]*TrialBalanceRow, error) {
	rows, err := s.repo.TrialBalanceRows(ctx, entityID, asOf)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		r.Balance = signed(r.NormalBalance, r.TotalDebits, r.TotalCredits)
	}

	return rows, nil
}

// AccountBalance reports one account's signed balance and latest approved
// activity as of a date.
func (s *Service) AccountBalance(ctx context.Context, accountID uuid.UUID, asOf time.Time) (*AccountBalance, error) {
	a, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	debits, credits, last, err := s.repo.AccountActivity(ctx, accountID, asOf)
	if err != nil {
		return nil, err
	}

	return &AccountBalance{
		AccountID:    accountID,
		Balance:      signed(a.NormalBalance, debits, credits),
		LastActivity: last,
	}, nil
}

// GeneralLedger opens a lazy run over an account's approved postings in
// [from, to]. The running balance is seeded with the account's balance as of
// the day before from, and advances in posting order: entry date, then the
// per-entity entry number as the stable tie-break. Re-calling restarts the
// run from scratch.
func (s *Service) GeneralLedger(ctx context.Context, accountID uuid.UUID, from, to time.Time) (*GeneralLedgerRun, error) {
	a, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	debits, credits, _, err := s.repo.AccountActivity(ctx, accountID, from.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	cursor, err := s.repo.GeneralLedgerRows(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	return &GeneralLedgerRun{
		cursor:  cursor,
		normal:  a.NormalBalance,
		running: signed(a.NormalBalance, debits, credits),
	}, nil
}

// GeneralLedgerRun walks postings lazily, maintaining the running balance.
type GeneralLedgerRun struct {
	cursor  Cursor
	normal  account.NormalBalance
	running decimal.Decimal
	current GeneralLedgerLine
}

// Next advances to the following posting. It returns false at the end of the
// range or on error; check Err after the loop.
func (r *GeneralLedgerRun) Next() bool {
	if !r.cursor.Next() {
		return false
	}

	line := r.cursor.Line()
	r.running = r.running.Add(signed(r.normal, line.Debit, line.Credit))
	line.RunningBalance = r.running
	r.current = line

	return true
}

// Line returns the posting Next advanced to.
func (r *GeneralLedgerRun) Line() GeneralLedgerLine {
	return r.current
}

func (r *GeneralLedgerRun) Err() error {
	return r.cursor.Err()
}

func (r *GeneralLedgerRun) Close() error {
	return r.cursor.Close()
}
