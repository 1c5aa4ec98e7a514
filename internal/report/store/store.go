package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
	"github.com/lwhitworth8/ngi-ledger/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `
		SELECT id, entity_id, code, name, account_type, normal_balance, is_active, parent_account_id, created_at
		FROM accounts
		WHERE id = $1
	`

	var a account.Account

	var typeStr, normalStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.EntityID, &a.Code, &a.Name, &typeStr, &normalStr, &a.Active,
		&a.ParentID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ledger.NotFoundError{Kind: "account", ID: id}
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	a.Type = account.Type(typeStr)
	a.NormalBalance = account.NormalBalance(normalStr)

	return &a, nil
}

// TrialBalanceRows aggregates approved activity per account. Accounts with
// no approved postings still appear, with zero sums, so the report covers
// the whole chart.
func (s *Store) TrialBalanceRows(ctx context.Context, entityID uuid.UUID, asOf time.Time) ([]*report.TrialBalanceRow, error) {
	query := `
		SELECT a.id, a.code, a.name, a.account_type, a.normal_balance,
			COALESCE(SUM(l.debit) FILTER (WHERE e.status = 'approved' AND e.entry_date <= $2), 0),
			COALESCE(SUM(l.credit) FILTER (WHERE e.status = 'approved' AND e.entry_date <= $2), 0)
		FROM accounts a
		LEFT JOIN journal_entry_lines l ON l.account_id = a.id
		LEFT JOIN journal_entries e ON e.id = l.entry_id
		WHERE a.entity_id = $1
		GROUP BY a.id, a.code, a.name, a.account_type, a.normal_balance
		ORDER BY a.code ASC
	`

	rows, err := s.db.QueryContext(ctx, query, entityID, asOf)
	if err != nil {
		return nil, fmt.Errorf("querying trial balance: %w", err)
	}
	defer rows.Close()

	var result []*report.TrialBalanceRow

	for rows.Next() {
		var r report.TrialBalanceRow

		var typeStr, normalStr string

		if err := rows.Scan(&r.AccountID, &r.Code, &r.Name, &typeStr, &normalStr, &r.TotalDebits, &r.TotalCredits); err != nil {
			return nil, fmt.Errorf("scanning trial balance row: %w", err)
		}

		r.Type = account.Type(typeStr)
		r.NormalBalance = account.NormalBalance(normalStr)

		result = append(result, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trial balance rows: %w", err)
	}

	return result, nil
}

func (s *Store) AccountActivity(ctx context.Context, accountID uuid.UUID, asOf time.Time) (decimal.Decimal, decimal.Decimal, *time.Time, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0), MAX(e.entry_date)
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE l.account_id = $1 AND e.status = 'approved' AND e.entry_date <= $2
	`

	var debits, credits decimal.Decimal

	var last *time.Time

	err := s.db.QueryRowContext(ctx, query, accountID, asOf).Scan(&debits, &credits, &last)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, fmt.Errorf("summing account activity: %w", err)
	}

	return debits, credits, last, nil
}

// GeneralLedgerRows opens a lazy cursor over approved postings for one
// account. Ordering is entry date, then entry number, then line number, so
// runs are reproducible for audit.
func (s *Store) GeneralLedgerRows(ctx context.Context, accountID uuid.UUID, from, to time.Time) (report.Cursor, error) {
	query := `
		SELECT e.id, e.entry_number, e.entry_date, e.description, l.debit, l.credit
		FROM journal_entry_lines l
		JOIN journal_entries e ON e.id = l.entry_id
		WHERE l.account_id = $1 AND e.status = 'approved'
			AND e.entry_date >= $2 AND e.entry_date <= $3
		ORDER BY e.entry_date ASC, e.entry_number ASC, l.line_number ASC
	`

	rows, err := s.db.QueryContext(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying general ledger: %w", err)
	}

	return &ledgerCursor{rows: rows}, nil
}

type ledgerCursor struct {
	rows    *sql.Rows
	current report.GeneralLedgerLine
	err     error
}

func (c *ledgerCursor) Next() bool {
	if c.err != nil || !c.rows.Next() {
		return false
	}

	var line report.GeneralLedgerLine
	if err := c.rows.Scan(&line.EntryID, &line.EntryNumber, &line.Date, &line.Description, &line.Debit, &line.Credit); err != nil {
		c.err = fmt.Errorf("scanning general ledger line: %w", err)
		return false
	}

	c.current = line

	return true
}

func (c *ledgerCursor) Line() report.GeneralLedgerLine {
	return c.current
}

func (c *ledgerCursor) Err() error {
	if c.err != nil {
		return c.err
	}

	return c.rows.Err()
}

func (c *ledgerCursor) Close() error {
	return c.rows.Close()
}
