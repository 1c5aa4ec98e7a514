package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	entrystore "github.com/lwhitworth8/ngi-ledger/internal/entry/store"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

// Store persists approval transitions. Entry reads are delegated to the
// entry store so both views scan rows identically.
type Store struct {
	db      *sql.DB
	entries *entrystore.Store
}

func New(db *sql.DB) *Store {
	return &Store{db: db, entries: entrystore.New(db)}
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*entry.Entry, error) {
	return s.entries.GetEntry(ctx, id)
}

// Transition moves an entry out of pending. The row lock makes the status
// check and the update one atomic step, so concurrent approve/reject calls
// resolve to exactly one winner. Before an approval commits, the balance
// invariant is re-validated against the stored lines; a mismatch aborts the
// transition and leaves the entry untouched.
func (s *Store) Transition(ctx context.Context, id uuid.UUID, to entry.Status, approverID uuid.UUID, notes string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transition tx: %w", err)
	}
	defer tx.Rollback()

	var statusStr string

	var totalDebit, totalCredit decimal.Decimal

	err = tx.QueryRowContext(ctx, `
		SELECT status, total_debit, total_credit
		FROM journal_entries
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&statusStr, &totalDebit, &totalCredit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ledger.NotFoundError{Kind: "entry", ID: id}
		}

		return fmt.Errorf("locking entry: %w", err)
	}

	if entry.Status(statusStr) != entry.StatusPending {
		return &ledger.InvalidStateError{EntryID: id, Status: statusStr}
	}

	if to == entry.StatusApproved {
		var sumDebit, sumCredit decimal.Decimal

		err = tx.QueryRowContext(ctx, `
			SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
			FROM journal_entry_lines
			WHERE entry_id = $1
		`, id).Scan(&sumDebit, &sumCredit)
		if err != nil {
			return fmt.Errorf("summing entry lines: %w", err)
		}

		if !sumDebit.Equal(sumCredit) || !sumDebit.Equal(totalDebit) || !sumCredit.Equal(totalCredit) {
			return &ledger.UnbalancedEntryError{TotalDebit: sumDebit, TotalCredit: sumCredit}
		}
	}

	var notesArg *string
	if notes != "" {
		notesArg = &notes
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE journal_entries
		SET status = $1, approved_by = $2, approved_at = NOW(), approval_notes = $3, updated_at = NOW()
		WHERE id = $4
	`, to, approverID, notesArg, id); err != nil {
		return fmt.Errorf("transitioning entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transition: %w", err)
	}

	return nil
}
