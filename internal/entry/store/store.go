package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

const pgForeignKeyViolation = "23503"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanEntry reads an entry header row.
// Expected column order: id, entity_id, entry_number, entry_date, description, reference_number,
// total_debit, total_credit, status, created_by, approved_by, approved_at, approval_notes, created_at, updated_at
func scanEntry(s scanner) (*entry.Entry, error) {
	var e entry.Entry

	var statusStr string

	var refNum, notes sql.NullString

	if err := s.Scan(
		&e.ID, &e.EntityID, &e.EntryNumber, &e.Date, &e.Description, &refNum,
		&e.TotalDebit, &e.TotalCredit, &statusStr, &e.CreatedBy,
		&e.ApprovedBy, &e.ApprovedAt, &notes,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Status = entry.Status(statusStr)
	e.ReferenceNumber = refNum.String
	e.ApprovalNotes = notes.String

	return &e, nil
}

const selectEntryColumns = `
	id, entity_id, entry_number, entry_date, description, reference_number,
	total_debit, total_credit, status, created_by, approved_by, approved_at, approval_notes,
	created_at, updated_at
`

// entityLockKey derives the advisory-lock key that serializes entry
// numbering for one entity.
func entityLockKey(entityID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("journal-entry-number"))
	h.Write([]byte{0})
	h.Write(entityID[:])

	return int64(h.Sum64())
}

// CreateEntry writes the header and all lines in a single transaction. The
// per-entity advisory lock serializes concurrent creators so entry numbers
// stay strictly monotonic without duplicates; account membership is checked
// inside the same transaction so a line can never land on a foreign or
// inactive account.
func (s *Store) CreateEntry(ctx context.Context, e *entry.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning entry tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, entityLockKey(e.EntityID)); err != nil {
		return fmt.Errorf("acquiring entity lock: %w", err)
	}

	active, err := activeAccounts(ctx, tx, e.EntityID)
	if err != nil {
		return err
	}

	for _, l := range e.Lines {
		ok, known := active[l.AccountID]
		if !known {
			return &ledger.InvalidAccountError{AccountID: l.AccountID, Reason: "does not belong to entity " + e.EntityID.String()}
		}

		if !ok {
			return &ledger.InvalidAccountError{AccountID: l.AccountID, Reason: "is inactive"}
		}
	}

	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(entry_number), 0) + 1 FROM journal_entries WHERE entity_id = $1`,
		e.EntityID,
	).Scan(&e.EntryNumber)
	if err != nil {
		return fmt.Errorf("allocating entry number: %w", err)
	}

	var refNum *string
	if e.ReferenceNumber != "" {
		refNum = &e.ReferenceNumber
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO journal_entries (entity_id, entry_number, entry_date, description, reference_number,
			total_debit, total_credit, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`,
		e.EntityID,
		e.EntryNumber,
		e.Date,
		e.Description,
		refNum,
		e.TotalDebit,
		e.TotalCredit,
		e.Status,
		e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return &ledger.NotFoundError{Kind: "entity", ID: e.EntityID}
		}

		return fmt.Errorf("creating entry: %w", err)
	}

	lineQuery := `
		INSERT INTO journal_entry_lines (entry_id, account_id, line_number, description, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	for i := range e.Lines {
		l := &e.Lines[i]
		l.EntryID = e.ID

		if err := tx.QueryRowContext(ctx, lineQuery,
			l.EntryID, l.AccountID, l.LineNumber, l.Description, l.Debit, l.Credit,
		).Scan(&l.ID); err != nil {
			return fmt.Errorf("creating entry line %d: %w", l.LineNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entry: %w", err)
	}

	return nil
}

// activeAccounts loads the entity's chart into an id -> is_active map. The
// rows are share-locked for the rest of the transaction so a concurrent
// deactivation (which takes FOR UPDATE) cannot flip is_active between this
// check and the line inserts; the two transactions serialize either way.
func activeAccounts(ctx context.Context, tx *sql.Tx, entityID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, is_active FROM accounts WHERE entity_id = $1 FOR SHARE`, entityID)
	if err != nil {
		return nil, fmt.Errorf("loading entity accounts: %w", err)
	}
	defer rows.Close()

	active := make(map[uuid.UUID]bool)

	for rows.Next() {
		var id uuid.UUID

		var isActive bool

		if err := rows.Scan(&id, &isActive); err != nil {
			return nil, fmt.Errorf("scanning account flag: %w", err)
		}

		active[id] = isActive
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account flags: %w", err)
	}

	return active, nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*entry.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE id = $1`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ledger.NotFoundError{Kind: "entry", ID: id}
		}

		return nil, fmt.Errorf("getting entry: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_id, account_id, line_number, description, debit, credit
		FROM journal_entry_lines
		WHERE entry_id = $1
		ORDER BY line_number ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("getting entry lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entry.Line
		if err := rows.Scan(&l.ID, &l.EntryID, &l.AccountID, &l.LineNumber, &l.Description, &l.Debit, &l.Credit); err != nil {
			return nil, fmt.Errorf("scanning entry line: %w", err)
		}

		e.Lines = append(e.Lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry lines: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntries(ctx context.Context, filter entry.ListFilter) ([]*entry.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE entity_id = $1`

	args := []any{filter.EntityID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND entry_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND entry_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY entry_number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*entry.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

// CancelEntry is a compare-and-swap on status: only one caller can move the
// entry out of pending, and losers learn the state they lost to.
func (s *Store) CancelEntry(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE journal_entries
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return fmt.Errorf("cancelling entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancelling entry: %w", err)
	}

	if n == 0 {
		return s.transitionConflict(ctx, id)
	}

	return nil
}

// UpdateHeader rewrites description and reference while the entry is still
// pending; an entry that has left pending is immutable.
func (s *Store) UpdateHeader(ctx context.Context, id uuid.UUID, description, referenceNumber string) error {
	var refNum *string
	if referenceNumber != "" {
		refNum = &referenceNumber
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE journal_entries
		SET description = $1, reference_number = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
	`, description, refNum, id)
	if err != nil {
		return fmt.Errorf("updating entry header: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry header: %w", err)
	}

	if n == 0 {
		if err := s.transitionConflict(ctx, id); err != nil {
			var stateErr *ledger.InvalidStateError
			if errors.As(err, &stateErr) {
				return &ledger.ImmutableEntryError{EntryID: id, Status: stateErr.Status}
			}

			return err
		}
	}

	return nil
}

// transitionConflict explains a zero-row CAS update: the entry is either
// missing or already in a terminal state.
func (s *Store) transitionConflict(ctx context.Context, id uuid.UUID) error {
	var statusStr string

	err := s.db.QueryRowContext(ctx, `SELECT status FROM journal_entries WHERE id = $1`, id).Scan(&statusStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ledger.NotFoundError{Kind: "entry", ID: id}
		}

		return fmt.Errorf("inspecting entry status: %w", err)
	}

	return &ledger.InvalidStateError{EntryID: id, Status: statusStr}
}
