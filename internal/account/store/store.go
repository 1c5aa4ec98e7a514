package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

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

// scanAccount reads an account row.
// Expected column order: id, entity_id, code, name, account_type, normal_balance, is_active, parent_account_id, created_at
func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account

	var typeStr, normalStr string

	if err := s.Scan(
		&a.ID, &a.EntityID, &a.Code, &a.Name, &typeStr, &normalStr, &a.Active,
		&a.ParentID, &a.CreatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = account.Type(typeStr)
	a.NormalBalance = account.NormalBalance(normalStr)

	return &a, nil
}

const selectAccountColumns = `
	id, entity_id, code, name, account_type, normal_balance, is_active, parent_account_id, created_at
`

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (entity_id, code, name, account_type, normal_balance, is_active, parent_account_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.EntityID,
		a.Code,
		a.Name,
		a.Type,
		a.NormalBalance,
		a.Active,
		a.ParentID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return &ledger.ConflictError{Kind: "account code", Key: a.Code}
			case pgForeignKeyViolation:
				return &ledger.NotFoundError{Kind: "entity", ID: a.EntityID}
			}
		}

		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ledger.NotFoundError{Kind: "account", ID: id}
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context, entityID uuid.UUID, activeOnly bool) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE entity_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}

	query += ` ORDER BY code ASC`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

// DeactivateAccount flips the active flag. The account row is locked and the
// pending-line check re-runs inside the same transaction, so a concurrent
// entry submission against the account cannot race the deactivation.
func (s *Store) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning deactivation tx: %w", err)
	}
	defer tx.Rollback()

	var active bool

	err = tx.QueryRowContext(ctx, `SELECT is_active FROM accounts WHERE id = $1 FOR UPDATE`, id).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ledger.NotFoundError{Kind: "account", ID: id}
		}

		return fmt.Errorf("locking account: %w", err)
	}

	var pending int

	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM journal_entry_lines l
		JOIN journal_entries e ON l.entry_id = e.id
		WHERE l.account_id = $1 AND e.status = 'pending'
	`, id).Scan(&pending)
	if err != nil {
		return fmt.Errorf("counting pending lines: %w", err)
	}

	if pending > 0 {
		return &ledger.ValidationError{
			Field:  "account",
			Reason: fmt.Sprintf("%d pending entry line(s) reference account %s; resolve them first", pending, id),
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET is_active = FALSE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deactivating account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing deactivation: %w", err)
	}

	return nil
}

// InsertAccounts applies a chart template batch. Existing (entity, code)
// pairs are skipped via ON CONFLICT, which makes the call idempotent.
func (s *Store) InsertAccounts(ctx context.Context, entityID uuid.UUID, accounts []*account.Account) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning template tx: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (entity_id, code, name, account_type, normal_balance, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		ON CONFLICT (entity_id, code) DO NOTHING
	`

	created := 0

	for _, a := range accounts {
		res, err := tx.ExecContext(ctx, query, entityID, a.Code, a.Name, a.Type, a.NormalBalance)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
				return 0, &ledger.NotFoundError{Kind: "entity", ID: entityID}
			}

			return 0, fmt.Errorf("inserting template account %s: %w", a.Code, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("inserting template account %s: %w", a.Code, err)
		}

		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing template: %w", err)
	}

	return created, nil
}
