package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lwhitworth8/ngi-ledger/internal/entity"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

const pgUniqueViolation = "23505"

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

// scanEntity reads an entity row.
// Expected column order: id, legal_name, entity_type, ein, formation_date, is_active, parent_entity_id, created_at, updated_at
func scanEntity(s scanner) (*entity.Entity, error) {
	var e entity.Entity

	var typeStr string

	var ein sql.NullString

	if err := s.Scan(
		&e.ID, &e.LegalName, &typeStr, &ein, &e.FormationDate, &e.Active, &e.ParentID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Type = entity.Type(typeStr)
	e.EIN = ein.String

	return &e, nil
}

const selectEntityColumns = `
	id, legal_name, entity_type, ein, formation_date, is_active, parent_entity_id, created_at, updated_at
`

func (s *Store) CreateEntity(ctx context.Context, e *entity.Entity) error {
	query := `
		INSERT INTO entities (legal_name, entity_type, ein, formation_date, is_active, parent_entity_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var ein *string
	if e.EIN != "" {
		ein = &e.EIN
	}

	err := s.db.QueryRowContext(ctx, query,
		e.LegalName,
		e.Type,
		ein,
		e.FormationDate,
		e.Active,
		e.ParentID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return &ledger.ConflictError{Kind: "entity EIN", Key: e.EIN}
		}

		return fmt.Errorf("creating entity: %w", err)
	}

	return nil
}

func (s *Store) GetEntity(ctx context.Context, id uuid.UUID) (*entity.Entity, error) {
	query := `SELECT ` + selectEntityColumns + ` FROM entities WHERE id = $1`

	e, err := scanEntity(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ledger.NotFoundError{Kind: "entity", ID: id}
		}

		return nil, fmt.Errorf("getting entity: %w", err)
	}

	return e, nil
}

func (s *Store) ListEntities(ctx context.Context, activeOnly bool) ([]*entity.Entity, error) {
	query := `SELECT ` + selectEntityColumns + ` FROM entities`
	if activeOnly {
		query += ` WHERE is_active`
	}

	query += ` ORDER BY legal_name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var entities []*entity.Entity

	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}

		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity rows: %w", err)
	}

	return entities, nil
}

func (s *Store) UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	query := `
		UPDATE entities
		SET parent_entity_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, parentID, id)
	if err != nil {
		return fmt.Errorf("updating entity parent: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entity parent: %w", err)
	}

	if n == 0 {
		return &ledger.NotFoundError{Kind: "entity", ID: id}
	}

	return nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE entities
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("updating entity active flag: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entity active flag: %w", err)
	}

	if n == 0 {
		return &ledger.NotFoundError{Kind: "entity", ID: id}
	}

	return nil
}

func (s *Store) CreateRelationship(ctx context.Context, r *entity.Relationship) error {
	query := `
		INSERT INTO entity_relationships (parent_entity_id, subsidiary_entity_id, ownership_pct, effective_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.ParentID,
		r.SubsidiaryID,
		r.OwnershipPct,
		r.EffectiveDate,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating relationship: %w", err)
	}

	return nil
}

func (s *Store) ListRelationships(ctx context.Context, entityID uuid.UUID) ([]*entity.Relationship, error) {
	query := `
		SELECT id, parent_entity_id, subsidiary_entity_id, ownership_pct, effective_date, created_at
		FROM entity_relationships
		WHERE parent_entity_id = $1 OR subsidiary_entity_id = $1
		ORDER BY effective_date ASC, created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("listing relationships: %w", err)
	}
	defer rows.Close()

	var rels []*entity.Relationship

	for rows.Next() {
		var r entity.Relationship
		if err := rows.Scan(&r.ID, &r.ParentID, &r.SubsidiaryID, &r.OwnershipPct, &r.EffectiveDate, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning relationship: %w", err)
		}

		rels = append(rels, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relationship rows: %w", err)
	}

	return rels, nil
}
