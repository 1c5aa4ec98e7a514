package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context, entityID uuid.UUID, activeOnly bool) ([]*Account, error)

	// DeactivateAccount flips the active flag after re-checking, inside the
	// same transaction, that no pending entry line references the account.
	DeactivateAccount(ctx context.Context, id uuid.UUID) error

	// InsertAccounts inserts the given accounts for an entity, skipping
	// codes that already exist, and reports how many were created.
	InsertAccounts(ctx context.Context, entityID uuid.UUID, accounts []*Account) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	EntityID      uuid.UUID
	Code          string
	Name          string
	Type          Type
	NormalBalance NormalBalance
	ParentID      *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if params.Code == "" {
		return nil, &ledger.ValidationError{Field: "code", Reason: "must not be empty"}
	}

	if params.Name == "" {
		return nil, &ledger.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if !params.Type.Valid() {
		return nil, &ledger.ValidationError{Field: "account_type", Reason: "unknown type " + string(params.Type)}
	}

	if params.NormalBalance != params.Type.NormalBalance() {
		return nil, &ledger.ValidationError{
			Field:  "normal_balance",
			Reason: string(params.Type) + " accounts must carry a " + string(params.Type.NormalBalance()) + " normal balance",
		}
	}

	a := &Account{
		EntityID:      params.EntityID,
		Code:          params.Code,
		Name:          params.Name,
		Type:          params.Type,
		NormalBalance: params.NormalBalance,
		Active:        true,
		ParentID:      params.ParentID,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

// Deactivate soft-disables an account. Accounts with lines in pending
// entries cannot be deactivated until those entries are resolved; approved
// historical usage does not block.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateAccount(ctx, id)
}

// ApplyTemplate inserts a named chart template for the entity. The call is
// idempotent: codes already present are skipped, and a second identical call
// returns 0.
func (s *Service) ApplyTemplate(ctx context.Context, entityID uuid.UUID, templateID string) (int, error) {
	tpl, ok := Template(templateID)
	if !ok {
		return 0, &ledger.ValidationError{Field: "template", Reason: "unknown template " + templateID}
	}

	accounts := make([]*Account, len(tpl))
	for i, t := range tpl {
		accounts[i] = &Account{
			EntityID:      entityID,
			Code:          t.Code,
			Name:          t.Name,
			Type:          t.Type,
			NormalBalance: t.Type.NormalBalance(),
			Active:        true,
		}
	}

	return s.repo.InsertAccounts(ctx, entityID, accounts)
}

// List returns the entity's chart of accounts ordered by code.
func (s *Service) List(ctx context.Context, entityID uuid.UUID, activeOnly bool) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, entityID, activeOnly)
}
