// Package approval implements the dual-authorization state machine layered
// on journal entries: pending -> approved | rejected | cancelled, all
// terminal, creator never equal to approver.
package approval

import (
	"context"

	"github.com/google/uuid"

	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

// SystemApproverID is the reserved approver recorded on entries that
// auto-approve below the de-minimis threshold. It is never a valid user id.
var SystemApproverID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=approval
type Repository interface {
	GetEntry(ctx context.Context, id uuid.UUID) (*entry.Entry, error)

	// Transition moves the entry out of pending under a row lock, re-checking
	// status and (for approval) the balance invariant inside the same
	// transaction. Exactly one racing caller wins; the rest get
	// InvalidStateError.
	Transition(ctx context.Context, id uuid.UUID, to entry.Status, approverID uuid.UUID, notes string) error
}

type Service struct {
	repo   Repository
	policy ledger.Policy
}

func NewService(repo Repository, policy ledger.Policy) *Service {
	return &Service{repo: repo, policy: policy}
}

// Submit runs the post-creation policy step. Entries whose absolute total is
// below the configured threshold auto-approve under the reserved system
// approver; everything else stays pending for human approval. The returned
// entry reflects the outcome.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (*entry.Entry, error) {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Status != entry.StatusPending {
		return nil, &ledger.InvalidStateError{EntryID: id, Status: string(e.Status)}
	}

	threshold := s.policy.AutoApproveThreshold
	if !threshold.IsPositive() || e.Total().Abs().GreaterThanOrEqual(threshold) {
		return e, nil
	}

	err = s.repo.Transition(ctx, id, entry.StatusApproved, SystemApproverID, "auto-approved: total below de-minimis threshold")
	if err != nil {
		return nil, err
	}

	return s.repo.GetEntry(ctx, id)
}

// Approve marks a pending entry approved by approverID. The creator can
// never approve their own entry, regardless of amount.
func (s *Service) Approve(ctx context.Context, id, approverID uuid.UUID, notes string) error {
	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	if e.Status != entry.StatusPending {
		return &ledger.InvalidStateError{EntryID: id, Status: string(e.Status)}
	}

	if approverID == e.CreatedBy {
		return &ledger.SelfApprovalError{EntryID: id, UserID: approverID}
	}

	return s.repo.Transition(ctx, id, entry.StatusApproved, approverID, notes)
}

// Reject marks a pending entry rejected with a reason. Rejected entries are
// permanently excluded from reporting and cannot be resubmitted; the
// submitter must create a new entry.
func (s *Service) Reject(ctx context.Context, id, approverID uuid.UUID, reason string) error {
	if reason == "" {
		return &ledger.ValidationError{Field: "reason", Reason: "must not be empty"}
	}

	e, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return err
	}

	if e.Status != entry.StatusPending {
		return &ledger.InvalidStateError{EntryID: id, Status: string(e.Status)}
	}

	if approverID == e.CreatedBy {
		return &ledger.SelfApprovalError{EntryID: id, UserID: approverID}
	}

	return s.repo.Transition(ctx, id, entry.StatusRejected, approverID, reason)
}
