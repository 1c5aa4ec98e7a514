package approval_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lwhitworth8/ngi-ledger/internal/approval"
	"github.com/lwhitworth8/ngi-ledger/internal/entry"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pendingEntry(total string) *entry.Entry {
	return &entry.Entry{
		ID:          uuid.New(),
		EntityID:    uuid.New(),
		Status:      entry.StatusPending,
		CreatedBy:   uuid.New(),
		TotalDebit:  dec(total),
		TotalCredit: dec(total),
	}
}

func TestService_Approve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("1000.00")
		approver := uuid.New()

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)
		repo.EXPECT().Transition(gomock.Any(), e.ID, entry.StatusApproved, approver, "looks right").Return(nil)

		err := svc.Approve(context.Background(), e.ID, approver, "looks right")
		assert.NoError(t, err)
	})

	t.Run("SelfApproval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("1000.00")

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		err := svc.Approve(context.Background(), e.ID, e.CreatedBy, "")

		var selfErr *ledger.SelfApprovalError
		assert.ErrorAs(t, err, &selfErr)
	})

	t.Run("SelfApprovalEvenBelowThreshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("5.00")

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		err := svc.Approve(context.Background(), e.ID, e.CreatedBy, "")

		var selfErr *ledger.SelfApprovalError
		assert.ErrorAs(t, err, &selfErr)
	})

	t.Run("AlreadyApproved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("1000.00")
		e.Status = entry.StatusApproved

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		err := svc.Approve(context.Background(), e.ID, uuid.New(), "")

		var stateErr *ledger.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
	})

	t.Run("LosesTransitionRace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("1000.00")
		approver := uuid.New()

		// Entry still reads pending, but another caller wins the row lock
		// first; the store reports the lost race.
		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)
		repo.EXPECT().
			Transition(gomock.Any(), e.ID, entry.StatusApproved, approver, "").
			Return(&ledger.InvalidStateError{EntryID: e.ID, Status: "rejected"})

		err := svc.Approve(context.Background(), e.ID, approver, "")

		var stateErr *ledger.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
	})
}

func TestService_Reject(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("250.00")
		approver := uuid.New()

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)
		repo.EXPECT().Transition(gomock.Any(), e.ID, entry.StatusRejected, approver, "wrong account").Return(nil)

		err := svc.Reject(context.Background(), e.ID, approver, "wrong account")
		assert.NoError(t, err)
	})

	t.Run("EmptyReason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		err := svc.Reject(context.Background(), uuid.New(), uuid.New(), "")

		var validationErr *ledger.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("SelfReject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("250.00")

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		err := svc.Reject(context.Background(), e.ID, e.CreatedBy, "changed my mind")

		var selfErr *ledger.SelfApprovalError
		assert.ErrorAs(t, err, &selfErr)
	})
}

func TestService_Submit(t *testing.T) {
	t.Run("AutoApprovesBelowThreshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("125.00")
		approved := *e
		approved.Status = entry.StatusApproved
		approved.ApprovedBy = &approval.SystemApproverID

		gomock.InOrder(
			repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil),
			repo.EXPECT().
				Transition(gomock.Any(), e.ID, entry.StatusApproved, approval.SystemApproverID, gomock.Any()).
				Return(nil),
			repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(&approved, nil),
		)

		got, err := svc.Submit(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.StatusApproved, got.Status)
		assert.Equal(t, approval.SystemApproverID, *got.ApprovedBy)
	})

	t.Run("StaysPendingAtThreshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("500.00")

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		got, err := svc.Submit(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.StatusPending, got.Status)
	})

	t.Run("DisabledThresholdNeverAutoApproves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.Policy{
			AutoApproveThreshold: decimal.Zero,
			CurrencyPrecision:    2,
		})

		e := pendingEntry("0.01")

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		got, err := svc.Submit(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, entry.StatusPending, got.Status)
	})

	t.Run("TerminalEntry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := approval.NewMockRepository(ctrl)
		svc := approval.NewService(repo, ledger.DefaultPolicy())

		e := pendingEntry("10.00")
		e.Status = entry.StatusCancelled

		repo.EXPECT().GetEntry(gomock.Any(), e.ID).Return(e, nil)

		_, err := svc.Submit(context.Background(), e.ID)

		var stateErr *ledger.InvalidStateError
		assert.ErrorAs(t, err, &stateErr)
	})
}
