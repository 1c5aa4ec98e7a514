package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	"github.com/lwhitworth8/ngi-ledger/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_TrialBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	entityID := uuid.New()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		TrialBalanceRows(gomock.Any(), entityID, asOf).
		Return([]*report.TrialBalanceRow{
			{
				AccountID:     uuid.New(),
				Code:          "11000",
				Name:          "Cash",
				Type:          account.TypeAsset,
				NormalBalance: account.NormalDebit,
				TotalDebits:   dec("1000.00"),
				TotalCredits:  decimal.Zero,
			},
			{
				AccountID:     uuid.New(),
				Code:          "31000",
				Name:          "Members' Capital",
				Type:          account.TypeEquity,
				NormalBalance: account.NormalCredit,
				TotalDebits:   decimal.Zero,
				TotalCredits:  dec("1000.00"),
			},
		}, nil)

	rows, err := svc.TrialBalance(context.Background(), entityID, asOf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.True(t, rows[0].Balance.Equal(dec("1000.00")))
	assert.True(t, rows[1].Balance.Equal(dec("1000.00")))

	// Signing everything back to the debit side must cancel out.
	signedSum := decimal.Zero

	for _, r := range rows {
		if r.NormalBalance == account.NormalDebit {
			signedSum = signedSum.Add(r.Balance)
		} else {
			signedSum = signedSum.Sub(r.Balance)
		}
	}

	assert.True(t, signedSum.IsZero())
}

func TestService_AccountBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	svc := report.NewService(repo)

	accountID := uuid.New()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	last := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetAccount(gomock.Any(), accountID).Return(&account.Account{
		ID:            accountID,
		Type:          account.TypeLiability,
		NormalBalance: account.NormalCredit,
	}, nil)
	repo.EXPECT().
		AccountActivity(gomock.Any(), accountID, asOf).
		Return(dec("400.00"), dec("1000.00"), &last, nil)

	got, err := svc.AccountBalance(context.Background(), accountID, asOf)
	require.NoError(t, err)

	// Credit-normal account: credits minus debits.
	assert.True(t, got.Balance.Equal(dec("600.00")))
	assert.Equal(t, &last, got.LastActivity)
}

func TestService_GeneralLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	cursor := report.NewMockCursor(ctrl)
	svc := report.NewService(repo)

	accountID := uuid.New()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetAccount(gomock.Any(), accountID).Return(&account.Account{
		ID:            accountID,
		Type:          account.TypeAsset,
		NormalBalance: account.NormalDebit,
	}, nil)

	// Opening balance: activity strictly before the range.
	repo.EXPECT().
		AccountActivity(gomock.Any(), accountID, from.AddDate(0, 0, -1)).
		Return(dec("100.00"), decimal.Zero, nil, nil)

	repo.EXPECT().GeneralLedgerRows(gomock.Any(), accountID, from, to).Return(cursor, nil)

	first := report.GeneralLedgerLine{
		EntryID:     uuid.New(),
		EntryNumber: 3,
		Date:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Description: "Client payment",
		Debit:       dec("50.00"),
		Credit:      decimal.Zero,
	}
	second := report.GeneralLedgerLine{
		EntryID:     uuid.New(),
		EntryNumber: 4,
		Date:        time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Description: "Bank fees",
		Debit:       decimal.Zero,
		Credit:      dec("30.00"),
	}

	gomock.InOrder(
		cursor.EXPECT().Next().Return(true),
		cursor.EXPECT().Line().Return(first),
		cursor.EXPECT().Next().Return(true),
		cursor.EXPECT().Line().Return(second),
		cursor.EXPECT().Next().Return(false),
	)
	cursor.EXPECT().Err().Return(nil)
	cursor.EXPECT().Close().Return(nil)

	run, err := svc.GeneralLedger(context.Background(), accountID, from, to)
	require.NoError(t, err)

	var got []report.GeneralLedgerLine

	for run.Next() {
		got = append(got, run.Line())
	}

	require.NoError(t, run.Err())
	require.NoError(t, run.Close())
	require.Len(t, got, 2)

	// Running balance is seeded with the opening balance and signed by the
	// account's normal side.
	assert.True(t, got[0].RunningBalance.Equal(dec("150.00")))
	assert.True(t, got[1].RunningBalance.Equal(dec("120.00")))
}
