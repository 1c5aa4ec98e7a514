package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lwhitworth8/ngi-ledger/internal/account"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

func TestType_NormalBalance(t *testing.T) {
	assert.Equal(t, account.NormalDebit, account.TypeAsset.NormalBalance())
	assert.Equal(t, account.NormalDebit, account.TypeExpense.NormalBalance())
	assert.Equal(t, account.NormalCredit, account.TypeLiability.NormalBalance())
	assert.Equal(t, account.NormalCredit, account.TypeEquity.NormalBalance())
	assert.Equal(t, account.NormalCredit, account.TypeRevenue.NormalBalance())
}

func TestService_Create(t *testing.T) {
	entityID := uuid.New()

	type testCase struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: account.CreateParams{
				EntityID:      entityID,
				Code:          "11000",
				Name:          "Cash",
				Type:          account.TypeAsset,
				NormalBalance: account.NormalDebit,
			},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *account.Account) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "AssetWithCreditNormalBalance",
			params: account.CreateParams{
				EntityID:      entityID,
				Code:          "11000",
				Name:          "Cash",
				Type:          account.TypeAsset,
				NormalBalance: account.NormalCredit,
			},
			wantErr: true,
		},
		{
			name: "RevenueWithDebitNormalBalance",
			params: account.CreateParams{
				EntityID:      entityID,
				Code:          "41000",
				Name:          "Service Revenue",
				Type:          account.TypeRevenue,
				NormalBalance: account.NormalDebit,
			},
			wantErr: true,
		},
		{
			name: "EmptyCode",
			params: account.CreateParams{
				EntityID:      entityID,
				Name:          "Cash",
				Type:          account.TypeAsset,
				NormalBalance: account.NormalDebit,
			},
			wantErr: true,
		},
		{
			name: "UnknownType",
			params: account.CreateParams{
				EntityID:      entityID,
				Code:          "61000",
				Name:          "Contra",
				Type:          account.Type("contra"),
				NormalBalance: account.NormalDebit,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				var validationErr *ledger.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.True(t, got.Active)
		})
	}
}

func TestService_ApplyTemplate(t *testing.T) {
	entityID := uuid.New()

	t.Run("UnknownTemplate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		svc := account.NewService(repo)

		_, err := svc.ApplyTemplate(context.Background(), entityID, "ifrs-enterprise")

		var validationErr *ledger.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("BuildsFullChart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		svc := account.NewService(repo)

		tpl, ok := account.Template(account.TemplateUSGAAPStartup)
		require.True(t, ok)

		repo.EXPECT().
			InsertAccounts(gomock.Any(), entityID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, accounts []*account.Account) (int, error) {
				require.Len(t, accounts, len(tpl))

				for _, a := range accounts {
					assert.Equal(t, entityID, a.EntityID)
					assert.Equal(t, a.Type.NormalBalance(), a.NormalBalance)
					assert.True(t, a.Active)
				}

				return len(accounts), nil
			})

		created, err := svc.ApplyTemplate(context.Background(), entityID, account.TemplateUSGAAPStartup)
		require.NoError(t, err)
		assert.Equal(t, len(tpl), created)
	})

	t.Run("SecondApplyCreatesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := account.NewMockRepository(ctrl)
		svc := account.NewService(repo)

		repo.EXPECT().InsertAccounts(gomock.Any(), entityID, gomock.Any()).Return(0, nil)

		created, err := svc.ApplyTemplate(context.Background(), entityID, account.TemplateUSGAAPStartup)
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}

func TestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	svc := account.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeactivateAccount(gomock.Any(), id).Return(&ledger.ValidationError{
		Field:  "account",
		Reason: "1 pending entry line(s) reference account",
	})

	err := svc.Deactivate(context.Background(), id)

	var validationErr *ledger.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
