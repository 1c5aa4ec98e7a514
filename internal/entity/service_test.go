package entity_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lwhitworth8/ngi-ledger/internal/entity"
	"github.com/lwhitworth8/ngi-ledger/internal/ledger"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    entity.CreateParams
		setupMock func(m *entity.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: entity.CreateParams{
				LegalName: "NGI Capital LLC",
				Type:      entity.TypeLLC,
				EIN:       "88-1234567",
			},
			setupMock: func(m *entity.MockRepository) {
				m.EXPECT().
					CreateEntity(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *entity.Entity) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name:    "EmptyName",
			params:  entity.CreateParams{Type: entity.TypeCorp},
			wantErr: true,
		},
		{
			name:    "UnknownType",
			params:  entity.CreateParams{LegalName: "X", Type: entity.Type("trust")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := entity.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := entity.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				var validationErr *ledger.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Active)
			assert.NotEmpty(t, got.ID)
		})
	}
}

// chainRepo serves a fixed parent chain through the mock for traversal tests.
func chainRepo(m *entity.MockRepository, entities ...*entity.Entity) {
	for _, e := range entities {
		m.EXPECT().GetEntity(gomock.Any(), e.ID).Return(e, nil).AnyTimes()
	}
}

func TestService_Ancestors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := entity.NewMockRepository(ctrl)
	svc := entity.NewService(repo)

	grandparent := &entity.Entity{ID: uuid.New(), LegalName: "Grandparent Inc"}
	parent := &entity.Entity{ID: uuid.New(), LegalName: "Parent LLC", ParentID: &grandparent.ID}
	child := &entity.Entity{ID: uuid.New(), LegalName: "Child LLC", ParentID: &parent.ID}

	chainRepo(repo, grandparent, parent, child)

	chain, err := svc.Ancestors(context.Background(), child.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)

	// Closest first.
	assert.Equal(t, parent.ID, chain[0].ID)
	assert.Equal(t, grandparent.ID, chain[1].ID)
}

func TestService_Ancestors_CyclicLegacyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := entity.NewMockRepository(ctrl)
	svc := entity.NewService(repo)

	a := &entity.Entity{ID: uuid.New()}
	b := &entity.Entity{ID: uuid.New()}
	a.ParentID = &b.ID
	b.ParentID = &a.ID

	chainRepo(repo, a, b)

	_, err := svc.Ancestors(context.Background(), a.ID)

	var cycleErr *ledger.CycleError
	assert.ErrorAs(t, err, &cycleErr)
}

func TestService_SetParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := entity.NewMockRepository(ctrl)
	svc := entity.NewService(repo)

	parent := &entity.Entity{ID: uuid.New()}
	child := &entity.Entity{ID: uuid.New(), ParentID: &parent.ID}

	chainRepo(repo, parent, child)

	t.Run("SelfParent", func(t *testing.T) {
		err := svc.SetParent(context.Background(), parent.ID, &parent.ID)

		var cycleErr *ledger.CycleError
		assert.ErrorAs(t, err, &cycleErr)
	})

	t.Run("DescendantAsParent", func(t *testing.T) {
		err := svc.SetParent(context.Background(), parent.ID, &child.ID)

		var cycleErr *ledger.CycleError
		assert.ErrorAs(t, err, &cycleErr)
	})

	t.Run("Success", func(t *testing.T) {
		other := &entity.Entity{ID: uuid.New()}
		chainRepo(repo, other)

		repo.EXPECT().UpdateParent(gomock.Any(), other.ID, &parent.ID).Return(nil)

		err := svc.SetParent(context.Background(), other.ID, &parent.ID)
		assert.NoError(t, err)
	})

	t.Run("ClearParent", func(t *testing.T) {
		repo.EXPECT().UpdateParent(gomock.Any(), child.ID, gomock.Nil()).Return(nil)

		err := svc.SetParent(context.Background(), child.ID, nil)
		assert.NoError(t, err)
	})
}

func TestService_AddRelationship(t *testing.T) {
	parentID := uuid.New()
	subID := uuid.New()

	type testCase struct {
		name      string
		params    entity.RelationshipParams
		setupMock func(m *entity.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: entity.RelationshipParams{
				ParentID:      parentID,
				SubsidiaryID:  subID,
				OwnershipPct:  decimal.RequireFromString("51.00"),
				EffectiveDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *entity.MockRepository) {
				m.EXPECT().GetEntity(gomock.Any(), parentID).Return(&entity.Entity{ID: parentID}, nil)
				m.EXPECT().GetEntity(gomock.Any(), subID).Return(&entity.Entity{ID: subID}, nil)
				m.EXPECT().
					CreateRelationship(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *entity.Relationship) error {
						r.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ZeroOwnership",
			params: entity.RelationshipParams{
				ParentID:     parentID,
				SubsidiaryID: subID,
				OwnershipPct: decimal.Zero,
			},
			wantErr: true,
		},
		{
			name: "OwnershipAboveHundred",
			params: entity.RelationshipParams{
				ParentID:     parentID,
				SubsidiaryID: subID,
				OwnershipPct: decimal.RequireFromString("100.01"),
			},
			wantErr: true,
		},
		{
			name: "SelfOwnership",
			params: entity.RelationshipParams{
				ParentID:     parentID,
				SubsidiaryID: parentID,
				OwnershipPct: decimal.RequireFromString("100"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := entity.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := entity.NewService(repo)
			got, err := svc.AddRelationship(context.Background(), tt.params)

			if tt.wantErr {
				var validationErr *ledger.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}
