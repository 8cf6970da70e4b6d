package finance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/razoraze123/flux/internal/finance"
	"github.com/razoraze123/flux/internal/finance/store"
	"github.com/razoraze123/flux/internal/memory"
	"github.com/razoraze123/flux/internal/validation"
)

func TestService_Upsert(t *testing.T) {
	type args struct {
		tx finance.Transaction
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *finance.MockRepository)
		wantFields []string
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "AssignsID",
			args: args{
				tx: finance.Transaction{
					Type:        finance.TypeExpense,
					Amount:      2500,
					Description: "Recharge internet",
					Category:    "Internet",
					Date:        time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					UpsertTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx finance.Transaction) error {
						assert.NotEmpty(t, tx.ID)
						return nil
					})
			},
		},
		{
			name: "KeepsExistingID",
			args: args{
				tx: finance.Transaction{
					ID:          "tx-1",
					Type:        finance.TypeIncome,
					Amount:      15000,
					Description: "Vente tissu",
					Category:    "Ventes",
				},
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					UpsertTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx finance.Transaction) error {
						assert.Equal(t, "tx-1", tx.ID)
						return nil
					})
			},
		},
		{
			name: "MissingDescriptionAndCategory",
			args: args{
				tx: finance.Transaction{Type: finance.TypeExpense, Amount: 100},
			},
			wantFields: []string{"description", "category"},
			wantErr:    true,
		},
		{
			name: "ZeroAmount",
			args: args{
				tx: finance.Transaction{
					Type:        finance.TypeExpense,
					Description: "Taxi",
					Category:    "Transport",
				},
			},
			wantFields: []string{"amount"},
			wantErr:    true,
		},
		{
			name: "RepoError",
			args: args{
				tx: finance.Transaction{
					Type:        finance.TypeExpense,
					Amount:      500,
					Description: "Taxi",
					Category:    "Transport",
				},
			},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().
					UpsertTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := finance.NewService(repo)
			got, err := svc.Upsert(context.Background(), tt.args.tx)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantFields != nil {
					var vErr *validation.Error
					require.ErrorAs(t, err, &vErr)
					assert.Equal(t, tt.wantFields, vErr.Fields)
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_List_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := finance.NewMockRepository(ctrl)
	svc := finance.NewService(repo)

	income := finance.TypeIncome
	filter := finance.ListFilter{Type: &income}

	repo.EXPECT().
		ListTransactions(gomock.Any(), filter).
		Return([]finance.Transaction{{ID: "101", Type: finance.TypeIncome}}, nil)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, finance.TypeIncome, got[0].Type)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := finance.NewMockRepository(ctrl)
	svc := finance.NewService(repo)

	txs := []finance.Transaction{
		{ID: "1", Type: finance.TypeIncome, Amount: 50000},
		{ID: "2", Type: finance.TypeExpense, Amount: 12000},
		{ID: "3", Type: finance.TypeIncome, Amount: 8000},
		{ID: "4", Type: finance.TypeExpense, Amount: 3000},
		{ID: "5", Type: finance.TypeExpense, Amount: 1500},
	}

	repo.EXPECT().
		ListTransactions(gomock.Any(), finance.ListFilter{}).
		Return(txs, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(58000), stats.MonthlyIncome)
	assert.Equal(t, int64(16500), stats.MonthlyExpense)
	assert.Equal(t, stats.MonthlyIncome-stats.MonthlyExpense, stats.TotalBalance)
	assert.Len(t, stats.Recent, 4)
	assert.Equal(t, "1", stats.Recent[0].ID)

	// The distribution and trend are fixed datasets, independent of the
	// transactions above.
	assert.Len(t, stats.Distribution, 4)
	assert.Equal(t, "Repas", stats.Distribution[0].Category)
	assert.Equal(t, 40, stats.Distribution[0].Percentage)
	assert.Equal(t, []int{40, 55, 45, 70, 65, 85, 80}, stats.Trend)
}

func TestService_Stats_SeedDataset(t *testing.T) {
	db := memory.New(memory.WithSeed(memory.DefaultSeed()))
	svc := finance.NewService(store.New(db))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(40000), stats.MonthlyIncome)
	assert.Equal(t, int64(21000), stats.MonthlyExpense)
	assert.Equal(t, int64(19000), stats.TotalBalance)

	require.Len(t, stats.Recent, 4)
	// Most recent first: the 2023-10-27 loan repayment tops the list.
	assert.Equal(t, "110", stats.Recent[0].ID)
}

func TestService_Stats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := finance.NewMockRepository(ctrl)
	svc := finance.NewService(repo)

	repo.EXPECT().
		ListTransactions(gomock.Any(), finance.ListFilter{}).
		Return(nil, errors.New("list error"))

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	assert.Contains(t, finance.Categories(finance.TypeExpense), "Transport")
	assert.Contains(t, finance.Categories(finance.TypeIncome), "Prestation")
	assert.NotContains(t, finance.Categories(finance.TypeIncome), "Transport")
}

func TestFilterCategory(t *testing.T) {
	txs := []finance.Transaction{
		{ID: "1", Category: "Transport"},
		{ID: "2", Category: "Repas"},
		{ID: "3", Category: "Transport"},
	}

	got := finance.FilterCategory(txs, "Transport")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Len(t, finance.FilterCategory(txs, ""), 3)
}
