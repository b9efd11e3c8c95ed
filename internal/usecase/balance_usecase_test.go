package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
	"github.com/openbooks/openbooks/internal/usecase/mocks"
)

func seedBalanceAccounts(accountRepo *mocks.MockAccountRepository) {
	accountRepo.Put(&domain.AccountWithPolarity{
		Account:  domain.Account{ID: "acc-cash", BusinessID: "biz-1", TypeID: domain.TypeCurrentAssets, Name: "Cash"},
		Polarity: domain.PolarityDebit,
	})
	accountRepo.Put(&domain.AccountWithPolarity{
		Account:  domain.Account{ID: "acc-sales", BusinessID: "biz-1", TypeID: domain.TypeIncome, Name: "Sales"},
		Polarity: domain.PolarityCredit,
	})
	accountRepo.Put(&domain.AccountWithPolarity{
		Account:  domain.Account{ID: "acc-idle", BusinessID: "biz-1", TypeID: domain.TypeExpense, Name: "Office Supplies"},
		Polarity: domain.PolarityDebit,
	})
}

func mustBalance(t *testing.T, repo *mocks.MockAccountRepository, id, want string) {
	t.Helper()
	account, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString(want)),
		"account %s: got balance %s, want %s", id, account.Balance, want)
}

func TestRecalculate_CashSale(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	accountRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	seedBalanceAccounts(accountRepo)

	uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
	ctx := context.Background()

	// Sale of 100: debit Cash, credit Sales. Both accounts land on 100
	// because each entry sits on its account's accumulating side.
	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 1, AccountID: "acc-cash", Amount: decimal.RequireFromString("100"), Side: domain.EntryDebit,
	}))
	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 1, AccountID: "acc-sales", Amount: decimal.RequireFromString("100"), Side: domain.EntryCredit,
	}))

	require.NoError(t, uc.Recalculate(ctx, "biz-1"))
	mustBalance(t, accountRepo, "acc-cash", "100")
	mustBalance(t, accountRepo, "acc-sales", "100")
	mustBalance(t, accountRepo, "acc-idle", "0")
	assert.True(t, txManager.Last().Committed)

	// Refund of 30: debit Sales, credit Cash. Both drop to 70.
	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 2, AccountID: "acc-sales", Amount: decimal.RequireFromString("30"), Side: domain.EntryDebit,
	}))
	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 2, AccountID: "acc-cash", Amount: decimal.RequireFromString("30"), Side: domain.EntryCredit,
	}))

	require.NoError(t, uc.Recalculate(ctx, "biz-1"))
	mustBalance(t, accountRepo, "acc-cash", "70")
	mustBalance(t, accountRepo, "acc-sales", "70")
}

func TestRecalculate_Idempotent(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	accountRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	seedBalanceAccounts(accountRepo)

	uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
	ctx := context.Background()

	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 1, AccountID: "acc-cash", Amount: decimal.RequireFromString("55.50"), Side: domain.EntryDebit,
	}))
	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 1, AccountID: "acc-sales", Amount: decimal.RequireFromString("55.50"), Side: domain.EntryCredit,
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.Recalculate(ctx, "biz-1"))
		mustBalance(t, accountRepo, "acc-cash", "55.50")
		mustBalance(t, accountRepo, "acc-sales", "55.50")
	}
}

func TestRecalculate_IgnoresStoredBalance(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	accountRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()

	// A drifted stored balance is repaired, not incremented.
	accountRepo.Put(&domain.AccountWithPolarity{
		Account: domain.Account{
			ID: "acc-cash", BusinessID: "biz-1", TypeID: domain.TypeCurrentAssets,
			Name: "Cash", Balance: decimal.RequireFromString("999999"),
		},
		Polarity: domain.PolarityDebit,
	})

	uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
	ctx := context.Background()

	require.NoError(t, entryRepo.Create(ctx, nil, &domain.Entry{
		TransactionID: 1, AccountID: "acc-cash", Amount: decimal.RequireFromString("10"), Side: domain.EntryDebit,
	}))

	require.NoError(t, uc.Recalculate(ctx, "biz-1"))
	mustBalance(t, accountRepo, "acc-cash", "10")
}

func TestRecalculate_NetsBySide(t *testing.T) {
	tests := []struct {
		name     string
		polarity domain.Polarity
		debit    string
		credit   string
		want     string
	}{
		{"debit account nets debit minus credit", domain.PolarityDebit, "150", "40", "110"},
		{"credit account nets credit minus debit", domain.PolarityCredit, "40", "150", "110"},
		{"debit account can go negative", domain.PolarityDebit, "10", "25", "-15"},
		{"credit account can go negative", domain.PolarityCredit, "25", "10", "-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mocks.NewMockTransactionManager()
			accountRepo := mocks.NewMockAccountRepository()
			entryRepo := mocks.NewMockEntryRepository()

			accountRepo.Put(&domain.AccountWithPolarity{
				Account:  domain.Account{ID: "acc-1", BusinessID: "biz-1", Name: "Test"},
				Polarity: tt.polarity,
			})
			entryRepo.SumsByBusinessFunc = func(ctx context.Context, tx usecase.Transaction, businessID string) (map[string]domain.EntrySums, error) {
				return map[string]domain.EntrySums{
					"acc-1": {
						Debit:  decimal.RequireFromString(tt.debit),
						Credit: decimal.RequireFromString(tt.credit),
					},
				}, nil
			}

			uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
			require.NoError(t, uc.Recalculate(context.Background(), "biz-1"))
			mustBalance(t, accountRepo, "acc-1", tt.want)
		})
	}
}

func TestRecalculate_UpdateFailureRollsBack(t *testing.T) {
	txManager := mocks.NewMockTransactionManager()
	accountRepo := mocks.NewMockAccountRepository()
	entryRepo := mocks.NewMockEntryRepository()
	seedBalanceAccounts(accountRepo)

	accountRepo.UpdateBalanceFunc = func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
		return errors.New("write failed")
	}

	uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
	err := uc.Recalculate(context.Background(), "biz-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.True(t, txManager.Last().RolledBack)
	assert.False(t, txManager.Last().Committed)
}

func TestRecalculateTx_EveryAccountWritten(t *testing.T) {
	ctrl := gomock.NewController(t)

	txManager := mocks.NewMockGenTransactionManager(ctrl)
	accountRepo := mocks.NewMockGenAccountRepository(ctrl)
	entryRepo := mocks.NewMockGenEntryRepository(ctrl)
	tx := mocks.NewMockGenTransaction(ctrl)

	accounts := []*domain.AccountWithPolarity{
		{Account: domain.Account{ID: "acc-cash", BusinessID: "biz-1"}, Polarity: domain.PolarityDebit},
		{Account: domain.Account{ID: "acc-sales", BusinessID: "biz-1"}, Polarity: domain.PolarityCredit},
		{Account: domain.Account{ID: "acc-idle", BusinessID: "biz-1"}, Polarity: domain.PolarityDebit},
	}
	sums := map[string]domain.EntrySums{
		"acc-cash":  {Debit: decimal.RequireFromString("100"), Credit: decimal.Zero},
		"acc-sales": {Debit: decimal.Zero, Credit: decimal.RequireFromString("100")},
	}

	accountRepo.EXPECT().ListWithPolarity(gomock.Any(), tx, "biz-1").Return(accounts, nil)
	entryRepo.EXPECT().SumsByBusiness(gomock.Any(), tx, "biz-1").Return(sums, nil)

	hundred := decimal.RequireFromString("100")
	accountRepo.EXPECT().
		UpdateBalance(gomock.Any(), tx, "acc-cash", gomock.Cond(func(d decimal.Decimal) bool { return d.Equal(hundred) }), gomock.Any()).
		Return(nil)
	accountRepo.EXPECT().
		UpdateBalance(gomock.Any(), tx, "acc-sales", gomock.Cond(func(d decimal.Decimal) bool { return d.Equal(hundred) }), gomock.Any()).
		Return(nil)
	// An account with no entries is still written, to zero.
	accountRepo.EXPECT().
		UpdateBalance(gomock.Any(), tx, "acc-idle", gomock.Cond(func(d decimal.Decimal) bool { return d.IsZero() }), gomock.Any()).
		Return(nil)

	uc := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, nil)
	require.NoError(t, uc.RecalculateTx(context.Background(), tx, "biz-1"))
}
