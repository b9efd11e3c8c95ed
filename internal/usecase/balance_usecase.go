package usecase

import (
	"context"
	"time"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
)

// BalanceUseCase rebuilds account balances from the authoritative entry
// history. The rebuild is full and idempotent: it never reads the stored
// balance, so it repairs any drift an incremental update could have left.
type BalanceUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	metrics     *metrics.Metrics
}

// NewBalanceUseCase creates a new BalanceUseCase. metrics may be nil.
func NewBalanceUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	metrics *metrics.Metrics,
) *BalanceUseCase {
	return &BalanceUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		metrics:     metrics,
	}
}

// Recalculate recomputes every account balance of the business in its own
// unit of work. A partial recalculation is never committed.
func (uc *BalanceUseCase) Recalculate(ctx context.Context, businessID string) error {
	start := time.Now()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return storeError(err)
	}
	defer tx.Rollback(ctx)

	if err := uc.RecalculateTx(ctx, tx, businessID); err != nil {
		return storeError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError(err)
	}

	if uc.metrics != nil {
		uc.metrics.Recalculations.Inc()
		uc.metrics.RecalculationDuration.Observe(time.Since(start).Seconds())
	}

	return nil
}

// RecalculateTx recomputes balances inside an existing unit of work. Callers
// that post transactions use this so a failed recompute rolls back the post.
//
// Every account of the business gets a fresh value: the per-account entry
// sums come from one grouped query, an account absent from the sums simply
// has no entries and lands on zero.
func (uc *BalanceUseCase) RecalculateTx(ctx context.Context, tx Transaction, businessID string) error {
	accounts, err := uc.accountRepo.ListWithPolarity(ctx, tx, businessID)
	if err != nil {
		return err
	}

	sums, err := uc.entryRepo.SumsByBusiness(ctx, tx, businessID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	for _, account := range accounts {
		s := sums[account.ID]
		balance := domain.BalanceFromSums(account.Polarity, s.Debit, s.Credit)

		if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, balance, now); err != nil {
			return err
		}
	}

	return nil
}
