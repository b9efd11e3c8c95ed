package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// JournalUseCase serves the general-journal reporting view: transactions for
// a business over a date range, grouped with their entries and subtotals.
type JournalUseCase struct {
	txnRepo TransactionRepository
	logger  zerolog.Logger
}

// NewJournalUseCase creates a new JournalUseCase.
func NewJournalUseCase(txnRepo TransactionRepository, logger zerolog.Logger) *JournalUseCase {
	return &JournalUseCase{
		txnRepo: txnRepo,
		logger:  logger,
	}
}

// ListJournalInput represents input for a journal listing.
type ListJournalInput struct {
	BusinessID string
	From       time.Time
	To         time.Time
}

// JournalReport is a journal listing with grand totals over the range.
type JournalReport struct {
	Transactions []*domain.JournalTransaction
	DebitTotal   decimal.Decimal
	CreditTotal  decimal.Decimal
}

// ListJournal lists transactions between From and To inclusive. Each
// transaction's subtotals are re-derived from its entries rather than read
// from the cached header totals; a mismatch between the two is logged as
// data corruption but the listing is still returned.
func (uc *JournalUseCase) ListJournal(ctx context.Context, input ListJournalInput) (*JournalReport, error) {
	if input.BusinessID == "" {
		return nil, fmt.Errorf("%w: business id is required", domain.ErrValidation)
	}
	if input.From.IsZero() || input.To.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	if input.To.Before(input.From) {
		return nil, fmt.Errorf("%w: date range is inverted", domain.ErrValidation)
	}

	transactions, err := uc.txnRepo.ListJournal(ctx, input.BusinessID, input.From, input.To)
	if err != nil {
		return nil, storeError(err)
	}

	report := &JournalReport{
		Transactions: transactions,
		DebitTotal:   decimal.Zero,
		CreditTotal:  decimal.Zero,
	}

	for _, txn := range transactions {
		debit, credit := txn.Subtotals()
		txn.DebitSubtotal = debit
		txn.CreditSubtotal = credit

		if !debit.Equal(txn.Debit) || !credit.Equal(txn.Credit) {
			uc.logger.Error().
				Int64("transaction_id", txn.ID).
				Str("business_id", txn.BusinessID).
				Str("cached_debit", txn.Debit.String()).
				Str("derived_debit", debit.String()).
				Str("cached_credit", txn.Credit.String()).
				Str("derived_credit", credit.String()).
				Msg("journal subtotal diverges from cached header totals")
		}

		report.DebitTotal = report.DebitTotal.Add(debit)
		report.CreditTotal = report.CreditTotal.Add(credit)
	}

	return report, nil
}
