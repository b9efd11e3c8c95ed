package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
)

// PostingUseCase validates and commits double-entry transactions. A post
// either lands in full (header, entries, recomputed balances) or not at all.
type PostingUseCase struct {
	txManager    TransactionManager
	businessRepo BusinessRepository
	accountRepo  AccountRepository
	txnRepo      TransactionRepository
	entryRepo    EntryRepository
	balances     *BalanceUseCase
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewPostingUseCase creates a new PostingUseCase. metrics may be nil.
func NewPostingUseCase(
	txManager TransactionManager,
	businessRepo BusinessRepository,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	entryRepo EntryRepository,
	balances *BalanceUseCase,
	retrier Retrier,
	metrics *metrics.Metrics,
) *PostingUseCase {
	return &PostingUseCase{
		txManager:    txManager,
		businessRepo: businessRepo,
		accountRepo:  accountRepo,
		txnRepo:      txnRepo,
		entryRepo:    entryRepo,
		balances:     balances,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// EntryInput is one proposed transaction line.
type EntryInput struct {
	AccountID string
	Amount    decimal.Decimal
	Side      domain.EntrySide
}

// PostTransactionInput represents input for posting a transaction.
// DebitTotal and CreditTotal are the caller's redundant totals; they are
// checked against each other before the entries are even summed.
// SequenceNumber, when set, is stored verbatim as the business-scoped
// sequence; when nil the next free sequence is assigned inside the unit of
// work.
type PostTransactionInput struct {
	BusinessID     string
	Date           time.Time
	Description    string
	Entries        []EntryInput
	DebitTotal     decimal.Decimal
	CreditTotal    decimal.Decimal
	SequenceNumber *int64
}

// PostTransaction validates the proposed transaction and commits it
// atomically together with the recomputed balances of every account in the
// business. Transient store conflicts (the business row lock contends with
// another post) are retried.
func (uc *PostingUseCase) PostTransaction(ctx context.Context, input PostTransactionInput) (*domain.Transaction, error) {
	start := time.Now()

	entries, err := uc.validate(input)
	if err != nil {
		uc.countPostingError(err)
		return nil, err
	}

	var posted *domain.Transaction

	err = uc.retrier.Retry(ctx, func() error {
		var postErr error
		posted, postErr = uc.postOnce(ctx, input, entries)
		return postErr
	})
	if err != nil {
		err = storeError(err)
		uc.countPostingError(err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsPosted.Inc()
		uc.metrics.PostingDuration.Observe(time.Since(start).Seconds())
	}

	return posted, nil
}

func (uc *PostingUseCase) countPostingError(err error) {
	if uc.metrics != nil {
		uc.metrics.PostingErrors.WithLabelValues(errorClass(err)).Inc()
	}
}

func (uc *PostingUseCase) validate(input PostTransactionInput) ([]domain.Entry, error) {
	if input.BusinessID == "" {
		return nil, fmt.Errorf("%w: business id is required", domain.ErrValidation)
	}

	if input.Date.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	// Defense in depth: the caller's redundant totals are compared first,
	// before the entries themselves are summed.
	if !input.DebitTotal.Equal(input.CreditTotal) {
		return nil, domain.ErrUnbalancedTotals
	}

	entries := make([]domain.Entry, len(input.Entries))
	for i, e := range input.Entries {
		if err := domain.ValidateAmount(e.Amount); err != nil {
			return nil, err
		}
		entries[i] = domain.Entry{
			AccountID: e.AccountID,
			Amount:    e.Amount,
			Side:      e.Side,
		}
	}

	if err := domain.ValidateEntries(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// verifyAccountOwnership rejects entries referencing accounts outside the
// posting business.
func (uc *PostingUseCase) verifyAccountOwnership(ctx context.Context, tx Transaction, businessID string, entries []domain.Entry) error {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			ids = append(ids, e.AccountID)
		}
	}

	owned, err := uc.accountRepo.OwnedIDs(ctx, tx, businessID, ids)
	if err != nil {
		return err
	}
	if len(owned) != len(ids) {
		return domain.ErrAccountNotFound
	}

	return nil
}

// postOnce runs one attempt of the atomic unit of work.
func (uc *PostingUseCase) postOnce(ctx context.Context, input PostTransactionInput, entries []domain.Entry) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Locking the business row validates the reference and serializes
	// sequence assignment for this business until commit.
	if _, err := uc.businessRepo.GetByIDForUpdate(ctx, tx, input.BusinessID); err != nil {
		return nil, err
	}

	// Every entry account must belong to the posting business. An entry
	// against a foreign account would escape this business's recalculation
	// and leave the other business's balance stale.
	if err := uc.verifyAccountOwnership(ctx, tx, input.BusinessID, entries); err != nil {
		return nil, err
	}

	seq := int64(0)
	if input.SequenceNumber != nil {
		seq = *input.SequenceNumber
	} else {
		seq, err = uc.txnRepo.NextSequenceNumberTx(ctx, tx, input.BusinessID)
		if err != nil {
			return nil, err
		}
	}

	// The header caches the entry-derived totals, so header and entries can
	// never disagree at commit time.
	debit, credit := domain.SumEntries(entries)

	txn := &domain.Transaction{
		BusinessID:     input.BusinessID,
		SequenceNumber: seq,
		Description:    input.Description,
		Date:           input.Date,
		Debit:          debit,
		Credit:         credit,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := uc.txnRepo.Create(ctx, tx, txn)
	if err != nil {
		return nil, err
	}
	txn.ID = id

	for i := range entries {
		entries[i].TransactionID = id
		if err := uc.entryRepo.Create(ctx, tx, &entries[i]); err != nil {
			return nil, err
		}
	}

	// Recalculation runs inside the same unit of work: a failed recompute
	// rolls back the whole post.
	if err := uc.balances.RecalculateTx(ctx, tx, input.BusinessID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// NextSequenceNumber returns the advisory next business-scoped sequence.
// It is re-read on every call and carries no uniqueness guarantee; the
// authoritative assignment happens inside PostTransaction.
func (uc *PostingUseCase) NextSequenceNumber(ctx context.Context, businessID string) (int64, error) {
	seq, err := uc.txnRepo.NextSequenceNumber(ctx, businessID)
	if err != nil {
		return 0, storeError(err)
	}
	return seq, nil
}

// GetTransaction retrieves a transaction header with its entries.
func (uc *PostingUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, []*domain.Entry, error) {
	txn, err := uc.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, storeError(err)
	}

	entries, err := uc.entryRepo.ListByTransaction(ctx, id)
	if err != nil {
		return nil, nil, storeError(err)
	}

	return txn, entries, nil
}
