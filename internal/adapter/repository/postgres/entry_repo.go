package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

const pgErrForeignKeyViolation = "23503"

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const createEntrySQL = `INSERT INTO transaction_entries (transaction_id, account_id, amount, side)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

const listEntriesByTransactionSQL = `SELECT id, transaction_id, account_id, amount, side
	FROM transaction_entries WHERE transaction_id = $1 ORDER BY id`

// SumsByBusiness aggregates every entry of the business in one pass. Joining
// through accounts scopes the sum; entries cannot reference another
// business's accounts because the posting path validates membership.
const sumsByBusinessSQL = `SELECT e.account_id,
	COALESCE(SUM(e.amount) FILTER (WHERE e.side = 'debit'), 0),
	COALESCE(SUM(e.amount) FILTER (WHERE e.side = 'credit'), 0)
	FROM transaction_entries e
	JOIN accounts a ON a.id = e.account_id
	WHERE a.business_id = $1
	GROUP BY e.account_id`

// Create inserts an entry inside the unit of work. A foreign key violation
// on account_id means the referenced account does not exist.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()

	err := pgxTx.QueryRow(ctx, createEntrySQL,
		entry.TransactionID,
		entry.AccountID,
		decimalToNumeric(entry.Amount),
		string(entry.Side),
	).Scan(&entry.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return domain.ErrAccountNotFound
		}

		return err
	}

	return nil
}

// ListByTransaction lists a transaction's entries in insertion order.
func (r *EntryRepository) ListByTransaction(ctx context.Context, transactionID int64) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, listEntriesByTransactionSQL, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		var amount pgtype.Numeric
		var side string

		if err := rows.Scan(&e.ID, &e.TransactionID, &e.AccountID, &amount, &side); err != nil {
			return nil, err
		}

		e.Amount = numericToDecimal(amount)
		e.Side = domain.EntrySide(side)
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// SumsByBusiness returns per-account debit and credit totals.
func (r *EntryRepository) SumsByBusiness(ctx context.Context, tx usecase.Transaction, businessID string) (map[string]domain.EntrySums, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, sumsByBusinessSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]domain.EntrySums)
	for rows.Next() {
		var accountID string
		var debit, credit pgtype.Numeric

		if err := rows.Scan(&accountID, &debit, &credit); err != nil {
			return nil, err
		}

		sums[accountID] = domain.EntrySums{
			Debit:  numericToDecimal(debit),
			Credit: numericToDecimal(credit),
		}
	}

	return sums, rows.Err()
}
