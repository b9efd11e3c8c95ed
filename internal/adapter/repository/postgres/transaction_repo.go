package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const createTransactionSQL = `INSERT INTO transactions
	(business_id, sequence_number, description, date, debit, credit, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

const getTransactionSQL = `SELECT id, business_id, sequence_number, description, date, debit, credit, created_at
	FROM transactions WHERE id = $1`

const nextSequenceNumberSQL = `SELECT COALESCE(MAX(sequence_number), 0) + 1
	FROM transactions WHERE business_id = $1`

const listJournalSQL = `SELECT t.id, t.business_id, t.sequence_number, t.description, t.date,
	t.debit, t.credit, t.created_at, e.account_id, a.name, e.amount, e.side
	FROM transactions t
	JOIN transaction_entries e ON e.transaction_id = t.id
	JOIN accounts a ON a.id = e.account_id
	WHERE t.business_id = $1 AND t.date >= $2 AND t.date <= $3
	ORDER BY t.date, t.sequence_number, t.id, e.id`

// Create inserts the transaction header and returns the assigned id.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var id int64
	err := pgxTx.QueryRow(ctx, createTransactionSQL,
		txn.BusinessID,
		txn.SequenceNumber,
		txn.Description,
		timeToPgDate(txn.Date),
		decimalToNumeric(txn.Debit),
		decimalToNumeric(txn.Credit),
		timeToPgTimestamptz(txn.CreatedAt),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a transaction header by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := scanTransaction(r.pool.QueryRow(ctx, getTransactionSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// NextSequenceNumber reads the advisory next sequence outside any unit of work.
func (r *TransactionRepository) NextSequenceNumber(ctx context.Context, businessID string) (int64, error) {
	var seq int64
	if err := r.pool.QueryRow(ctx, nextSequenceNumberSQL, businessID).Scan(&seq); err != nil {
		return 0, err
	}

	return seq, nil
}

// NextSequenceNumberTx reads the next sequence inside a unit of work that
// already holds the business row lock, making the assignment race free.
func (r *TransactionRepository) NextSequenceNumberTx(ctx context.Context, tx usecase.Transaction, businessID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()

	var seq int64
	if err := pgxTx.QueryRow(ctx, nextSequenceNumberSQL, businessID).Scan(&seq); err != nil {
		return 0, err
	}

	return seq, nil
}

// ListJournal lists the business's transactions in the date range together
// with their entries, one joined row per entry.
func (r *TransactionRepository) ListJournal(ctx context.Context, businessID string, from, to time.Time) ([]*domain.JournalTransaction, error) {
	rows, err := r.pool.Query(ctx, listJournalSQL, businessID, timeToPgDate(from), timeToPgDate(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		transactions []*domain.JournalTransaction
		current      *domain.JournalTransaction
	)

	for rows.Next() {
		var (
			txn           domain.Transaction
			date          pgtype.Date
			debit, credit pgtype.Numeric
			entry         domain.JournalEntry
			amount        pgtype.Numeric
			side          string
		)

		err := rows.Scan(
			&txn.ID,
			&txn.BusinessID,
			&txn.SequenceNumber,
			&txn.Description,
			&date,
			&debit,
			&credit,
			&txn.CreatedAt,
			&entry.AccountID,
			&entry.AccountName,
			&amount,
			&side,
		)
		if err != nil {
			return nil, err
		}

		txn.Date = date.Time
		txn.Debit = numericToDecimal(debit)
		txn.Credit = numericToDecimal(credit)
		entry.Amount = numericToDecimal(amount)
		entry.Side = domain.EntrySide(side)

		if current == nil || current.ID != txn.ID {
			current = &domain.JournalTransaction{Transaction: txn}
			transactions = append(transactions, current)
		}
		current.Entries = append(current.Entries, entry)
	}

	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var date pgtype.Date
	var debit, credit pgtype.Numeric

	err := row.Scan(
		&txn.ID,
		&txn.BusinessID,
		&txn.SequenceNumber,
		&txn.Description,
		&date,
		&debit,
		&credit,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Date = date.Time
	txn.Debit = numericToDecimal(debit)
	txn.Credit = numericToDecimal(credit)

	return &txn, nil
}
