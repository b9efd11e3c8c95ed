package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, business_id, type_id, name, description,
	parent_account_id, balance, active, created_at, updated_at`

const createAccountSQL = `INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getAccountSQL = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

const updateAccountSQL = `UPDATE accounts
	SET name = $2, description = $3, parent_account_id = $4, active = $5, updated_at = $6
	WHERE id = $1`

const listAccountsSQL = `SELECT ` + accountColumns + ` FROM accounts
	WHERE business_id = $1 ORDER BY name`

const listAccountsWithPolaritySQL = `SELECT a.id, a.business_id, a.type_id, a.name, a.description,
	a.parent_account_id, a.balance, a.active, a.created_at, a.updated_at, t.polarity
	FROM accounts a
	JOIN account_types t ON t.id = a.type_id
	WHERE a.business_id = $1`

const searchAccountsSQL = `SELECT ` + accountColumns + ` FROM accounts
	WHERE business_id = $1 AND name ILIKE '%' || $2 || '%'
	ORDER BY name LIMIT $3`

const updateAccountBalanceSQL = `UPDATE accounts SET balance = $2, updated_at = $3 WHERE id = $1`

const ownedAccountIDsSQL = `SELECT id FROM accounts WHERE business_id = $1 AND id = ANY($2)`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, createAccountSQL,
		account.ID,
		account.BusinessID,
		account.TypeID,
		account.Name,
		account.Description,
		account.ParentAccountID,
		decimalToNumeric(account.Balance),
		account.Active,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateAccountName
		}

		return err
	}

	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, getAccountSQL, id))
}

// Update updates an account's editable fields.
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	tag, err := r.pool.Exec(ctx, updateAccountSQL,
		account.ID,
		account.Name,
		account.Description,
		account.ParentAccountID,
		account.Active,
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateAccountName
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// ListByBusiness lists the business's accounts.
func (r *AccountRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, listAccountsSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListWithPolarity lists the business's accounts joined with their type's
// polarity, inside the given unit of work.
func (r *AccountRepository) ListWithPolarity(ctx context.Context, tx usecase.Transaction, businessID string) ([]*domain.AccountWithPolarity, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, listAccountsWithPolaritySQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.AccountWithPolarity
	for rows.Next() {
		var a domain.AccountWithPolarity
		var balance pgtype.Numeric
		var polarity string

		err := rows.Scan(
			&a.ID,
			&a.BusinessID,
			&a.TypeID,
			&a.Name,
			&a.Description,
			&a.ParentAccountID,
			&balance,
			&a.Active,
			&a.CreatedAt,
			&a.UpdatedAt,
			&polarity,
		)
		if err != nil {
			return nil, err
		}

		a.Balance = numericToDecimal(balance)
		a.Polarity = domain.Polarity(polarity)
		accounts = append(accounts, &a)
	}

	return accounts, rows.Err()
}

// SearchByName finds accounts whose name contains query, case-insensitively.
func (r *AccountRepository) SearchByName(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, searchAccountsSQL, businessID, query, int32(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// OwnedIDs returns the subset of ids owned by the business, inside the
// given unit of work.
func (r *AccountRepository) OwnedIDs(ctx context.Context, tx usecase.Transaction, businessID string, ids []string) ([]string, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, ownedAccountIDsSQL, businessID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owned []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		owned = append(owned, id)
	}

	return owned, rows.Err()
}

// UpdateBalance writes a recomputed balance.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, updateAccountBalanceSQL, id, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt))

	return err
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var balance pgtype.Numeric

	err := row.Scan(
		&a.ID,
		&a.BusinessID,
		&a.TypeID,
		&a.Name,
		&a.Description,
		&a.ParentAccountID,
		&balance,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	a.Balance = numericToDecimal(balance)

	return &a, nil
}
