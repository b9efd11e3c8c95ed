package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
)

// AccountTypeRepository implements usecase.AccountTypeRepository over the
// seeded reference table.
type AccountTypeRepository struct {
	pool *pgxpool.Pool
}

// NewAccountTypeRepository creates a new AccountTypeRepository.
func NewAccountTypeRepository(pool *pgxpool.Pool) *AccountTypeRepository {
	return &AccountTypeRepository{pool: pool}
}

const listAccountTypesSQL = `SELECT id, name, parent_type_id, is_subtype, polarity
	FROM account_types ORDER BY id`

const getAccountTypeSQL = `SELECT id, name, parent_type_id, is_subtype, polarity
	FROM account_types WHERE id = $1`

// List returns the full account-type reference set.
func (r *AccountTypeRepository) List(ctx context.Context) ([]*domain.AccountType, error) {
	rows, err := r.pool.Query(ctx, listAccountTypesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*domain.AccountType
	for rows.Next() {
		at, err := scanAccountType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, at)
	}

	return types, rows.Err()
}

// GetByID retrieves an account type by ID.
func (r *AccountTypeRepository) GetByID(ctx context.Context, id int32) (*domain.AccountType, error) {
	return scanAccountType(r.pool.QueryRow(ctx, getAccountTypeSQL, id))
}

func scanAccountType(row pgx.Row) (*domain.AccountType, error) {
	var at domain.AccountType
	var polarity string

	err := row.Scan(&at.ID, &at.Name, &at.ParentTypeID, &at.IsSubtype, &polarity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountTypeNotFound
		}

		return nil, err
	}

	at.Polarity = domain.Polarity(polarity)

	return &at, nil
}
