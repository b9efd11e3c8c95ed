package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// BusinessRepository implements usecase.BusinessRepository.
type BusinessRepository struct {
	pool *pgxpool.Pool
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

const businessColumns = `id, owner_id, name, business_type, plan,
	industry, ntn, address, city, country, phone, created_at, updated_at`

const createBusinessSQL = `INSERT INTO businesses (` + businessColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const getBusinessSQL = `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

// FOR UPDATE serializes posting for the business until the unit of work ends.
const getBusinessForUpdateSQL = getBusinessSQL + ` FOR UPDATE`

const listBusinessesByOwnerSQL = `SELECT ` + businessColumns + ` FROM businesses
	WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

// Create creates a new business.
func (r *BusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	_, err := r.pool.Exec(ctx, createBusinessSQL,
		business.ID,
		business.OwnerID,
		business.Name,
		business.BusinessType,
		string(business.Plan),
		business.Industry,
		business.NTN,
		business.Address,
		business.City,
		business.Country,
		business.Phone,
		timeToPgTimestamptz(business.CreatedAt),
		timeToPgTimestamptz(business.UpdatedAt),
	)

	return err
}

// GetByID retrieves a business by ID.
func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return scanBusiness(r.pool.QueryRow(ctx, getBusinessSQL, id))
}

// GetByIDForUpdate retrieves a business by ID with a FOR UPDATE row lock.
func (r *BusinessRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Business, error) {
	pgxTx := tx.(*Tx).PgxTx()

	return scanBusiness(pgxTx.QueryRow(ctx, getBusinessForUpdateSQL, id))
}

// ListByOwner lists the businesses owned by ownerID.
func (r *BusinessRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error) {
	rows, err := r.pool.Query(ctx, listBusinessesByOwnerSQL, ownerID, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	return businesses, rows.Err()
}

func scanBusiness(row pgx.Row) (*domain.Business, error) {
	var b domain.Business
	var plan string

	err := row.Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.BusinessType,
		&plan,
		&b.Industry,
		&b.NTN,
		&b.Address,
		&b.City,
		&b.Country,
		&b.Phone,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBusinessNotFound
		}

		return nil, err
	}

	b.Plan = domain.Plan(plan)

	return &b, nil
}
