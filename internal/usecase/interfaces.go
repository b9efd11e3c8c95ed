package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

// BusinessRepository defines data access for businesses.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	// GetByIDForUpdate takes a row lock on the business, serializing
	// concurrent posts for the same business inside their units of work.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Business, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error)
	// ListWithPolarity loads every account of the business joined with its
	// type's polarity, inside the given unit of work.
	ListWithPolarity(ctx context.Context, tx Transaction, businessID string) ([]*domain.AccountWithPolarity, error)
	SearchByName(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error)
	// OwnedIDs returns the subset of ids that belong to the business,
	// inside the given unit of work.
	OwnedIDs(ctx context.Context, tx Transaction, businessID string, ids []string) ([]string, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

// AccountTypeRepository defines data access for the account-type reference set.
type AccountTypeRepository interface {
	List(ctx context.Context) ([]*domain.AccountType, error)
	GetByID(ctx context.Context, id int32) (*domain.AccountType, error)
}

// TransactionRepository defines data access for transaction headers.
type TransactionRepository interface {
	// Create inserts the header and returns the store-assigned internal id.
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// NextSequenceNumber is the advisory MAX+1 read, outside any unit of work.
	NextSequenceNumber(ctx context.Context, businessID string) (int64, error)
	// NextSequenceNumberTx is the same read inside a unit of work that
	// already holds the business row lock.
	NextSequenceNumberTx(ctx context.Context, tx Transaction, businessID string) (int64, error)
	ListJournal(ctx context.Context, businessID string, from, to time.Time) ([]*domain.JournalTransaction, error)
}

// EntryRepository defines data access for transaction entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	ListByTransaction(ctx context.Context, transactionID int64) ([]*domain.Entry, error)
	// SumsByBusiness aggregates every entry of the business into per-account
	// debit/credit totals with a single grouped query.
	SumsByBusiness(ctx context.Context, tx Transaction, businessID string) (map[string]domain.EntrySums, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when the store reports a transient conflict
// (deadlock, serialization failure).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
