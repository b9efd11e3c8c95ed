package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// MockBusinessRepository is a mock implementation of BusinessRepository.
type MockBusinessRepository struct {
	mu         sync.RWMutex
	businesses map[string]*domain.Business

	CreateFunc           func(ctx context.Context, business *domain.Business) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Business, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Business, error)
	ListByOwnerFunc      func(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error)
}

func NewMockBusinessRepository() *MockBusinessRepository {
	return &MockBusinessRepository{
		businesses: make(map[string]*domain.Business),
	}
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, business)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.businesses[business.ID] = business
	return nil
}

func (m *MockBusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.businesses[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBusinessNotFound
}

func (m *MockBusinessRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Business, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockBusinessRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Business, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var businesses []*domain.Business
	for _, b := range m.businesses {
		if b.OwnerID == ownerID {
			businesses = append(businesses, b)
		}
	}
	return businesses, nil
}

// MockAccountRepository is a mock implementation of AccountRepository. The
// in-memory store keeps each account together with its polarity; Put seeds
// both at once.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.AccountWithPolarity

	CreateFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	UpdateFunc           func(ctx context.Context, account *domain.Account) error
	ListByBusinessFunc   func(ctx context.Context, businessID string) ([]*domain.Account, error)
	ListWithPolarityFunc func(ctx context.Context, tx usecase.Transaction, businessID string) ([]*domain.AccountWithPolarity, error)
	SearchByNameFunc     func(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error)
	OwnedIDsFunc         func(ctx context.Context, tx usecase.Transaction, businessID string, ids []string) ([]string, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.AccountWithPolarity),
	}
}

// Put seeds an account with an explicit polarity.
func (m *MockAccountRepository) Put(account *domain.AccountWithPolarity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = &domain.AccountWithPolarity{Account: *account, Polarity: domain.PolarityCredit}
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		account := a.Account
		return &account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[account.ID]; ok {
		a.Account = *account
		return nil
	}
	return domain.ErrAccountNotFound
}

func (m *MockAccountRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Account, error) {
	if m.ListByBusinessFunc != nil {
		return m.ListByBusinessFunc(ctx, businessID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.BusinessID == businessID {
			account := a.Account
			accounts = append(accounts, &account)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListWithPolarity(ctx context.Context, tx usecase.Transaction, businessID string) ([]*domain.AccountWithPolarity, error) {
	if m.ListWithPolarityFunc != nil {
		return m.ListWithPolarityFunc(ctx, tx, businessID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.AccountWithPolarity
	for _, a := range m.accounts {
		if a.BusinessID == businessID {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) OwnedIDs(ctx context.Context, tx usecase.Transaction, businessID string, ids []string) ([]string, error) {
	if m.OwnedIDsFunc != nil {
		return m.OwnedIDsFunc(ctx, tx, businessID, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var owned []string
	for _, id := range ids {
		if a, ok := m.accounts[id]; ok && a.BusinessID == businessID {
			owned = append(owned, id)
		}
	}
	return owned, nil
}

func (m *MockAccountRepository) SearchByName(ctx context.Context, businessID, query string, limit int) ([]*domain.Account, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, businessID, query, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.BusinessID == businessID && strings.Contains(strings.ToLower(a.Name), strings.ToLower(query)) {
			account := a.Account
			accounts = append(accounts, &account)
			if len(accounts) == limit {
				break
			}
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[id]; ok {
		a.Balance = balance
		a.UpdatedAt = updatedAt
	}
	return nil
}

// MockAccountTypeRepository is a mock implementation of AccountTypeRepository,
// pre-seeded with the reference set.
type MockAccountTypeRepository struct {
	types map[int32]*domain.AccountType

	ListFunc    func(ctx context.Context) ([]*domain.AccountType, error)
	GetByIDFunc func(ctx context.Context, id int32) (*domain.AccountType, error)
}

func NewMockAccountTypeRepository() *MockAccountTypeRepository {
	types := make(map[int32]*domain.AccountType)
	for _, t := range domain.SeedAccountTypes() {
		seeded := t
		types[t.ID] = &seeded
	}
	return &MockAccountTypeRepository{types: types}
}

func (m *MockAccountTypeRepository) List(ctx context.Context) ([]*domain.AccountType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	types := make([]*domain.AccountType, 0, len(m.types))
	for _, t := range domain.SeedAccountTypes() {
		types = append(types, m.types[t.ID])
	}
	return types, nil
}

func (m *MockAccountTypeRepository) GetByID(ctx context.Context, id int32) (*domain.AccountType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, domain.ErrAccountTypeNotFound
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[int64]*domain.Transaction
	nextID       int64

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int64, error)
	GetByIDFunc              func(ctx context.Context, id int64) (*domain.Transaction, error)
	NextSequenceNumberFunc   func(ctx context.Context, businessID string) (int64, error)
	NextSequenceNumberTxFunc func(ctx context.Context, tx usecase.Transaction, businessID string) (int64, error)
	ListJournalFunc          func(ctx context.Context, businessID string, from, to time.Time) ([]*domain.JournalTransaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[int64]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *txn
	stored.ID = m.nextID
	m.transactions[stored.ID] = &stored
	return stored.ID, nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if txn, ok := m.transactions[id]; ok {
		return txn, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) NextSequenceNumber(ctx context.Context, businessID string) (int64, error) {
	if m.NextSequenceNumberFunc != nil {
		return m.NextSequenceNumberFunc(ctx, businessID)
	}
	return m.maxSequence(businessID) + 1, nil
}

func (m *MockTransactionRepository) NextSequenceNumberTx(ctx context.Context, tx usecase.Transaction, businessID string) (int64, error) {
	if m.NextSequenceNumberTxFunc != nil {
		return m.NextSequenceNumberTxFunc(ctx, tx, businessID)
	}
	return m.maxSequence(businessID) + 1, nil
}

func (m *MockTransactionRepository) maxSequence(businessID string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var max int64
	for _, txn := range m.transactions {
		if txn.BusinessID == businessID && txn.SequenceNumber > max {
			max = txn.SequenceNumber
		}
	}
	return max
}

func (m *MockTransactionRepository) ListJournal(ctx context.Context, businessID string, from, to time.Time) ([]*domain.JournalTransaction, error) {
	if m.ListJournalFunc != nil {
		return m.ListJournalFunc(ctx, businessID, from, to)
	}
	return nil, nil
}

// MockEntryRepository is a mock implementation of EntryRepository. The
// default SumsByBusiness aggregates every stored entry, which is exact for
// single-business tests.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.Entry

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	ListByTransactionFunc func(ctx context.Context, transactionID int64) ([]*domain.Entry, error)
	SumsByBusinessFunc    func(ctx context.Context, tx usecase.Transaction, businessID string) (map[string]domain.EntrySums, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *entry
	stored.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, &stored)
	return nil
}

func (m *MockEntryRepository) ListByTransaction(ctx context.Context, transactionID int64) ([]*domain.Entry, error) {
	if m.ListByTransactionFunc != nil {
		return m.ListByTransactionFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) SumsByBusiness(ctx context.Context, tx usecase.Transaction, businessID string) (map[string]domain.EntrySums, error) {
	if m.SumsByBusinessFunc != nil {
		return m.SumsByBusinessFunc(ctx, tx, businessID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sums := make(map[string]domain.EntrySums)
	for _, e := range m.entries {
		s := sums[e.AccountID]
		switch e.Side {
		case domain.EntryDebit:
			s.Debit = s.Debit.Add(e.Amount)
		case domain.EntryCredit:
			s.Credit = s.Credit.Add(e.Amount)
		}
		sums[e.AccountID] = s
	}
	return sums, nil
}

// MockTransaction is a mock unit of work that records its outcome.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager. It
// hands out MockTransactions and keeps them for inspection.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// Last returns the most recently begun transaction.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Transactions) == 0 {
		return nil
	}
	return m.Transactions[len(m.Transactions)-1]
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
