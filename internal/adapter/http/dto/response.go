package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID             int64           `json:"id"`
	BusinessID     string          `json:"business_id"`
	SequenceNumber int64           `json:"sequence_number"`
	Description    string          `json:"description,omitempty"`
	Date           string          `json:"date"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Entries        []EntryResponse `json:"entries,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          int64           `json:"id,omitempty"`
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Side        string          `json:"side"`
}

const dateLayout = "2006-01-02"

// TransactionFromDomain converts a domain transaction and its entries to a response.
func TransactionFromDomain(t *domain.Transaction, entries []*domain.Entry) *TransactionResponse {
	resp := &TransactionResponse{
		ID:             t.ID,
		BusinessID:     t.BusinessID,
		SequenceNumber: t.SequenceNumber,
		Description:    t.Description,
		Date:           t.Date.Format(dateLayout),
		Debit:          t.Debit,
		Credit:         t.Credit,
		CreatedAt:      t.CreatedAt,
	}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, EntryResponse{
			ID:        e.ID,
			AccountID: e.AccountID,
			Amount:    e.Amount,
			Side:      string(e.Side),
		})
	}

	return resp
}

// JournalTransactionResponse represents one journal transaction with its
// entries and entry-derived subtotals.
type JournalTransactionResponse struct {
	ID             int64           `json:"id"`
	SequenceNumber int64           `json:"sequence_number"`
	Description    string          `json:"description,omitempty"`
	Date           string          `json:"date"`
	Entries        []EntryResponse `json:"entries"`
	DebitSubtotal  decimal.Decimal `json:"debit_subtotal"`
	CreditSubtotal decimal.Decimal `json:"credit_subtotal"`
}

// JournalResponse represents a journal listing over a date range.
type JournalResponse struct {
	Transactions []*JournalTransactionResponse `json:"transactions"`
	DebitTotal   decimal.Decimal               `json:"debit_total"`
	CreditTotal  decimal.Decimal               `json:"credit_total"`
}

// JournalFromReport converts a journal report to a response.
func JournalFromReport(report *usecase.JournalReport) *JournalResponse {
	resp := &JournalResponse{
		Transactions: make([]*JournalTransactionResponse, 0, len(report.Transactions)),
		DebitTotal:   report.DebitTotal,
		CreditTotal:  report.CreditTotal,
	}

	for _, txn := range report.Transactions {
		jt := &JournalTransactionResponse{
			ID:             txn.ID,
			SequenceNumber: txn.SequenceNumber,
			Description:    txn.Description,
			Date:           txn.Date.Format(dateLayout),
			Entries:        make([]EntryResponse, 0, len(txn.Entries)),
			DebitSubtotal:  txn.DebitSubtotal,
			CreditSubtotal: txn.CreditSubtotal,
		}
		for _, e := range txn.Entries {
			jt.Entries = append(jt.Entries, EntryResponse{
				AccountID:   e.AccountID,
				AccountName: e.AccountName,
				Amount:      e.Amount,
				Side:        string(e.Side),
			})
		}
		resp.Transactions = append(resp.Transactions, jt)
	}

	return resp
}

// NextSequenceResponse carries the advisory next sequence number.
type NextSequenceResponse struct {
	SequenceNumber int64 `json:"sequence_number"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"business_id"`
	TypeID          int32           `json:"type_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	ParentAccountID *string         `json:"parent_account_id,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:              a.ID,
		BusinessID:      a.BusinessID,
		TypeID:          a.TypeID,
		Name:            a.Name,
		Description:     a.Description,
		ParentAccountID: a.ParentAccountID,
		Balance:         a.Balance,
		Active:          a.Active,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// AccountTypeResponse represents an account type in API responses.
type AccountTypeResponse struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	ParentTypeID *int32 `json:"parent_type_id,omitempty"`
	IsSubtype    bool   `json:"is_subtype"`
	Polarity     string `json:"polarity"`
}

// AccountTypesFromDomain converts domain account types to responses.
func AccountTypesFromDomain(types []*domain.AccountType) []*AccountTypeResponse {
	result := make([]*AccountTypeResponse, len(types))
	for i, t := range types {
		result[i] = &AccountTypeResponse{
			ID:           t.ID,
			Name:         t.Name,
			ParentTypeID: t.ParentTypeID,
			IsSubtype:    t.IsSubtype,
			Polarity:     string(t.Polarity),
		}
	}
	return result
}

// BusinessResponse represents a business in API responses.
type BusinessResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type,omitempty"`
	Plan         string    `json:"plan"`
	Industry     string    `json:"industry,omitempty"`
	NTN          string    `json:"ntn,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BusinessFromDomain converts a domain business to a response.
func BusinessFromDomain(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Name:         b.Name,
		BusinessType: b.BusinessType,
		Plan:         string(b.Plan),
		Industry:     b.Industry,
		NTN:          b.NTN,
		Address:      b.Address,
		City:         b.City,
		Country:      b.Country,
		Phone:        b.Phone,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// BusinessesFromDomain converts domain businesses to responses.
func BusinessesFromDomain(businesses []*domain.Business) []*BusinessResponse {
	result := make([]*BusinessResponse, len(businesses))
	for i, b := range businesses {
		result[i] = BusinessFromDomain(b)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
