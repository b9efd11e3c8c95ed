package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

// EntryItem represents a single transaction line in a request.
type EntryItem struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Side      string          `json:"side"`
}

// PostTransactionRequest represents a request to post a transaction.
// Debit and Credit are the caller's redundant totals; sequence_number is
// optional and stored verbatim when present.
type PostTransactionRequest struct {
	BusinessID     string          `json:"business_id"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Entries        []EntryItem     `json:"entries"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	SequenceNumber *int64          `json:"sequence_number,omitempty"`
}

// ToUseCaseInput converts to use case input. The date is a calendar day.
func (r *PostTransactionRequest) ToUseCaseInput() (usecase.PostTransactionInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return usecase.PostTransactionInput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", r.Date)
	}

	entries := make([]usecase.EntryInput, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = usecase.EntryInput{
			AccountID: e.AccountID,
			Amount:    e.Amount,
			Side:      domain.EntrySide(e.Side),
		}
	}

	return usecase.PostTransactionInput{
		BusinessID:     r.BusinessID,
		Date:           date,
		Description:    r.Description,
		Entries:        entries,
		DebitTotal:     r.Debit,
		CreditTotal:    r.Credit,
		SequenceNumber: r.SequenceNumber,
	}, nil
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	BusinessID      string  `json:"business_id"`
	TypeID          int32   `json:"type_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	ParentAccountID *string `json:"parent_account_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		BusinessID:      r.BusinessID,
		TypeID:          r.TypeID,
		Name:            r.Name,
		Description:     r.Description,
		ParentAccountID: r.ParentAccountID,
	}
}

// UpdateAccountRequest represents a partial account update. Absent fields
// are left unchanged.
type UpdateAccountRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	ParentAccountID *string `json:"parent_account_id,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Name:            r.Name,
		Description:     r.Description,
		ParentAccountID: r.ParentAccountID,
		Active:          r.Active,
	}
}

// RegisterBusinessRequest represents a request to register a business.
type RegisterBusinessRequest struct {
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	Plan         string `json:"plan"`
	Industry     string `json:"industry,omitempty"`
	NTN          string `json:"ntn,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterBusinessRequest) ToUseCaseInput() usecase.RegisterBusinessInput {
	return usecase.RegisterBusinessInput{
		OwnerID:      r.OwnerID,
		Name:         r.Name,
		BusinessType: r.BusinessType,
		Plan:         domain.Plan(r.Plan),
		Industry:     r.Industry,
		NTN:          r.NTN,
		Address:      r.Address,
		City:         r.City,
		Country:      r.Country,
		Phone:        r.Phone,
	}
}
