package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
	"github.com/openbooks/openbooks/internal/usecase"
)

func TestTransactionFromDomain(t *testing.T) {
	now := time.Now()
	txn := &domain.Transaction{
		ID:             42,
		BusinessID:     "biz-1",
		SequenceNumber: 3,
		Description:    "cash sale",
		Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Debit:          decimal.NewFromInt(100),
		Credit:         decimal.NewFromInt(100),
		CreatedAt:      now,
	}
	entries := []*domain.Entry{
		{ID: 1, TransactionID: 42, AccountID: "acc-cash", Amount: decimal.NewFromInt(100), Side: domain.EntryDebit},
		{ID: 2, TransactionID: 42, AccountID: "acc-sales", Amount: decimal.NewFromInt(100), Side: domain.EntryCredit},
	}

	resp := TransactionFromDomain(txn, entries)
	if resp.ID != 42 || resp.SequenceNumber != 3 || resp.Date != "2024-03-15" {
		t.Fatalf("unexpected transaction response: %+v", resp)
	}
	if len(resp.Entries) != 2 || resp.Entries[0].Side != "debit" {
		t.Fatalf("unexpected entries: %+v", resp.Entries)
	}

	headerOnly := TransactionFromDomain(txn, nil)
	if len(headerOnly.Entries) != 0 {
		t.Fatalf("expected no entries on header-only conversion, got %+v", headerOnly.Entries)
	}
}

func TestJournalFromReport(t *testing.T) {
	report := &usecase.JournalReport{
		Transactions: []*domain.JournalTransaction{
			{
				Transaction: domain.Transaction{
					ID:             1,
					SequenceNumber: 1,
					Date:           time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				},
				Entries: []domain.JournalEntry{
					{AccountID: "acc-cash", AccountName: "Cash", Amount: decimal.NewFromInt(100), Side: domain.EntryDebit},
					{AccountID: "acc-sales", AccountName: "Sales", Amount: decimal.NewFromInt(100), Side: domain.EntryCredit},
				},
				DebitSubtotal:  decimal.NewFromInt(100),
				CreditSubtotal: decimal.NewFromInt(100),
			},
		},
		DebitTotal:  decimal.NewFromInt(100),
		CreditTotal: decimal.NewFromInt(100),
	}

	resp := JournalFromReport(report)
	if len(resp.Transactions) != 1 || !resp.DebitTotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected journal response: %+v", resp)
	}

	jt := resp.Transactions[0]
	if jt.Date != "2024-01-05" || !jt.DebitSubtotal.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected journal transaction: %+v", jt)
	}
	if len(jt.Entries) != 2 || jt.Entries[1].AccountName != "Sales" {
		t.Fatalf("unexpected journal entries: %+v", jt.Entries)
	}
}

func TestAccountFromDomain(t *testing.T) {
	now := time.Now()
	parent := "acc-parent"
	account := &domain.Account{
		ID:              "acc-1",
		BusinessID:      "biz-1",
		TypeID:          1,
		Name:            "Cash",
		ParentAccountID: &parent,
		Balance:         decimal.RequireFromString("123.45"),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	resp := AccountFromDomain(account)
	if resp.ID != account.ID || !resp.Balance.Equal(account.Balance) || !resp.Active {
		t.Fatalf("unexpected account response: %+v", resp)
	}
	if resp.ParentAccountID == nil || *resp.ParentAccountID != parent {
		t.Fatalf("expected parent account to carry over, got %+v", resp.ParentAccountID)
	}

	list := AccountsFromDomain([]*domain.Account{account})
	if len(list) != 1 || list[0].ID != account.ID {
		t.Fatalf("AccountsFromDomain returned %+v", list)
	}
}

func TestAccountTypesFromDomain(t *testing.T) {
	parent := int32(1)
	types := []*domain.AccountType{
		{ID: 1, Name: "Assets", Polarity: domain.PolarityDebit},
		{ID: 8, Name: "Current Assets", ParentTypeID: &parent, IsSubtype: true, Polarity: domain.PolarityDebit},
	}

	resp := AccountTypesFromDomain(types)
	if len(resp) != 2 || resp[0].Polarity != "debit" {
		t.Fatalf("unexpected account type responses: %+v", resp)
	}
	if !resp[1].IsSubtype || resp[1].ParentTypeID == nil || *resp[1].ParentTypeID != parent {
		t.Fatalf("expected subtype fields to carry over, got %+v", resp[1])
	}
}

func TestBusinessFromDomain(t *testing.T) {
	now := time.Now()
	business := &domain.Business{
		ID:           "biz-1",
		OwnerID:      "user-1",
		Name:         "Khan Textiles",
		BusinessType: "retail",
		Plan:         domain.PlanPremium,
		Industry:     "textiles",
		City:         "Lahore",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := BusinessFromDomain(business)
	if resp.ID != business.ID || resp.Plan != "premium" || resp.City != "Lahore" {
		t.Fatalf("unexpected business response: %+v", resp)
	}

	list := BusinessesFromDomain([]*domain.Business{business})
	if len(list) != 1 || list[0].ID != business.ID {
		t.Fatalf("BusinessesFromDomain returned %+v", list)
	}
}
