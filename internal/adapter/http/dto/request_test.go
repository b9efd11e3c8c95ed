package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/openbooks/internal/domain"
)

func TestPostTransactionRequest_ToUseCaseInput(t *testing.T) {
	seq := int64(7)

	tests := []struct {
		name        string
		request     *PostTransactionRequest
		expectError bool
	}{
		{
			name: "valid request",
			request: &PostTransactionRequest{
				BusinessID:  "biz-1",
				Date:        "2024-03-15",
				Description: "cash sale",
				Entries: []EntryItem{
					{AccountID: "acc-cash", Amount: decimal.NewFromInt(100), Side: "debit"},
					{AccountID: "acc-sales", Amount: decimal.NewFromInt(100), Side: "credit"},
				},
				Debit:          decimal.NewFromInt(100),
				Credit:         decimal.NewFromInt(100),
				SequenceNumber: &seq,
			},
		},
		{
			name:        "invalid date format",
			request:     &PostTransactionRequest{BusinessID: "biz-1", Date: "15/03/2024"},
			expectError: true,
		},
		{
			name:        "missing date",
			request:     &PostTransactionRequest{BusinessID: "biz-1"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.BusinessID != tt.request.BusinessID || got.Description != tt.request.Description {
				t.Fatalf("ToUseCaseInput() = %+v, want fields of %+v", got, tt.request)
			}
			if !got.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected date %v", got.Date)
			}
			if len(got.Entries) != 2 || got.Entries[0].Side != domain.EntryDebit || got.Entries[1].Side != domain.EntryCredit {
				t.Fatalf("unexpected entries %+v", got.Entries)
			}
			if got.SequenceNumber == nil || *got.SequenceNumber != seq {
				t.Fatalf("expected sequence number to carry over, got %+v", got.SequenceNumber)
			}
		})
	}
}

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	parent := "acc-parent"
	req := &CreateAccountRequest{
		BusinessID:      "biz-1",
		TypeID:          3,
		Name:            "Petty Cash",
		Description:     "till float",
		ParentAccountID: &parent,
	}

	got := req.ToUseCaseInput()
	if got.BusinessID != "biz-1" || got.TypeID != 3 || got.Name != "Petty Cash" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if got.ParentAccountID == nil || *got.ParentAccountID != parent {
		t.Fatalf("expected parent account to carry over, got %+v", got.ParentAccountID)
	}
}

func TestUpdateAccountRequest_ToUseCaseInput(t *testing.T) {
	name := "Cash on Hand"
	active := false
	req := &UpdateAccountRequest{Name: &name, Active: &active}

	got := req.ToUseCaseInput()
	if got.Name == nil || *got.Name != name {
		t.Fatalf("expected name to carry over, got %+v", got)
	}
	if got.Active == nil || *got.Active {
		t.Fatalf("expected active flag to carry over, got %+v", got)
	}
	if got.Description != nil || got.ParentAccountID != nil {
		t.Fatalf("expected absent fields to stay nil, got %+v", got)
	}
}

func TestRegisterBusinessRequest_ToUseCaseInput(t *testing.T) {
	req := &RegisterBusinessRequest{
		OwnerID:      "user-1",
		Name:         "Khan Textiles",
		BusinessType: "retail",
		Plan:         "premium",
		Industry:     "textiles",
		NTN:          "1234567-8",
		City:         "Lahore",
		Country:      "Pakistan",
	}

	got := req.ToUseCaseInput()
	if got.OwnerID != "user-1" || got.Plan != domain.PlanPremium {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if got.Industry != "textiles" || got.NTN != "1234567-8" || got.City != "Lahore" {
		t.Fatalf("expected profile fields to carry over, got %+v", got)
	}
}
