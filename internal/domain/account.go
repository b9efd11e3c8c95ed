package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one bucket in a business's chart of accounts. Balance is
// derived state: it is written only by balance recalculation, never by
// account CRUD or directly by posting.
type Account struct {
	ID              string
	BusinessID      string
	TypeID          int32
	Name            string
	Description     string
	ParentAccountID *string
	Balance         decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AccountWithPolarity is the read model balance recalculation works on: an
// account joined with its type's normal balance side.
type AccountWithPolarity struct {
	Account
	Polarity Polarity
}

// BalanceFromSums folds per-side entry totals into a signed balance for an
// account whose type has the given polarity.
func BalanceFromSums(p Polarity, debit, credit decimal.Decimal) decimal.Decimal {
	if p == PolarityDebit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}
