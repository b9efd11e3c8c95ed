package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide tags an entry as a debit or a credit. An entry is always exactly
// one of the two.
type EntrySide string

const (
	EntryDebit  EntrySide = "debit"
	EntryCredit EntrySide = "credit"
)

// IsValid reports whether s is one of the two sides.
func (s EntrySide) IsValid() bool {
	return s == EntryDebit || s == EntryCredit
}

// Transaction is one balanced economic event. ID is the store-assigned
// internal key; SequenceNumber is the human-facing, business-scoped counter.
// Debit and Credit are cached totals kept for fast display; the entries are
// authoritative.
type Transaction struct {
	ID             int64
	BusinessID     string
	SequenceNumber int64
	Description    string
	Date           time.Time
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	CreatedAt      time.Time
}

// Entry is one line of a transaction: a positive amount on one side of one
// account. Entries are immutable once committed.
type Entry struct {
	ID            int64
	TransactionID int64
	AccountID     string
	Amount        decimal.Decimal
	Side          EntrySide
}

// Validate checks the shape of a single entry.
func (e *Entry) Validate() error {
	if e.AccountID == "" || !e.Side.IsValid() {
		return ErrInvalidEntry
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// SumEntries totals the debit and credit sides of a set of entries.
func SumEntries(entries []Entry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Side {
		case EntryDebit:
			debit = debit.Add(e.Amount)
		case EntryCredit:
			credit = credit.Add(e.Amount)
		}
	}
	return debit, credit
}

// ValidateEntries enforces the double-entry rules on a proposed entry set:
// at least two entries, every entry well formed, and the two sides equal.
func ValidateEntries(entries []Entry) error {
	if len(entries) < 2 {
		return ErrTooFewEntries
	}
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}
	debit, credit := SumEntries(entries)
	if !debit.Equal(credit) {
		return ErrUnbalancedEntries
	}
	return nil
}
