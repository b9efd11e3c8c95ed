package domain

import "github.com/shopspring/decimal"

// EntrySums holds the per-side totals of an account's entries.
type EntrySums struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// JournalEntry is one transaction line as it appears in the general journal,
// with the account name joined in for display.
type JournalEntry struct {
	AccountID   string
	AccountName string
	Amount      decimal.Decimal
	Side        EntrySide
}

// JournalTransaction is one transaction in the general journal listing. The
// subtotals are re-derived from Entries; they must match the header's cached
// Debit/Credit, and a mismatch indicates corrupted data.
type JournalTransaction struct {
	Transaction
	Entries        []JournalEntry
	DebitSubtotal  decimal.Decimal
	CreditSubtotal decimal.Decimal
}

// Subtotals sums the journal entries by side.
func (jt *JournalTransaction) Subtotals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range jt.Entries {
		switch e.Side {
		case EntryDebit:
			debit = debit.Add(e.Amount)
		case EntryCredit:
			credit = credit.Add(e.Amount)
		}
	}
	return debit, credit
}
