package domain

import (
	"errors"
	"fmt"
)

// Error classes. Every error this package produces wraps exactly one of
// these, so callers can classify with errors.Is without enumerating the
// specific failures.
var (
	// ErrValidation marks malformed or unbalanced caller input. No side
	// effects have occurred when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a reference to a business or account that does not
	// exist. Reported like a validation failure, but kept separate because it
	// points at a referential-integrity problem upstream.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a store failure. The enclosing unit of work has
	// been rolled back; the operation can be retried.
	ErrPersistence = errors.New("persistence failure")
)

// Posting errors
var (
	ErrTooFewEntries     = fmt.Errorf("%w: a transaction needs at least two entries", ErrValidation)
	ErrUnbalancedTotals  = fmt.Errorf("%w: debit and credit totals must match", ErrValidation)
	ErrUnbalancedEntries = fmt.Errorf("%w: entry debits and credits must balance", ErrValidation)
	ErrInvalidEntry      = fmt.Errorf("%w: entry is missing account, amount or side", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: date is required", ErrValidation)
)

// Lookup errors
var (
	ErrBusinessNotFound    = fmt.Errorf("%w: business", ErrNotFound)
	ErrAccountNotFound     = fmt.Errorf("%w: account", ErrNotFound)
	ErrAccountTypeNotFound = fmt.Errorf("%w: account type", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)
)

// Account and business management errors
var (
	ErrDuplicateAccountName = fmt.Errorf("%w: account name already used in this business", ErrValidation)
	ErrInvalidAccountName   = fmt.Errorf("%w: invalid account name", ErrValidation)
	ErrInvalidPlan          = fmt.Errorf("%w: plan must be free or premium", ErrValidation)
	ErrInvalidBusinessName  = fmt.Errorf("%w: business name is required", ErrValidation)
)
