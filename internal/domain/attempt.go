package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttemptID string

type CustomerID string

// LoadAttempt is a single requested funding transaction for a customer.
// Amount is the already-parsed load amount; adapters own the currency-string
// coercion, so the engine never sees raw text.
type LoadAttempt struct {
	ID         AttemptID
	CustomerID CustomerID
	Amount     decimal.Decimal
	Time       time.Time
}

// Decision is the outcome of evaluating one attempt. At most one Decision is
// ever produced per (CustomerID, ID) pair; duplicates produce none at all.
type Decision struct {
	ID         AttemptID
	CustomerID CustomerID
	Accepted   bool
}
