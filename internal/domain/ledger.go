package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerLedger accumulates the velocity counters for one customer across a
// run. It is created lazily on the customer's first attempt and mutated only
// by the evaluation engine: counters change on acceptance, the seen-id set on
// every non-duplicate attempt.
type CustomerLedger struct {
	seenIDs map[AttemptID]struct{}

	LoadedToday    decimal.Decimal
	LoadedThisWeek decimal.Decimal
	AttemptsToday  int

	// LastTransactionTime is the timestamp of the most recent accepted
	// attempt. Zero until the first acceptance; rollover logic keys off it,
	// never off the wall clock.
	LastTransactionTime time.Time
}

func NewCustomerLedger() *CustomerLedger {
	return &CustomerLedger{
		seenIDs:        make(map[AttemptID]struct{}),
		LoadedToday:    decimal.Zero,
		LoadedThisWeek: decimal.Zero,
	}
}

// Seen reports whether an attempt id was already processed for this customer.
func (l *CustomerLedger) Seen(id AttemptID) bool {
	_, ok := l.seenIDs[id]
	return ok
}

// MarkSeen records an attempt id regardless of its eventual outcome, so later
// duplicates of a rejected attempt are still suppressed.
func (l *CustomerLedger) MarkSeen(id AttemptID) {
	l.seenIDs[id] = struct{}{}
}

// HasAccepted reports whether at least one attempt has been accepted.
func (l *CustomerLedger) HasAccepted() bool {
	return !l.LastTransactionTime.IsZero()
}

// RollOver zeroes whichever counters have fallen out of their calendar window
// between the last accepted attempt and at. The two checks are independent: a
// week crossing resets the weekly total, a day crossing resets the daily total
// and count. No-op before the first acceptance.
func (l *CustomerLedger) RollOver(at time.Time) {
	if !l.HasAccepted() {
		return
	}

	if CrossedWeekBoundary(l.LastTransactionTime, at) {
		l.LoadedThisWeek = decimal.Zero
	}

	if CrossedDayBoundary(l.LastTransactionTime, at) {
		l.LoadedToday = decimal.Zero
		l.AttemptsToday = 0
	}
}

// Apply records an accepted load against the counters.
func (l *CustomerLedger) Apply(amount decimal.Decimal, at time.Time) {
	l.LoadedToday = l.LoadedToday.Add(amount)
	l.LoadedThisWeek = l.LoadedThisWeek.Add(amount)
	l.AttemptsToday++
	l.LastTransactionTime = at
}
