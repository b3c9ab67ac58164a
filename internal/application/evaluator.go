package application

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/load-velocity-cli/internal/domain"
	"github.com/bnema/load-velocity-cli/internal/ports"
)

// MalformedPolicy is the host's choice of what to do with a record the source
// could not parse. The engine itself never sees malformed records.
type MalformedPolicy string

const (
	MalformedAbort MalformedPolicy = "abort"
	MalformedSkip  MalformedPolicy = "skip"
)

func ParseMalformedPolicy(raw string) (MalformedPolicy, error) {
	switch MalformedPolicy(raw) {
	case MalformedAbort, MalformedSkip:
		return MalformedPolicy(raw), nil
	default:
		return "", fmt.Errorf("unknown malformed-record policy %q (want %q or %q)", raw, MalformedAbort, MalformedSkip)
	}
}

// Evaluator applies the velocity limits to a stream of load attempts,
// owning one ledger per customer. Ledger state lives for a single run; build
// a fresh Evaluator per run, never share one.
type Evaluator struct {
	ledgers map[domain.CustomerID]*domain.CustomerLedger
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		ledgers: make(map[domain.CustomerID]*domain.CustomerLedger),
	}
}

func (e *Evaluator) ledger(id domain.CustomerID) *domain.CustomerLedger {
	ledger, ok := e.ledgers[id]
	if !ok {
		ledger = domain.NewCustomerLedger()
		e.ledgers[id] = ledger
	}
	return ledger
}

// Evaluate decides one attempt. It returns ok=false for a same-customer
// duplicate id, meaning no decision must be emitted; in that case no ledger
// state changes either. Attempts are applied exactly as delivered: the caller
// owns ordering, and an out-of-order (earlier-dated) attempt is evaluated
// against the counters as they currently stand.
func (e *Evaluator) Evaluate(attempt domain.LoadAttempt) (domain.Decision, bool) {
	ledger := e.ledger(attempt.CustomerID)

	if ledger.Seen(attempt.ID) {
		return domain.Decision{}, false
	}
	ledger.MarkSeen(attempt.ID)

	ledger.RollOver(attempt.Time)

	decision := domain.Decision{
		ID:         attempt.ID,
		CustomerID: attempt.CustomerID,
		Accepted:   domain.PassesAllLimits(attempt.Amount, ledger.LoadedToday, ledger.LoadedThisWeek, ledger.AttemptsToday),
	}

	if decision.Accepted {
		ledger.Apply(attempt.Amount, attempt.Time)
	}

	return decision, true
}

// Run folds the source into the sink one attempt at a time, emitting
// decisions in evaluation order. Malformed records are skipped or abort the
// run per policy; either way they never reach Evaluate.
func (e *Evaluator) Run(source ports.AttemptSource, sink ports.DecisionSink, policy MalformedPolicy) (Summary, error) {
	summary := newSummary()

	for {
		attempt, err := source.Next()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}
		if err != nil {
			if policy == MalformedSkip && errors.Is(err, ports.ErrMalformedRecord) {
				summary.Malformed++
				continue
			}
			return summary, fmt.Errorf("read attempt: %w", err)
		}

		decision, ok := e.Evaluate(attempt)
		summary.record(attempt.CustomerID, decision, ok)
		if !ok {
			continue
		}

		if err := sink.Write(decision); err != nil {
			return summary, fmt.Errorf("write decision for %s/%s: %w", attempt.CustomerID, attempt.ID, err)
		}
	}
}

// Collect drains a source into memory, applying the malformed-record policy.
// It feeds the sharded run path, which needs the whole sequence up front.
func Collect(source ports.AttemptSource, policy MalformedPolicy) ([]domain.LoadAttempt, int, error) {
	var attempts []domain.LoadAttempt
	malformed := 0

	for {
		attempt, err := source.Next()
		if errors.Is(err, io.EOF) {
			return attempts, malformed, nil
		}
		if err != nil {
			if policy == MalformedSkip && errors.Is(err, ports.ErrMalformedRecord) {
				malformed++
				continue
			}
			return nil, malformed, fmt.Errorf("read attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}
}
