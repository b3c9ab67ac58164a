package ports

import "github.com/bnema/load-velocity-cli/internal/domain"

// AttemptSource supplies attempt records one at a time, in the order they
// should be applied. Next returns io.EOF once the stream is exhausted; any
// other error is a data-format problem in the underlying source.
type AttemptSource interface {
	Next() (domain.LoadAttempt, error)
}

// DecisionSink consumes decisions in the order they were evaluated.
type DecisionSink interface {
	Write(decision domain.Decision) error
}
