package jsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bnema/load-velocity-cli/internal/domain"
	"github.com/bnema/load-velocity-cli/internal/ports"
	"github.com/goccy/go-json"
)

type decisionSchema struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Accepted   bool   `json:"accepted"`
}

// Writer emits one JSON decision record per line. Output is buffered; call
// Flush once the run completes.
type Writer struct {
	w *bufio.Writer
}

var _ ports.DecisionSink = (*Writer)(nil)

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(decision domain.Decision) error {
	encoded, err := json.Marshal(decisionSchema{
		ID:         string(decision.ID),
		CustomerID: string(decision.CustomerID),
		Accepted:   decision.Accepted,
	})
	if err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}

	if _, err := w.w.Write(encoded); err != nil {
		return fmt.Errorf("write decision: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write decision: %w", err)
	}
	return nil
}

func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flush decisions: %w", err)
	}
	return nil
}
