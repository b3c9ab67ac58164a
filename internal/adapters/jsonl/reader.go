package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/load-velocity-cli/internal/domain"
	"github.com/bnema/load-velocity-cli/internal/ports"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02T15:04:05Z"

// attemptSchema mirrors one input line. load_amount arrives as a currency
// string ("$3318.47"); time as an ISO-8601 UTC timestamp.
type attemptSchema struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	LoadAmount string `json:"load_amount"`
	Time       string `json:"time"`
}

// Reader decodes newline-delimited JSON attempt records. Each line is parsed
// with explicit field extraction and type coercion; a line that fails any of
// it surfaces as a ports.ErrMalformedRecord wrapped with the line number, and
// the reader stays usable for the following lines.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

var _ ports.AttemptSource = (*Reader)(nil)

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next attempt, skipping blank lines. io.EOF ends the stream.
func (r *Reader) Next() (domain.LoadAttempt, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		attempt, err := parseAttempt(text)
		if err != nil {
			return domain.LoadAttempt{}, fmt.Errorf("line %d: %w: %w", r.line, ports.ErrMalformedRecord, err)
		}
		return attempt, nil
	}

	if err := r.scanner.Err(); err != nil {
		return domain.LoadAttempt{}, fmt.Errorf("scan input: %w", err)
	}
	return domain.LoadAttempt{}, io.EOF
}

func parseAttempt(text string) (domain.LoadAttempt, error) {
	var record attemptSchema
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return domain.LoadAttempt{}, fmt.Errorf("decode record: %w", err)
	}

	if record.ID == "" {
		return domain.LoadAttempt{}, fmt.Errorf("missing field %q", "id")
	}
	if record.CustomerID == "" {
		return domain.LoadAttempt{}, fmt.Errorf("missing field %q", "customer_id")
	}
	if record.LoadAmount == "" {
		return domain.LoadAttempt{}, fmt.Errorf("missing field %q", "load_amount")
	}
	if record.Time == "" {
		return domain.LoadAttempt{}, fmt.Errorf("missing field %q", "time")
	}

	amount, err := parseAmount(record.LoadAmount)
	if err != nil {
		return domain.LoadAttempt{}, err
	}

	at, err := time.Parse(timeLayout, record.Time)
	if err != nil {
		return domain.LoadAttempt{}, fmt.Errorf("parse time %q: %w", record.Time, err)
	}

	return domain.LoadAttempt{
		ID:         domain.AttemptID(record.ID),
		CustomerID: domain.CustomerID(record.CustomerID),
		Amount:     amount,
		Time:       at,
	}, nil
}

// parseAmount strips the leading currency symbol and parses the remainder as
// a non-negative decimal.
func parseAmount(raw string) (decimal.Decimal, error) {
	_, size := utf8.DecodeRuneInString(raw)
	body := raw[size:]
	if body == "" {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: no digits after currency symbol", raw)
	}

	amount, err := decimal.NewFromString(body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: negative load amount", raw)
	}

	return amount, nil
}
