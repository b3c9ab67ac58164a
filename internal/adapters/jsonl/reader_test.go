package jsonl

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/bnema/load-velocity-cli/internal/domain"
	"github.com/bnema/load-velocity-cli/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderParsesRecord(t *testing.T) {
	input := `{"id":"15887","customer_id":"528","load_amount":"$3318.47","time":"2000-01-01T00:00:00Z"}`
	reader := NewReader(strings.NewReader(input))

	attempt, err := reader.Next()
	require.NoError(t, err)

	assert.Equal(t, domain.AttemptID("15887"), attempt.ID)
	assert.Equal(t, domain.CustomerID("528"), attempt.CustomerID)
	assert.True(t, attempt.Amount.Equal(decimal.RequireFromString("3318.47")))
	assert.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), attempt.Time)

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	input := "\n" + `{"id":"1","customer_id":"c","load_amount":"$1.00","time":"2000-01-01T00:00:00Z"}` + "\n\n"
	reader := NewReader(strings.NewReader(input))

	attempt, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.AttemptID("1"), attempt.ID)

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "not json", line: `id=1 customer=2`},
		{name: "missing id", line: `{"customer_id":"c","load_amount":"$1.00","time":"2000-01-01T00:00:00Z"}`},
		{name: "missing customer_id", line: `{"id":"1","load_amount":"$1.00","time":"2000-01-01T00:00:00Z"}`},
		{name: "missing load_amount", line: `{"id":"1","customer_id":"c","time":"2000-01-01T00:00:00Z"}`},
		{name: "missing time", line: `{"id":"1","customer_id":"c","load_amount":"$1.00"}`},
		{name: "unparsable amount", line: `{"id":"1","customer_id":"c","load_amount":"$abc","time":"2000-01-01T00:00:00Z"}`},
		{name: "bare currency symbol", line: `{"id":"1","customer_id":"c","load_amount":"$","time":"2000-01-01T00:00:00Z"}`},
		{name: "negative amount", line: `{"id":"1","customer_id":"c","load_amount":"$-3.50","time":"2000-01-01T00:00:00Z"}`},
		{name: "unparsable time", line: `{"id":"1","customer_id":"c","load_amount":"$1.00","time":"01/01/2000"}`},
		{name: "time with offset instead of Z", line: `{"id":"1","customer_id":"c","load_amount":"$1.00","time":"2000-01-01T00:00:00+02:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tt.line))

			_, err := reader.Next()
			require.Error(t, err)
			assert.ErrorIs(t, err, ports.ErrMalformedRecord)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestReaderContinuesAfterMalformedLine(t *testing.T) {
	input := `{"id":"1","customer_id":"c","load_amount":"broken` + "\n" +
		`{"id":"2","customer_id":"c","load_amount":"$2.00","time":"2000-01-01T00:00:00Z"}`
	reader := NewReader(strings.NewReader(input))

	_, err := reader.Next()
	require.ErrorIs(t, err, ports.ErrMalformedRecord)

	attempt, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.AttemptID("2"), attempt.ID)
}
