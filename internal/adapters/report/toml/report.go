package toml

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bnema/load-velocity-cli/internal/application"
	toml "github.com/pelletier/go-toml/v2"
)

const currentReportSchemaVersion = 1

type reportFileSchema struct {
	Version     int                     `toml:"version"`
	GeneratedAt string                  `toml:"generated_at"`
	Totals      totalsSchema            `toml:"totals"`
	Customers   []customerSummarySchema `toml:"customers"`
}

type totalsSchema struct {
	Attempts   int `toml:"attempts"`
	Decisions  int `toml:"decisions"`
	Accepted   int `toml:"accepted"`
	Rejected   int `toml:"rejected"`
	Duplicates int `toml:"duplicates"`
	Malformed  int `toml:"malformed"`
}

type customerSummarySchema struct {
	CustomerID string `toml:"customer_id"`
	Accepted   int    `toml:"accepted"`
	Rejected   int    `toml:"rejected"`
}

// Write persists a run report. Customers are sorted by id so repeated runs
// over the same input produce identical files.
func Write(path string, summary application.Summary, generatedAt time.Time) error {
	file := reportFileSchema{
		Version:     currentReportSchemaVersion,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Totals: totalsSchema{
			Attempts:   summary.Attempts,
			Decisions:  summary.Decisions(),
			Accepted:   summary.Accepted,
			Rejected:   summary.Rejected,
			Duplicates: summary.Duplicates,
			Malformed:  summary.Malformed,
		},
		Customers: make([]customerSummarySchema, 0, len(summary.Customers)),
	}

	for customerID, tally := range summary.Customers {
		file.Customers = append(file.Customers, customerSummarySchema{
			CustomerID: string(customerID),
			Accepted:   tally.Accepted,
			Rejected:   tally.Rejected,
		})
	}
	sort.Slice(file.Customers, func(i, j int) bool {
		return file.Customers[i].CustomerID < file.Customers[j].CustomerID
	})

	return writeTOMLFile(path, file)
}

func writeTOMLFile(path string, file reportFileSchema) error {
	encoded, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}
