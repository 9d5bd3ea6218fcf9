package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"claims-analyzer/models"
)

// CSVWriter exports cleaned, classified claims to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write([]string{
		"CLAIM_ID", "CLAIM_DATE", "CUSTOMER_ID", "CLAIM_AMOUNT",
		"PREMIUM_COLLECTED", "PAID_AMOUNT", "CITY", "REJECTION_REMARKS",
		"REJECTION_CLASS",
	}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per claim.
func (c *CSVWriter) Write(claims []*models.Claim) error {
	for _, claim := range claims {
		row := []string{
			claim.ClaimID,
			claim.ClaimDate,
			claim.CustomerID,
			strconv.FormatFloat(claim.ClaimAmount, 'f', 2, 64),
			strconv.FormatFloat(claim.PremiumCollected, 'f', 2, 64),
			strconv.FormatFloat(claim.PaidAmount, 'f', 2, 64),
			claim.City,
			claim.RejectionRemarks,
			string(claim.RejectionClass),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
