package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"claims-analyzer/models"
)

func TestCSVWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleaned_claims.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	claims := []*models.Claim{
		{ClaimID: "CLM1", ClaimDate: "2025-04-01", CustomerID: "CUST1",
			ClaimAmount: 100, PremiumCollected: 50, PaidAmount: 80,
			City: "PUNE", RejectionRemarks: "", RejectionClass: models.NoRemark},
		{ClaimID: "CLM2", CustomerID: "CUST2", City: "RANCHI",
			RejectionRemarks: "Fake_document reason", RejectionClass: models.FakeDocument},
	}

	if err := w.Write(claims); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "CLAIM_ID" || rows[0][8] != "REJECTION_CLASS" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "CLM1" || rows[1][8] != string(models.NoRemark) {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][6] != "RANCHI" || rows[2][8] != string(models.FakeDocument) {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}
