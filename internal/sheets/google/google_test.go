package google

import (
	"context"
	"os"
	"testing"

	"budgetbook/internal/backup"
	"budgetbook/internal/core"
)

func TestNewFromEnv_MissingSpreadsheetID(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")

	_, err := NewFromEnv(context.Background(), "en")
	if err == nil {
		t.Fatal("expected error for missing GOOGLE_SPREADSHEET_ID")
	}
	if err.Error() != "missing GOOGLE_SPREADSHEET_ID" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SPREADSHEET_ID", "test-id")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")
	t.Setenv("GOOGLE_OAUTH_CLIENT_JSON", "")
	t.Setenv("GOOGLE_OAUTH_CLIENT_FILE", "")
	os.Unsetenv("GOOGLE_APPLICATION_CREDENTIALS")

	if _, err := NewFromEnv(context.Background(), "en"); err == nil {
		t.Fatal("expected error without credentials")
	}
}

func TestOpen_MissingSpreadsheetID(t *testing.T) {
	if _, err := Open(context.Background(), "  ", "Sheet", "en"); err == nil {
		t.Fatal("expected error for blank spreadsheet ID")
	}
}

func TestSink_WriteWithoutService(t *testing.T) {
	s := New(nil, "id", "Transactions", "en")
	if err := s.Write(context.Background(), backup.Document{}); err == nil {
		t.Fatal("expected error with nil service")
	}
}

func TestRows(t *testing.T) {
	doc := backup.Document{
		Transactions: []core.Transaction{
			{ID: "1", Kind: core.Expense, Amount: core.Cents(1999), Description: "Groceries", Date: "2025-01-02", CategoryID: "food"},
			{ID: "2", Kind: core.Income, Amount: core.Cents(100000), Description: "Pay", Date: "2025-01-05"},
			{ID: "3", Kind: core.Expense, Amount: core.Cents(500), Description: "Souvenir", Date: "2025-01-03", CategoryID: "nope", EventID: "e1"},
		},
		Categories: core.DefaultCategories(),
		Events:     []core.Event{{ID: "e1", Name: "Rome", Budget: core.Cents(50000)}},
	}

	rows := Rows(doc, "it")
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[1][4] != "Pay" || rows[1][2] != "" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][2] != "Altro" || rows[2][3] != "Rome" {
		t.Errorf("expected fallback category and event name, got %v", rows[2])
	}
	if rows[3][2] != "Cibo" || rows[3][5] != "19.99" {
		t.Errorf("unexpected last row: %v", rows[3])
	}
}
