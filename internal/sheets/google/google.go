// Package google mirrors the transaction ledger into a Google Sheet so it can
// be shared or charted elsewhere. The sheet is a one-way copy: every export
// rewrites it from the current snapshot.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"budgetbook/internal/backup"
	"budgetbook/internal/i18n"
	"budgetbook/internal/ledger"
)

// Sink writes transactions to one tab of one spreadsheet.
type Sink struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	locale        string
}

var _ backup.Sink = (*Sink)(nil)

// NewFromEnv creates a Sheets sink using environment variables.
// Required: GOOGLE_SPREADSHEET_ID
// Optional: GOOGLE_SHEET_NAME (default "Transactions")
// Credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewFromEnv(ctx context.Context, locale string) (*Sink, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}
	return Open(ctx, spreadsheetID, os.Getenv("GOOGLE_SHEET_NAME"), locale)
}

// Open creates a sink for an explicit spreadsheet, reading only the
// credentials from the environment. An empty sheetName means
// "Transactions".
func Open(ctx context.Context, spreadsheetID, sheetName, locale string) (*Sink, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	sheetName = strings.TrimSpace(sheetName)
	if sheetName == "" {
		sheetName = "Transactions"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return New(svc, spreadsheetID, sheetName, locale), nil
}

func New(svc *gsheet.Service, spreadsheetID, sheetName, locale string) *Sink {
	return &Sink{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName, locale: locale}
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials, or an OAuth user token when no service account is set.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		b, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return newOAuthSheetsService(ctx)
	}

	slog.DebugContext(ctx, "Creating Google Sheets service", "credentials_size", len(credentialsJSON))

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// newOAuthSheetsService uses the token saved by Login together with the
// OAuth client it was issued for.
func newOAuthSheetsService(ctx context.Context) (*gsheet.Service, error) {
	clientJSON, ok, err := readClientJSON()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("missing credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, GOOGLE_APPLICATION_CREDENTIALS, or GOOGLE_OAUTH_CLIENT_FILE with GOOGLE_OAUTH_TOKEN_FILE)")
	}
	cfg, err := OAuthConfig(clientJSON)
	if err != nil {
		return nil, err
	}
	tokenFile := strings.TrimSpace(os.Getenv("GOOGLE_OAUTH_TOKEN_FILE"))
	if tokenFile == "" {
		tokenFile = "token.json"
	}
	tok, err := LoadToken(tokenFile)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Creating Google Sheets service with OAuth token", "token_file", tokenFile)

	service, err := gsheet.NewService(ctx, goption.WithTokenSource(cfg.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

func (s *Sink) Name() string { return "sheets" }

// Write clears the tab and rewrites header plus one row per transaction.
func (s *Sink) Write(ctx context.Context, doc backup.Document) error {
	if s.svc == nil {
		return errors.New("sheets service not initialized")
	}

	clearRange := fmt.Sprintf("%s!A:F", s.sheetName)
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, clearRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}

	values := Rows(doc, s.locale)
	rng := fmt.Sprintf("%s!A1:F%d", s.sheetName, len(values))
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &gsheet.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}

	slog.InfoContext(ctx, "Sheet updated", "range", rng, "rows", len(values)-1)
	return nil
}

// Rows lays the snapshot out as sheet values, header first, newest
// transaction first. Category names are resolved and localized.
func Rows(doc backup.Document, locale string) [][]any {
	tr := i18n.Translator{Locale: locale}
	events := make(map[string]string, len(doc.Events))
	for _, ev := range doc.Events {
		events[ev.ID] = ev.Name
	}

	out := make([][]any, 0, len(doc.Transactions)+1)
	out = append(out, []any{"Date", "Type", "Category", "Event", "Description", "Amount"})
	for _, t := range ledger.SortByDate(doc.Transactions, true) {
		category := ""
		if t.CategoryID != "" {
			category = tr.CategoryName(ledger.ResolveCategory(doc.Categories, t.CategoryID).Name)
		}
		out = append(out, []any{string(t.Date), string(t.Kind), category, events[t.EventID], t.Description, t.Amount.String()})
	}
	return out
}
