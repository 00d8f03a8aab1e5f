// Package backup reads and writes the portable snapshot of the four user
// collections and fans an export out to its destinations.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"budgetbook/internal/core"
)

// Required top-level fields, in the order they are checked.
var RequiredFields = []string{"transactions", "categories", "budgets", "events"}

// Document is the backup file: exactly the four collections, nothing else.
type Document struct {
	Transactions []core.Transaction `json:"transactions"`
	Categories   []core.Category    `json:"categories"`
	Budgets      core.Budgets       `json:"budgets"`
	Events       []core.Event       `json:"events"`
}

// ErrInvalidFile wraps every decode failure.
var ErrInvalidFile = errors.New("invalid backup file")

// MissingFieldError names the first required field that was absent (or
// null).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%v: missing %q", ErrInvalidFile, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrInvalidFile }

// Decode parses and validates a backup. It never returns a partially filled
// Document: any error means nothing should be applied.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: read: %v", ErrInvalidFile, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	for _, name := range RequiredFields {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return Document{}, &MissingFieldError{Field: name}
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return doc, nil
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// FileName is the download name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("budget-backup-%s.json", t.Format("2006-01-02"))
}
