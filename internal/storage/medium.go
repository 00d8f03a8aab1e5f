// Package storage provides a durable kv.Medium backed by SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budgetbook/internal/kv"

	_ "modernc.org/sqlite"
)

// DefaultQuota mirrors the usual browser local-storage allowance.
const DefaultQuota = 5 * 1024 * 1024

// opTimeout bounds each statement; the medium's interface is synchronous.
const opTimeout = 5 * time.Second

// SQLiteMedium keeps every key in one table. Quota counts
// length(key)+length(value) across all rows; zero means unlimited.
type SQLiteMedium struct {
	db    *sql.DB
	quota int
}

var _ kv.Medium = (*SQLiteMedium)(nil)

func NewSQLiteMedium(dbPath string, quota int) (*SQLiteMedium, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer; sqlite serializes anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Debug("SQLite medium ready", "path", dbPath, "quota_bytes", quota)

	return &SQLiteMedium{db: db, quota: quota}, nil
}

func (m *SQLiteMedium) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *SQLiteMedium) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var value string
	err := m.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (m *SQLiteMedium) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if m.quota > 0 {
		var used int64
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(length(key) + length(value)), 0) FROM kv WHERE key <> ?`, key).Scan(&used)
		if err != nil {
			return fmt.Errorf("measure usage: %w", err)
		}
		if used+int64(len(key)+len(value)) > int64(m.quota) {
			return kv.ErrQuotaExceeded
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (m *SQLiteMedium) RemoveItem(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Keys lists stored keys, oldest write first.
func (m *SQLiteMedium) Keys(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY updated_at, key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}
