package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// Sink is one export destination.
type Sink interface {
	Name() string
	Write(ctx context.Context, doc Document) error
}

// FileSink writes the JSON backup into Dir under FileName(now).
type FileSink struct {
	Dir string
	Now func() time.Time

	// Path is set after a successful Write.
	Path string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir, Now: time.Now}
}

func (f *FileSink) Name() string { return "file" }

func (f *FileSink) Write(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(f.Dir, FileName(now()))

	tmp, err := os.CreateTemp(f.Dir, ".budget-backup-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename backup: %w", err)
	}
	f.Path = path
	return nil
}

// ExportAll hands the same snapshot to every sink concurrently and returns
// the first error. Sinks must treat doc as read-only.
func ExportAll(ctx context.Context, doc Document, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range sinks {
		s := s
		g.Go(func() error {
			start := time.Now()
			if err := s.Write(ctx, doc); err != nil {
				slog.ErrorContext(ctx, "Export failed", "sink", s.Name(), "error", err)
				return fmt.Errorf("%s: %w", s.Name(), err)
			}
			slog.InfoContext(ctx, "Export written",
				"sink", s.Name(),
				"transactions", len(doc.Transactions),
				"duration_ms", time.Since(start).Milliseconds())
			return nil
		})
	}
	return g.Wait()
}
