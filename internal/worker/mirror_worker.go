// Package worker runs the long-lived side of the snapshot queue: it takes the
// newest backup published by any device and replays it onto local sinks.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budgetbook/internal/amqp"
	"budgetbook/internal/backup"
)

// SnapshotConsumer is implemented by *amqp.Client.
type SnapshotConsumer interface {
	ConsumeSnapshots(ctx context.Context, handler func(context.Context, *amqp.SnapshotMessage) error) error
}

// MirrorWorker writes every received snapshot to its sinks.
type MirrorWorker struct {
	sinks  []backup.Sink
	logger *slog.Logger

	mu     sync.Mutex
	latest time.Time
}

func NewMirrorWorker(logger *slog.Logger, sinks ...backup.Sink) *MirrorWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &MirrorWorker{
		sinks:  sinks,
		logger: logger.With("component", "mirror"),
	}
}

// HandleSnapshot processes a single snapshot message. A snapshot older than
// the last one mirrored is acknowledged without writing.
func (w *MirrorWorker) HandleSnapshot(ctx context.Context, msg *amqp.SnapshotMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.latest.IsZero() && msg.Timestamp.Before(w.latest) {
		w.logger.InfoContext(ctx, "Skipping stale snapshot",
			"device", msg.Device,
			"timestamp", msg.Timestamp,
			"latest", w.latest)
		return nil
	}

	if err := backup.ExportAll(ctx, msg.Document, w.sinks...); err != nil {
		return fmt.Errorf("mirror snapshot: %w", err)
	}
	w.latest = msg.Timestamp

	w.logger.InfoContext(ctx, "Mirrored snapshot",
		"device", msg.Device,
		"timestamp", msg.Timestamp,
		"transactions", len(msg.Document.Transactions),
		"sinks", len(w.sinks))
	return nil
}

// Latest is the timestamp of the last mirrored snapshot, zero if none.
func (w *MirrorWorker) Latest() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest
}

// Run consumes until ctx is cancelled. Cancellation is a clean stop.
func (w *MirrorWorker) Run(ctx context.Context, consumer SnapshotConsumer) error {
	w.logger.InfoContext(ctx, "Mirror worker started", "sinks", len(w.sinks))
	err := consumer.ConsumeSnapshots(ctx, w.HandleSnapshot)
	if errors.Is(err, context.Canceled) {
		w.logger.InfoContext(ctx, "Mirror worker stopped")
		return nil
	}
	return err
}
