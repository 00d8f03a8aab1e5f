package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/amqp"
	"budgetbook/internal/backup"
	"budgetbook/internal/core"
)

type recordingSink struct {
	docs []backup.Document
	err  error
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Write(_ context.Context, doc backup.Document) error {
	if r.err != nil {
		return r.err
	}
	r.docs = append(r.docs, doc)
	return nil
}

type queue struct {
	msgs []*amqp.SnapshotMessage
	errs []error
}

func (q *queue) ConsumeSnapshots(ctx context.Context, handler func(context.Context, *amqp.SnapshotMessage) error) error {
	for _, m := range q.msgs {
		q.errs = append(q.errs, handler(ctx, m))
	}
	return context.Canceled
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func snapshot(at time.Time, desc string) *amqp.SnapshotMessage {
	doc := backup.Document{
		Transactions: []core.Transaction{{ID: "t", Kind: core.Income, Amount: core.Cents(1), Description: desc, Date: "2025-01-01"}},
		Categories:   core.DefaultCategories(),
		Budgets:      core.Budgets{},
		Events:       []core.Event{},
	}
	return amqp.NewSnapshotMessage(doc, "phone", at)
}

func TestHandleSnapshotSkipsStale(t *testing.T) {
	sink := &recordingSink{}
	w := NewMirrorWorker(discard(), sink)
	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, w.HandleSnapshot(context.Background(), snapshot(t0.Add(time.Hour), "newer")))
	require.NoError(t, w.HandleSnapshot(context.Background(), snapshot(t0, "older")))
	require.NoError(t, w.HandleSnapshot(context.Background(), snapshot(t0.Add(2*time.Hour), "newest")))

	require.Len(t, sink.docs, 2)
	assert.Equal(t, "newer", sink.docs[0].Transactions[0].Description)
	assert.Equal(t, "newest", sink.docs[1].Transactions[0].Description)
	assert.True(t, w.Latest().Equal(t0.Add(2*time.Hour)))
}

func TestHandleSnapshotFailureKeepsLatest(t *testing.T) {
	sink := &recordingSink{err: errors.New("sheet locked")}
	w := NewMirrorWorker(discard(), sink)

	err := w.HandleSnapshot(context.Background(), snapshot(time.Now(), "x"))
	assert.ErrorContains(t, err, "sheet locked")
	assert.True(t, w.Latest().IsZero())
}

func TestRunTreatsCancelAsCleanStop(t *testing.T) {
	sink := &recordingSink{}
	w := NewMirrorWorker(discard(), sink)
	q := &queue{msgs: []*amqp.SnapshotMessage{snapshot(time.Now(), "a")}}

	assert.NoError(t, w.Run(context.Background(), q))
	assert.Equal(t, []error{nil}, q.errs)
	assert.Len(t, sink.docs, 1)
}
