package kv_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/kv"
	"budgetbook/internal/kv/memory"
)

type recorder struct {
	warnings []kv.Warning
	keys     []string
}

func (r *recorder) Warn(w kv.Warning, key string, _ error) {
	r.warnings = append(r.warnings, w)
	r.keys = append(r.keys, key)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStore(m kv.Medium, rec *recorder) *kv.Store {
	return kv.New(m, kv.WithNotifier(rec), kv.WithLogger(quietLogger()))
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestGetFallsBackToDefaultWhenAbsent(t *testing.T) {
	rec := &recorder{}
	s := newStore(memory.New(0), rec)

	got := kv.Get(s, "items", []item{{ID: "d"}})
	assert.Equal(t, []item{{ID: "d"}}, got)
	assert.Empty(t, rec.warnings)
}

func TestCorruptedKeyIsIsolated(t *testing.T) {
	m := memory.NewFromSeed(0, map[string]string{
		"items":    `[{"id":"a"`,
		"theme":    `"dark"`,
		"language": `{not json`,
		"events":   `[{"id":"e1","name":"Trip"}]`,
	})
	rec := &recorder{}
	s := newStore(m, rec)

	assert.Equal(t, []item(nil), kv.Get[[]item](s, "items", nil))
	assert.Equal(t, "dark", kv.Get(s, "theme", "light"))
	assert.Equal(t, "en", kv.Get(s, "language", "en"))
	assert.Equal(t, []item{{ID: "e1", Name: "Trip"}}, kv.Get[[]item](s, "events", nil))

	// Two corrupted keys, one warning.
	assert.Equal(t, []kv.Warning{kv.WarnCorrupted}, rec.warnings)
	assert.Equal(t, []string{"items"}, rec.keys)
}

func TestLastWriteWinsAcrossReload(t *testing.T) {
	m := memory.New(0)
	s := newStore(m, &recorder{})

	require.NoError(t, kv.Set(s, "items", []item{{ID: "1"}}))
	require.NoError(t, kv.Set(s, "items", []item{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, kv.Set(s, "items", []item{{ID: "3"}}))

	reloaded := newStore(m, &recorder{})
	assert.Equal(t, []item{{ID: "3"}}, kv.Get[[]item](reloaded, "items", nil))
}

func TestProbeLeavesNoSentinel(t *testing.T) {
	m := memory.New(0)
	s := newStore(m, &recorder{})
	require.True(t, s.Available())
	assert.Empty(t, m.Keys())
}

func TestUnavailableStoreWarnsOnceAndRunsInMemory(t *testing.T) {
	m := memory.New(0)
	m.SetDisabled(true)
	rec := &recorder{}
	s := newStore(m, rec)

	assert.False(t, s.Available())
	assert.Equal(t, "light", kv.Get(s, "theme", "light"))

	err := kv.Set(s, "theme", "dark")
	require.Error(t, err)
	assert.True(t, errors.Is(err, kv.ErrUnavailable))
	_ = kv.Set(s, "language", "it")

	assert.Equal(t, []kv.Warning{kv.WarnUnavailable}, rec.warnings)

	// A cell keeps working in memory.
	c := kv.NewCell(s, "theme", "light")
	_ = c.Set("dark")
	assert.Equal(t, "dark", c.Get())
}

func TestNilMediumIsUnavailable(t *testing.T) {
	rec := &recorder{}
	s := newStore(nil, rec)
	assert.False(t, s.Available())
	assert.Equal(t, 7, kv.Get(s, "n", 7))
	assert.Equal(t, []kv.Warning{kv.WarnUnavailable}, rec.warnings)
}

func TestWriteFailureWarnsOnce(t *testing.T) {
	m := memory.New(64)
	rec := &recorder{}
	s := newStore(m, rec)

	big := make([]item, 20)
	err := kv.Set(s, "items", big)
	require.Error(t, err)

	var se *kv.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "items", se.Key)
	assert.True(t, errors.Is(err, kv.ErrQuotaExceeded))

	require.Error(t, kv.Set(s, "more", big))
	assert.Equal(t, []kv.Warning{kv.WarnWriteFailed}, rec.warnings)

	// Small writes still go through.
	require.NoError(t, kv.Set(s, "theme", "dark"))
}

func TestCellReadOnInitAndWriteOnChange(t *testing.T) {
	m := memory.NewFromSeed(0, map[string]string{"count": "41"})
	s := newStore(m, &recorder{})

	c := kv.NewCell(s, "count", 0)
	assert.Equal(t, 41, c.Get())

	require.NoError(t, c.Update(func(n int) int { return n + 1 }))
	assert.Equal(t, 42, c.Get())

	raw, ok, err := m.GetItem("count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42", raw)
}

func TestCellKeepsValueWhenWriteFails(t *testing.T) {
	m := memory.New(40)
	s := newStore(m, &recorder{})

	c := kv.NewCell(s, "note", "")
	err := c.Set("this string is far too long for the quota")
	require.Error(t, err)
	assert.Equal(t, "this string is far too long for the quota", c.Get())
}
