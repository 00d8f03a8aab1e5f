// Package kv mirrors typed application state into a synchronous,
// string-keyed storage medium.
//
// A Store wraps one Medium. It probes the medium once, decodes each key
// independently (falling back to a caller default on any failure) and
// reports user-facing problems through a Notifier, at most once per kind of
// problem for the lifetime of the Store.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// probeKey is written and removed once to learn whether the medium works.
const probeKey = "__storage_test__"

// Medium is the raw storage facility: synchronous, string keys and values,
// possibly capacity limited. Browser local storage is the model.
type Medium interface {
	// GetItem returns the stored value and whether the key exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// ErrQuotaExceeded is returned by mediums that refuse a write for capacity.
var ErrQuotaExceeded = errors.New("kv: quota exceeded")

// ErrUnavailable is what Set reports once the probe has failed.
var ErrUnavailable = errors.New("kv: storage unavailable")

// StorageError describes a failed read or write of one key.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("kv %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store is the adapter. The zero value is not usable; call New.
type Store struct {
	medium Medium
	notify Notifier
	logger *slog.Logger

	probeOnce sync.Once
	available bool

	mu     sync.Mutex
	warned map[Warning]bool
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier routes user-visible warnings somewhere other than the log.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notify = n }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store over m. A nil medium yields a store that is
// permanently unavailable, which is how "no storage at all" is modelled.
func New(m Medium, opts ...Option) *Store {
	s := &Store{
		medium: m,
		warned: make(map[Warning]bool),
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.notify == nil {
		s.notify = LogNotifier{Logger: s.logger}
	}
	return s
}

// Available reports whether the medium passed its probe. The probe runs on
// first call only; the answer is cached for the life of the Store.
func (s *Store) Available() bool {
	s.probeOnce.Do(func() {
		s.available = s.probe()
		if !s.available {
			s.warn(WarnUnavailable, "", ErrUnavailable)
		}
	})
	return s.available
}

func (s *Store) probe() bool {
	if s.medium == nil {
		return false
	}
	if err := s.medium.SetItem(probeKey, probeKey); err != nil {
		s.logger.Warn("Storage probe write failed", "error", err)
		return false
	}
	if err := s.medium.RemoveItem(probeKey); err != nil {
		s.logger.Warn("Storage probe delete failed", "error", err)
		return false
	}
	return true
}

// Raw returns the stored string for key. ok is false when the key is absent
// or the store is unavailable.
func (s *Store) Raw(key string) (string, bool) {
	if !s.Available() {
		return "", false
	}
	v, ok, err := s.medium.GetItem(key)
	if err != nil {
		s.logger.Warn("Storage read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// Remove deletes key from the medium. Failures are logged only.
func (s *Store) Remove(key string) {
	if !s.Available() {
		return
	}
	if err := s.medium.RemoveItem(key); err != nil {
		s.logger.Warn("Storage delete failed", "key", key, "error", err)
	}
}

// Get decodes the value stored under key, or returns def when the key is
// absent, the store is unavailable, or the stored text does not decode.
// A corrupted key never affects other keys.
func Get[T any](s *Store, key string, def T) T {
	raw, ok := s.Raw(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("Corrupted stored value, using default", "key", key, "error", err)
		s.warn(WarnCorrupted, key, err)
		return def
	}
	return v
}

// Set encodes v and writes it under key. An unavailable store is skipped
// silently (the user was warned by the probe); other failures are warned
// about once and returned as *StorageError.
func Set[T any](s *Store, key string, v T) error {
	if !s.Available() {
		return &StorageError{Op: "set", Key: key, Err: ErrUnavailable}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.medium.SetItem(key, string(data)); err != nil {
		s.logger.Error("Storage write failed", "key", key, "bytes", len(data), "error", err)
		s.warn(WarnWriteFailed, key, err)
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *Store) warn(w Warning, key string, err error) {
	s.mu.Lock()
	if s.warned[w] {
		s.mu.Unlock()
		return
	}
	s.warned[w] = true
	s.mu.Unlock()
	s.notify.Warn(w, key, err)
}
