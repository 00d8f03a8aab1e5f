package kv

import "log/slog"

// Warning is a user-visible storage problem. Each kind is shown at most once
// per Store.
type Warning int

const (
	WarnUnavailable Warning = iota + 1
	WarnCorrupted
	WarnWriteFailed
)

func (w Warning) String() string {
	switch w {
	case WarnUnavailable:
		return "storage_unavailable"
	case WarnCorrupted:
		return "corrupted_data"
	case WarnWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// Notifier surfaces warnings to the user. key is empty for store-wide
// problems.
type Notifier interface {
	Warn(w Warning, key string, err error)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(w Warning, key string, err error)

func (f NotifierFunc) Warn(w Warning, key string, err error) { f(w, key, err) }

// LogNotifier writes warnings to a logger. It is the default when nothing
// else is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Warn(w Warning, key string, err error) {
	l := n.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Warn("Storage warning", "warning", w.String(), "key", key, "error", err)
}
