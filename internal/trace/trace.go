// Package trace tags each command invocation with an operation id and logs
// its outcome and duration.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

// ContextKey type for context keys
type ContextKey string

const (
	// OperationIDKey is the context key for the operation id
	OperationIDKey ContextKey = "operation_id"
)

// GenerateOperationID creates a unique id for one invocation.
func GenerateOperationID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("op_%d", time.Now().UnixNano())
	}
	return "op_" + hex.EncodeToString(bytes)
}

// WithOperationID returns a context carrying a fresh operation id.
func WithOperationID(ctx context.Context) (context.Context, string) {
	id := GenerateOperationID()
	return context.WithValue(ctx, OperationIDKey, id), id
}

// GetOperationID extracts the operation id from context
func GetOperationID(ctx context.Context) string {
	if id, ok := ctx.Value(OperationIDKey).(string); ok {
		return id
	}
	return ""
}

// Run executes fn under a new operation id. Success is logged at debug level
// so interactive use stays quiet; failures are logged as warnings.
func Run(ctx context.Context, logger *slog.Logger, command string, fn func(context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, id := WithOperationID(ctx)
	logger = logger.With("operation_id", id, "command", command)

	start := time.Now()
	logger.DebugContext(ctx, "Command started")

	err := fn(ctx)

	duration := time.Since(start)
	if err != nil {
		logger.WarnContext(ctx, "Command failed",
			"error", err,
			"duration_ms", duration.Milliseconds())
		return err
	}
	logger.DebugContext(ctx, "Command completed",
		"duration_ms", duration.Milliseconds(),
		"duration_human", duration.String())
	return nil
}
