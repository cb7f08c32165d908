package global

import (
	"context"

	"github.com/go-logr/logr"
)

type ContextKey uint

const (
	LogKey ContextKey = iota
	CancelKey
	VersionKey
)

func Version(ctx context.Context) string {
	return ctx.Value(VersionKey).(string)
}

// Logger returns the logger carried by the command context.
func Logger(ctx context.Context) logr.Logger {
	if log, ok := ctx.Value(LogKey).(logr.Logger); ok {
		return log
	}
	return logr.Discard()
}
