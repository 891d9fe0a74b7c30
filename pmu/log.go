package pmu

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewLogger builds the default logr.Logger used by a Driver that is not
// given one explicitly: a zap production logger adapted through zapr.
// Every Driver operation logs through this seam so callers can swap in
// their own sink (test logger, structured file sink, etc.) via
// WithLogger.
func NewLogger() logr.Logger {
	zl, err := zap.NewProduction()
	if err != nil {
		zl = zap.NewNop()
	}
	return zapr.NewLogger(zl)
}

// correlationID returns a unique id attached to the start, completion
// and failure log lines of a single driver operation, so those lines can
// be correlated in log output without passing a context.Context through
// this package's synchronous call chain. The individual sub-steps of a
// sequence do not log.
func correlationID() string {
	return uuid.NewString()
}
