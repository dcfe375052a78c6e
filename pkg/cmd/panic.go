package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/profile-client/pkg/log"
)

// LogPanic logs a value returned by recover, nil means there was no panic.
// recover must be called by the deferred function itself, so callers pass its result here.
func LogPanic(ctx context.Context, logger log.Logger, msg any) (panicCaught bool) {
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
