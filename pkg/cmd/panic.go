package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

// LogPanic reports whether recovered holds a panic value and logs it with the stack of the current goroutine.
func LogPanic(ctx context.Context, logger log.Logger, recovered any) bool {
	if recovered == nil {
		return false
	}

	logger.With(log.Fields{
		"panic":      fmt.Sprintf("%v", recovered),
		"stacktrace": string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
