package intake

import (
	"context"

	"encore.dev/rlog"
)

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute operations synchronously.
// Production code uses safeAsync (goroutine) by default.
var runAsync = safeAsync

// safeAsync runs a function in a goroutine with structured error logging.
// Background tasks carry no deadline: the pipeline waits on several outbound
// calls and the task is abandoned on restart anyway, its receipt stuck in
// processing until operator cleanup.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
