package clippy

import (
	"context"
	"time"

	"github.com/kolibri/clippy/internal/logger"
)

// RetryPolicy bounds PushWithRetry. Attempts below 1 count as 1.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Transient reports whether a failed push may succeed when tried again: the
// clipboard was held by another window, or memory was short.
func Transient(code ResultCode) bool {
	switch code {
	case ErrorOpenClipboard, ErrorAlloc, ErrorOutOfMemory:
		return true
	default:
		return false
	}
}

// PushWithRetry pushes text, retrying transient failures up to
// policy.Attempts times in total. It returns the last Result; if ctx ends
// while waiting, the last failed Result is returned unchanged.
func PushWithRetry(ctx context.Context, text string, policy RetryPolicy) Result {
	attempts := max(policy.Attempts, 1)

	var res Result
	for i := 1; ; i++ {
		res = pushString(&text)
		if res.OK() || !Transient(res.Code) || i >= attempts {
			return res
		}
		logger.Debugf("clippy: attempt %d/%d failed with %s (%d), retrying in %s",
			i, attempts, res.Code, res.LastError, policy.Delay)

		timer := time.NewTimer(policy.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return res
		case <-timer.C:
		}
	}
}
