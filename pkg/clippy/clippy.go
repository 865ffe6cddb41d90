// Package clippy pushes Unicode text onto the Windows clipboard.
//
//	res := clippy.PushStringToClipboard(&text)
//	if !res.OK() {
//	    log.Printf("copy failed: %v", res.Err())
//	}
//
// Every call is a single attempt that reports its outcome as a Result. Use
// PushWithRetry when a busy clipboard or transient memory pressure should be
// retried.
package clippy

import (
	"github.com/kolibri/clippy/internal/clipboard"
)

type (
	// Result is the outcome of one push
	Result = clipboard.Result
	// ResultCode tells which step of a push failed
	ResultCode = clipboard.ResultCode
	// PushError is the error form of a failed Result
	PushError = clipboard.PushError
)

const (
	Success                 = clipboard.Success
	ErrorOpenClipboard      = clipboard.ErrorOpenClipboard
	ErrorAlloc              = clipboard.ErrorAlloc
	ErrorLock               = clipboard.ErrorLock
	ErrorSetClipboardData   = clipboard.ErrorSetClipboardData
	ErrorOutOfMemory        = clipboard.ErrorOutOfMemory
	ErrorArgumentOutOfRange = clipboard.ErrorArgumentOutOfRange
	ErrorGenericException   = clipboard.ErrorGenericException
	ErrorInvalidArgs        = clipboard.ErrorInvalidArgs
	ErrorGetLastError       = clipboard.ErrorGetLastError
)

var pushString = clipboard.PushString

// PushStringToClipboard replaces the clipboard content with message. A nil
// message yields ErrorInvalidArgs and leaves the clipboard alone.
func PushStringToClipboard(message *string) Result {
	return pushString(message)
}

// Push copies text to the clipboard and returns a *PushError on failure
func Push(text string) error {
	return pushString(&text).Err()
}
