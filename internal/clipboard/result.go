package clipboard

import (
	"fmt"
	"syscall"
)

// ResultCode identifies where a push succeeded or failed. The numeric values
// are stable and may be used as process exit codes.
type ResultCode int

const (
	Success ResultCode = iota
	ErrorOpenClipboard
	ErrorAlloc
	ErrorLock
	ErrorSetClipboardData
	ErrorOutOfMemory
	ErrorArgumentOutOfRange
	ErrorGenericException
	ErrorInvalidArgs
	ErrorGetLastError
)

func (c ResultCode) String() string {
	switch c {
	case Success:
		return "Success"
	case ErrorOpenClipboard:
		return "ErrorOpenClipboard"
	case ErrorAlloc:
		return "ErrorAlloc"
	case ErrorLock:
		return "ErrorLock"
	case ErrorSetClipboardData:
		return "ErrorSetClipboardData"
	case ErrorOutOfMemory:
		return "ErrorOutOfMemory"
	case ErrorArgumentOutOfRange:
		return "ErrorArgumentOutOfRange"
	case ErrorGenericException:
		return "ErrorGenericException"
	case ErrorInvalidArgs:
		return "ErrorInvalidArgs"
	case ErrorGetLastError:
		return "ErrorGetLastError"
	default:
		return fmt.Sprintf("ResultCode(%d)", int(c))
	}
}

// Result is the outcome of a single push. LastError carries the platform
// error code captured right after the failing OS call and is zero otherwise.
type Result struct {
	Code      ResultCode
	LastError uint32
}

// OK reports whether the push succeeded.
func (r Result) OK() bool {
	return r.Code == Success
}

// Err returns nil for a successful result and a *PushError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &PushError{Code: r.Code, LastError: r.LastError}
}

// PushError is the error form of a failed Result.
type PushError struct {
	Code      ResultCode
	LastError uint32
}

func (e *PushError) Error() string {
	if e.LastError == 0 {
		return fmt.Sprintf("clipboard: %s", e.Code)
	}
	return fmt.Sprintf("clipboard: %s: %v (%d)", e.Code, syscall.Errno(e.LastError), e.LastError)
}

// Unwrap exposes the platform error, if one was captured, as a syscall.Errno.
func (e *PushError) Unwrap() error {
	if e.LastError == 0 {
		return nil
	}
	return syscall.Errno(e.LastError)
}

func failure(code ResultCode, err error) Result {
	return Result{Code: code, LastError: errnoOf(err)}
}
