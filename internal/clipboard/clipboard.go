// Package clipboard writes Unicode text to the Windows clipboard through
// user32/kernel32 and reports the outcome as a Result instead of an error
// chain. Nothing in this package panics or returns a Go error to the caller.
package clipboard

import (
	"errors"
	"runtime"

	"github.com/kolibri/clippy/internal/logger"
)

var defaultNative = newNative()

// PushString replaces the clipboard content with message as CF_UNICODETEXT.
// A nil message is rejected with ErrorInvalidArgs without touching the
// clipboard. The call makes a single attempt and never retries.
func PushString(message *string) Result {
	return push(defaultNative, message)
}

// push catches a panic raised while a recovered panic is being mapped, which
// leaves no trustworthy last-error value.
func push(api native, message *string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Code: ErrorGetLastError}
		}
	}()
	return pushRecovered(api, message)
}

// pushRecovered maps a panic in the push sequence to ErrorGenericException.
// Deferred cleanup in pushLocked has already run by the time the recover
// below fires.
func pushRecovered(api native, message *string) (res Result) {
	if message == nil {
		return Result{Code: ErrorInvalidArgs}
	}

	// The clipboard is opened for the current thread, and the last-error
	// value is per thread too.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer func() {
		if r := recover(); r != nil {
			res = Result{Code: ErrorGenericException, LastError: api.GetLastError()}
			logger.Debugf("clipboard: recovered from %v", r)
		}
	}()

	return pushLocked(api, *message)
}

func pushLocked(api native, message string) Result {
	if err := api.OpenClipboard(); err != nil {
		return failure(ErrorOpenClipboard, err)
	}
	defer api.CloseClipboard()

	units := utf16Units(message)
	size, err := textByteLen(units)
	if err != nil {
		return Result{Code: ErrorArgumentOutOfRange}
	}
	logger.Debugf("clipboard: pushing %d UTF-16 units (%d bytes)", units, size)

	hMem, err := api.GlobalAlloc(ghnd, size)
	if hMem == 0 {
		return failure(ErrorAlloc, err)
	}
	owned := true
	defer func() {
		if owned {
			api.GlobalFree(hMem)
		}
	}()

	if res := fillShared(api, hMem, message, size); !res.OK() {
		return res
	}

	// Emptying drops every other format. It happens only once the block is
	// ready so that earlier failures leave the previous content in place.
	if err := api.EmptyClipboard(); err != nil {
		return failure(ErrorSetClipboardData, err)
	}
	if h, err := api.SetClipboardData(cfUnicodeText, hMem); h == 0 {
		return failure(ErrorSetClipboardData, err)
	}
	// The clipboard owns hMem from here on.
	owned = false

	return Result{Code: Success}
}

// fillShared stages message and copies it into the movable block hMem. The
// staging buffer is released before returning on every path, after the
// shared block has been unlocked.
func fillShared(api native, hMem uintptr, message string, size uintptr) Result {
	src, err := stage(api, message, size)
	switch {
	case errors.Is(err, errStagingOutOfMemory):
		return Result{Code: ErrorOutOfMemory}
	case errors.Is(err, errSizeOutOfRange):
		return Result{Code: ErrorArgumentOutOfRange}
	case err != nil:
		logger.Debugf("clipboard: staging failed: %v", err)
		return Result{Code: ErrorGenericException}
	}
	defer api.LocalFree(src)

	dst, err := api.GlobalLock(hMem)
	if dst == 0 {
		return failure(ErrorLock, err)
	}
	defer api.GlobalUnlock(hMem)

	api.CopyMemory(dst, src, size)
	return Result{Code: Success}
}
