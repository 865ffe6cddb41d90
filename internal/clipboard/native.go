package clipboard

import (
	"errors"
	"syscall"
)

const (
	gmemMovable  = 0x0002
	gmemZeroinit = 0x0040
	ghnd         = gmemMovable | gmemZeroinit

	lmemFixed    = 0x0000
	lmemZeroinit = 0x0040
	lptr         = lmemFixed | lmemZeroinit

	cfUnicodeText = 13
)

// native is the slice of the Win32 surface a push needs. Handles and
// pointers are plain uintptrs; memory behind them is never touched from Go
// except through WriteLocal.
//
// Every call that can fail returns the last-error value observed on the
// calling thread immediately after the OS call.
type native interface {
	OpenClipboard() error
	CloseClipboard() error
	EmptyClipboard() error
	SetClipboardData(format uint32, hMem uintptr) (uintptr, error)

	GlobalAlloc(flags uint32, size uintptr) (uintptr, error)
	GlobalLock(hMem uintptr) (uintptr, error)
	GlobalUnlock(hMem uintptr) error
	GlobalFree(hMem uintptr) error

	LocalAlloc(flags uint32, size uintptr) (uintptr, error)
	LocalFree(p uintptr) error
	// WriteLocal copies b to p+off inside a LocalAlloc'ed block.
	WriteLocal(p, off uintptr, b []byte)

	CopyMemory(dst, src, size uintptr)
	GetLastError() uint32
}

// errnoOf extracts the platform code from an error returned by native.
func errnoOf(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
