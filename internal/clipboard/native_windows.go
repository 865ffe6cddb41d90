//go:build windows

package clipboard

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procSetClipboardData = user32.NewProc("SetClipboardData")

	procGlobalAlloc   = kernel32.NewProc("GlobalAlloc")
	procGlobalLock    = kernel32.NewProc("GlobalLock")
	procGlobalUnlock  = kernel32.NewProc("GlobalUnlock")
	procGlobalFree    = kernel32.NewProc("GlobalFree")
	procLocalAlloc    = kernel32.NewProc("LocalAlloc")
	procLocalFree     = kernel32.NewProc("LocalFree")
	procRtlMoveMemory = kernel32.NewProc("RtlMoveMemory")
)

func newNative() native {
	return win32{}
}

type win32 struct{}

// callFailed turns a zero/non-zero Win32 return into Go error form. A
// non-nil error is always a windows.Errno, possibly ERROR_SUCCESS.
func callFailed(r uintptr, err error) error {
	if r != 0 {
		return nil
	}
	if err == nil {
		return windows.ERROR_SUCCESS
	}
	return err
}

func (win32) OpenClipboard() error {
	r, _, err := procOpenClipboard.Call(0)
	return callFailed(r, err)
}

func (win32) CloseClipboard() error {
	r, _, err := procCloseClipboard.Call()
	return callFailed(r, err)
}

func (win32) EmptyClipboard() error {
	r, _, err := procEmptyClipboard.Call()
	return callFailed(r, err)
}

func (win32) SetClipboardData(format uint32, hMem uintptr) (uintptr, error) {
	r, _, err := procSetClipboardData.Call(uintptr(format), hMem)
	return r, callFailed(r, err)
}

func (win32) GlobalAlloc(flags uint32, size uintptr) (uintptr, error) {
	r, _, err := procGlobalAlloc.Call(uintptr(flags), size)
	return r, callFailed(r, err)
}

func (win32) GlobalLock(hMem uintptr) (uintptr, error) {
	r, _, err := procGlobalLock.Call(hMem)
	return r, callFailed(r, err)
}

// GlobalUnlock returns FALSE with ERROR_SUCCESS once the lock count drops to
// zero, which is the normal case here.
func (win32) GlobalUnlock(hMem uintptr) error {
	r, _, err := procGlobalUnlock.Call(hMem)
	if r == 0 && err != nil && err != windows.ERROR_SUCCESS {
		return err
	}
	return nil
}

// GlobalFree and LocalFree return NULL on success.
func (win32) GlobalFree(hMem uintptr) error {
	r, _, err := procGlobalFree.Call(hMem)
	if r != 0 {
		return err
	}
	return nil
}

func (win32) LocalAlloc(flags uint32, size uintptr) (uintptr, error) {
	r, _, err := procLocalAlloc.Call(uintptr(flags), size)
	return r, callFailed(r, err)
}

func (win32) LocalFree(p uintptr) error {
	r, _, err := procLocalFree.Call(p)
	if r != 0 {
		return err
	}
	return nil
}

func (win32) WriteLocal(p, off uintptr, b []byte) {
	if len(b) == 0 {
		return
	}
	procRtlMoveMemory.Call(p+off, uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)))
}

func (win32) CopyMemory(dst, src, size uintptr) {
	procRtlMoveMemory.Call(dst, src, size)
}

func (win32) GetLastError() uint32 {
	return errnoOf(windows.GetLastError())
}
