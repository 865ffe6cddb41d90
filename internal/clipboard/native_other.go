//go:build !windows

package clipboard

import "errors"

// ErrUnsupportedPlatform is returned by the native layer on every OS other
// than Windows.
var ErrUnsupportedPlatform = errors.New("clipboard: only the Windows clipboard is supported")

func newNative() native {
	return unsupported{}
}

// unsupported fails at the first step so no later call is ever reached.
type unsupported struct{}

func (unsupported) OpenClipboard() error { return ErrUnsupportedPlatform }
func (unsupported) CloseClipboard() error { return ErrUnsupportedPlatform }
func (unsupported) EmptyClipboard() error { return ErrUnsupportedPlatform }
func (unsupported) SetClipboardData(uint32, uintptr) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
func (unsupported) GlobalAlloc(uint32, uintptr) (uintptr, error) { return 0, ErrUnsupportedPlatform }
func (unsupported) GlobalLock(uintptr) (uintptr, error)          { return 0, ErrUnsupportedPlatform }
func (unsupported) GlobalUnlock(uintptr) error                   { return ErrUnsupportedPlatform }
func (unsupported) GlobalFree(uintptr) error                     { return ErrUnsupportedPlatform }
func (unsupported) LocalAlloc(uint32, uintptr) (uintptr, error)  { return 0, ErrUnsupportedPlatform }
func (unsupported) LocalFree(uintptr) error                      { return ErrUnsupportedPlatform }
func (unsupported) WriteLocal(uintptr, uintptr, []byte)          {}
func (unsupported) CopyMemory(uintptr, uintptr, uintptr)         {}
func (unsupported) GetLastError() uint32                         { return 0 }
