package clipboard

import (
	"fmt"
	"syscall"
	"unicode/utf16"
)

// fakeNative simulates the Win32 calls a push makes. It hands out fake
// addresses backed by Go slices and records every call so tests can assert
// ordering and ownership.
type fakeNative struct {
	calls []string

	globals  map[uintptr][]byte
	locals   map[uintptr][]byte
	locked   map[uintptr]uintptr // lock pointer -> handle
	osOwned  map[uintptr]bool
	next     uintptr
	open     bool
	problems []string

	clipboard []byte
	hasText   bool

	failOpen, failAlloc, failLocal, failLock, failEmpty, failSet bool

	errno          syscall.Errno
	panicOn        string
	panicLastError bool
	lastError      uint32
}

func newFake() *fakeNative {
	return &fakeNative{
		globals: map[uintptr][]byte{},
		locals:  map[uintptr][]byte{},
		locked:  map[uintptr]uintptr{},
		osOwned: map[uintptr]bool{},
		next:    0x10000,
	}
}

func (f *fakeNative) record(name string) {
	f.calls = append(f.calls, name)
	if f.panicOn == name {
		panic(fmt.Sprintf("injected failure in %s", name))
	}
}

func (f *fakeNative) problem(format string, args ...interface{}) {
	f.problems = append(f.problems, fmt.Sprintf(format, args...))
}

func (f *fakeNative) alloc(size uintptr) uintptr {
	p := f.next
	f.next += 0x10000
	return p
}

func (f *fakeNative) OpenClipboard() error {
	f.record("OpenClipboard")
	if f.failOpen {
		return f.errno
	}
	if f.open {
		f.problem("clipboard opened twice")
	}
	f.open = true
	return nil
}

func (f *fakeNative) CloseClipboard() error {
	f.record("CloseClipboard")
	if !f.open {
		f.problem("clipboard closed while not open")
	}
	f.open = false
	return nil
}

func (f *fakeNative) EmptyClipboard() error {
	f.record("EmptyClipboard")
	if !f.open {
		f.problem("EmptyClipboard without open clipboard")
	}
	if f.failEmpty {
		return f.errno
	}
	f.clipboard, f.hasText = nil, false
	return nil
}

func (f *fakeNative) SetClipboardData(format uint32, hMem uintptr) (uintptr, error) {
	f.record("SetClipboardData")
	if format != cfUnicodeText {
		f.problem("unexpected clipboard format %d", format)
	}
	if !f.open {
		f.problem("SetClipboardData without open clipboard")
	}
	if f.failSet {
		return 0, f.errno
	}
	block, ok := f.globals[hMem]
	if !ok {
		f.problem("SetClipboardData on unknown handle %#x", hMem)
		return 0, syscall.Errno(6)
	}
	f.clipboard = append([]byte(nil), block...)
	f.hasText = true
	delete(f.globals, hMem)
	f.osOwned[hMem] = true
	return hMem, nil
}

func (f *fakeNative) GlobalAlloc(flags uint32, size uintptr) (uintptr, error) {
	f.record("GlobalAlloc")
	if flags != ghnd {
		f.problem("GlobalAlloc flags = %#x", flags)
	}
	if f.failAlloc {
		return 0, f.errno
	}
	h := f.alloc(size)
	f.globals[h] = make([]byte, size)
	return h, nil
}

func (f *fakeNative) GlobalLock(hMem uintptr) (uintptr, error) {
	f.record("GlobalLock")
	if f.failLock {
		return 0, f.errno
	}
	if _, ok := f.globals[hMem]; !ok {
		f.problem("GlobalLock on unknown handle %#x", hMem)
		return 0, syscall.Errno(6)
	}
	p := hMem + 0x800
	f.locked[p] = hMem
	return p, nil
}

func (f *fakeNative) GlobalUnlock(hMem uintptr) error {
	f.record("GlobalUnlock")
	for p, h := range f.locked {
		if h == hMem {
			delete(f.locked, p)
			return nil
		}
	}
	f.problem("GlobalUnlock on handle %#x that is not locked", hMem)
	return nil
}

func (f *fakeNative) GlobalFree(hMem uintptr) error {
	f.record("GlobalFree")
	if f.osOwned[hMem] {
		f.problem("GlobalFree on clipboard-owned handle %#x", hMem)
	}
	if _, ok := f.globals[hMem]; !ok {
		f.problem("GlobalFree on unknown handle %#x", hMem)
	}
	delete(f.globals, hMem)
	return nil
}

func (f *fakeNative) LocalAlloc(flags uint32, size uintptr) (uintptr, error) {
	f.record("LocalAlloc")
	if flags != lptr {
		f.problem("LocalAlloc flags = %#x", flags)
	}
	if f.failLocal {
		return 0, syscall.Errno(8)
	}
	p := f.alloc(size)
	f.locals[p] = make([]byte, size)
	return p, nil
}

func (f *fakeNative) LocalFree(p uintptr) error {
	f.record("LocalFree")
	if _, ok := f.locals[p]; !ok {
		f.problem("LocalFree on unknown pointer %#x", p)
	}
	delete(f.locals, p)
	return nil
}

func (f *fakeNative) WriteLocal(p, off uintptr, b []byte) {
	block, ok := f.locals[p]
	if !ok {
		f.problem("WriteLocal to unknown pointer %#x", p)
		return
	}
	if off+uintptr(len(b)) > uintptr(len(block)) {
		f.problem("WriteLocal overflows block: off=%d len=%d size=%d", off, len(b), len(block))
		return
	}
	copy(block[off:], b)
}

func (f *fakeNative) CopyMemory(dst, src, size uintptr) {
	f.record("CopyMemory")
	h, ok := f.locked[dst]
	if !ok {
		f.problem("CopyMemory into unlocked pointer %#x", dst)
		return
	}
	from, ok := f.locals[src]
	if !ok {
		f.problem("CopyMemory from unknown pointer %#x", src)
		return
	}
	to := f.globals[h]
	if size > uintptr(len(to)) || size > uintptr(len(from)) {
		f.problem("CopyMemory of %d bytes overflows", size)
		return
	}
	copy(to[:size], from[:size])
}

func (f *fakeNative) GetLastError() uint32 {
	if f.panicLastError {
		panic("GetLastError unavailable")
	}
	return f.lastError
}

// text decodes the clipboard content up to the terminator.
func (f *fakeNative) text() string {
	u := make([]uint16, 0, len(f.clipboard)/2)
	for i := 0; i+1 < len(f.clipboard); i += 2 {
		c := uint16(f.clipboard[i]) | uint16(f.clipboard[i+1])<<8
		if c == 0 {
			break
		}
		u = append(u, c)
	}
	return string(utf16.Decode(u))
}

// leaks lists resources still held after a push returned.
func (f *fakeNative) leaks() []string {
	var out []string
	if f.open {
		out = append(out, "clipboard still open")
	}
	if len(f.globals) > 0 {
		out = append(out, fmt.Sprintf("%d global block(s) not freed", len(f.globals)))
	}
	if len(f.locals) > 0 {
		out = append(out, fmt.Sprintf("%d staging buffer(s) not freed", len(f.locals)))
	}
	if len(f.locked) > 0 {
		out = append(out, fmt.Sprintf("%d block(s) still locked", len(f.locked)))
	}
	return out
}
