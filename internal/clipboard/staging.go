package clipboard

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sizeOfWideChar = 2

// stagingChunk bounds how much of the message is converted per encoder pass.
// Every UTF-8 input byte yields at most two UTF-16LE output bytes.
const stagingChunk = 32 << 10

var (
	errStagingOutOfMemory = errors.New("staging buffer allocation failed")
	errSizeOutOfRange     = errors.New("text size exceeds addressable range")
)

// utf16Units counts the UTF-16 code units s encodes to. Invalid UTF-8 bytes
// become one U+FFFD each, the same as the encoder below.
func utf16Units(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// textByteLen returns (units+1)*2, the size of the terminated wide string.
func textByteLen(units int) (uintptr, error) {
	if units < 0 || units > math.MaxInt/sizeOfWideChar-1 {
		return 0, errSizeOutOfRange
	}
	return uintptr((units + 1) * sizeOfWideChar), nil
}

// stage allocates a zeroed LocalAlloc block of size bytes and fills it with
// s as UTF-16LE. The terminator comes from the zero fill. The caller owns the
// returned block and must release it with LocalFree.
func stage(api native, s string, size uintptr) (uintptr, error) {
	p, _ := api.LocalAlloc(lptr, size)
	if p == 0 {
		return 0, errStagingOutOfMemory
	}

	if err := encodeInto(api, p, size-sizeOfWideChar, s); err != nil {
		api.LocalFree(p)
		return 0, err
	}
	return p, nil
}

func encodeInto(api native, p, limit uintptr, s string) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	buf := make([]byte, 2*stagingChunk)

	var written uintptr
	for off := 0; off < len(s); {
		end := min(off+stagingChunk, len(s))
		nDst, nSrc, err := enc.Transform(buf, []byte(s[off:end]), end == len(s))
		if err != nil && !errors.Is(err, transform.ErrShortSrc) {
			return fmt.Errorf("encode utf-16: %w", err)
		}
		if nSrc == 0 {
			return fmt.Errorf("encode utf-16: no progress at offset %d", off)
		}
		if written+uintptr(nDst) > limit {
			return fmt.Errorf("encode utf-16: %d bytes exceed staging size %d", written+uintptr(nDst), limit)
		}
		api.WriteLocal(p, written, buf[:nDst])
		written += uintptr(nDst)
		off += nSrc
	}
	if written != limit {
		return fmt.Errorf("encode utf-16: wrote %d of %d bytes", written, limit)
	}
	return nil
}
