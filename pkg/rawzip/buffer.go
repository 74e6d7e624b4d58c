package rawzip

import "encoding/binary"

const maxInt = int(^uint(0) >> 1)

// sliceBuffer wraps an untrusted byte slice with bounds-checked little-endian
// field reads. Every stage of the parse goes through these accessors; nothing
// indexes the raw slice with an attacker-controlled offset directly.
type sliceBuffer []byte

// has reports whether [off, off+width) lies inside the buffer. Written to be
// overflow-safe for any int inputs.
func (b sliceBuffer) has(off, width int) bool {
	if off < 0 || width < 0 || width > len(b) {
		return false
	}
	return off <= len(b)-width
}

func (b sliceBuffer) u16(off int) (uint16, bool) {
	if !b.has(off, 2) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(b[off : off+2]), true
}

func (b sliceBuffer) u32(off int) (uint32, bool) {
	if !b.has(off, 4) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), true
}

// bytes returns a copy of [off, off+n), never a view into the buffer.
func (b sliceBuffer) bytes(off, n int) ([]byte, bool) {
	if !b.has(off, n) {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, b[off:off+n])
	return out, true
}

// toInt converts a declared size or offset to int, rejecting values that
// cannot address any buffer on this platform.
func toInt(v uint64) (int, error) {
	if v > uint64(maxInt) {
		return 0, ErrSizeOverflow
	}
	return int(v), nil
}
