package mem

// Mirrored presents size bytes backed by an inner Memory of (possibly)
// smaller length, wrapping addresses modulo the inner memory's length. This
// is how the NES's 2KB of on-board RAM occupies the 8KB window at
// 0x0000-0x1FFF: a read or write to 0x0842 behaves identically to one at
// 0x0042.
type Mirrored struct {
	inner Memory
	size  uint64
}

// NewMirrored wraps inner so that it appears to be size bytes long.
func NewMirrored(inner Memory, size uint64) *Mirrored {
	return &Mirrored{inner: inner, size: size}
}

// Len implements Memory.
func (m *Mirrored) Len() uint64 {
	return m.size
}

// Get implements Memory.
func (m *Mirrored) Get(addr uint64, buf []byte) error {
	if !m.inBounds(addr, len(buf)) {
		return newError(OutOfBounds, "read of %d byte(s) at 0x%X exceeds mirrored size %d", len(buf), addr, m.size)
	}
	return m.chunked(addr, buf, func(eaddr uint64, chunk []byte) error {
		return m.inner.Get(eaddr, chunk)
	})
}

// Set implements Memory.
func (m *Mirrored) Set(addr uint64, buf []byte) error {
	if !m.inBounds(addr, len(buf)) {
		return newError(OutOfBounds, "write of %d byte(s) at 0x%X exceeds mirrored size %d", len(buf), addr, m.size)
	}
	return m.chunked(addr, buf, func(eaddr uint64, chunk []byte) error {
		return m.inner.Set(eaddr, chunk)
	})
}

// chunked walks buf, splitting each access at the wrap boundary of the
// inner memory so a single logical read/write never straddles the seam.
func (m *Mirrored) chunked(addr uint64, buf []byte, op func(eaddr uint64, chunk []byte) error) error {
	innerLen := m.inner.Len()
	ptr := 0
	for ptr < len(buf) {
		eaddr := (addr + uint64(ptr)) % innerLen
		toMove := len(buf) - ptr
		if remain := innerLen - eaddr; uint64(toMove) > remain {
			toMove = int(remain)
		}
		if err := op(eaddr, buf[ptr:ptr+toMove]); err != nil {
			return err
		}
		ptr += toMove
	}
	return nil
}

func (m *Mirrored) inBounds(addr uint64, n int) bool {
	if addr >= m.size {
		return false
	}
	return addr+uint64(n) <= m.size
}
