package mem

import (
	"fmt"
	"sort"
)

// segment is a single (base, Memory) pair owned exclusively by the Virtual
// bus it is attached to.
type segment struct {
	base uint64
	mem  Memory
}

func (s segment) end() uint64 { return s.base + s.mem.Len() }

// VirtualErrorKind enumerates failures specific to Virtual bus
// construction, as opposed to the access-time ErrorKind above.
type VirtualErrorKind int

// MemoryOverlap is the only VirtualErrorKind: returned by Attach when the
// new segment intersects one already attached.
const MemoryOverlap VirtualErrorKind = iota

// VirtualError reports a failure to attach a segment to a Virtual bus.
type VirtualError struct {
	Kind   VirtualErrorKind
	Detail string
}

func (e *VirtualError) Error() string {
	return "memory overlap: " + e.Detail
}

// Virtual composes an ordered list of disjoint memory segments into a
// single address space. Lookups walk the sorted segment list to find the
// one covering a given address; segments may not overlap.
type Virtual struct {
	segments []segment
}

// NewVirtual returns an empty Virtual bus with no attached segments.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Attach inserts mem at the given base address, keeping the segment list
// sorted by base. It fails with a VirtualError if the new segment overlaps
// any existing one.
func (v *Virtual) Attach(base uint64, m Memory) error {
	end := base + m.Len()
	idx := sort.Search(len(v.segments), func(i int) bool { return v.segments[i].base >= base })
	if idx > 0 && v.segments[idx-1].end() > base {
		prev := v.segments[idx-1]
		return &VirtualError{Kind: MemoryOverlap, Detail: fmt.Sprintf(
			"new segment [0x%X,0x%X) overlaps segment [0x%X,0x%X)", base, end, prev.base, prev.end())}
	}
	if idx < len(v.segments) && v.segments[idx].base < end {
		next := v.segments[idx]
		return &VirtualError{Kind: MemoryOverlap, Detail: fmt.Sprintf(
			"new segment [0x%X,0x%X) overlaps segment [0x%X,0x%X)", base, end, next.base, next.end())}
	}
	v.segments = append(v.segments, segment{})
	copy(v.segments[idx+1:], v.segments[idx:])
	v.segments[idx] = segment{base: base, mem: m}
	return nil
}

// Len returns the address of the end of the last attached segment, i.e. the
// span of addresses a fully-populated bus would cover. Gaps between
// segments do not count as addressable.
func (v *Virtual) Len() uint64 {
	if len(v.segments) == 0 {
		return 0
	}
	return v.segments[len(v.segments)-1].end()
}

// Get implements Memory, dispatching each contiguous run of buf to the
// segment that covers it.
func (v *Virtual) Get(addr uint64, buf []byte) error {
	return v.walk(addr, buf, func(m Memory, off uint64, chunk []byte) error {
		return m.Get(off, chunk)
	})
}

// Set implements Memory, dispatching each contiguous run of buf to the
// segment that covers it.
func (v *Virtual) Set(addr uint64, buf []byte) error {
	return v.walk(addr, buf, func(m Memory, off uint64, chunk []byte) error {
		return m.Set(off, chunk)
	})
}

func (v *Virtual) walk(addr uint64, buf []byte, op func(m Memory, off uint64, chunk []byte) error) error {
	ptr := 0
	for ptr < len(buf) {
		cur := addr + uint64(ptr)
		seg, ok := v.find(cur)
		if !ok {
			return newError(OutOfBounds, "no segment covers address 0x%X", cur)
		}
		avail := seg.end() - cur
		remaining := uint64(len(buf) - ptr)
		n := remaining
		if avail < n {
			n = avail
		}
		if err := op(seg.mem, cur-seg.base, buf[ptr:ptr+int(n)]); err != nil {
			return err
		}
		ptr += int(n)
	}
	return nil
}

func (v *Virtual) find(addr uint64) (segment, bool) {
	idx := sort.Search(len(v.segments), func(i int) bool { return v.segments[i].end() > addr })
	if idx < len(v.segments) && v.segments[idx].base <= addr {
		return v.segments[idx], true
	}
	return segment{}, false
}
