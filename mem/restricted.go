package mem

// ReadOnly wraps a Memory and rejects every Set call with
// MemoryNotWritable, leaving Get untouched. Used for cartridge ROM
// windows.
type ReadOnly struct {
	inner Memory
}

// NewReadOnly wraps inner as read-only.
func NewReadOnly(inner Memory) *ReadOnly {
	return &ReadOnly{inner: inner}
}

// Len implements Memory.
func (r *ReadOnly) Len() uint64 { return r.inner.Len() }

// Get implements Memory.
func (r *ReadOnly) Get(addr uint64, buf []byte) error { return r.inner.Get(addr, buf) }

// Set implements Memory and always fails.
func (r *ReadOnly) Set(addr uint64, buf []byte) error {
	return newError(MemoryNotWritable, "attempted write of %d byte(s) at 0x%X to read-only memory", len(buf), addr)
}

// WriteOnly wraps a Memory and rejects every Get call with
// MemoryNotReadable, leaving Set untouched.
type WriteOnly struct {
	inner Memory
}

// NewWriteOnly wraps inner as write-only.
func NewWriteOnly(inner Memory) *WriteOnly {
	return &WriteOnly{inner: inner}
}

// Len implements Memory.
func (w *WriteOnly) Len() uint64 { return w.inner.Len() }

// Get implements Memory and always fails.
func (w *WriteOnly) Get(addr uint64, buf []byte) error {
	return newError(MemoryNotReadable, "attempted read of %d byte(s) at 0x%X from write-only memory", len(buf), addr)
}

// Set implements Memory.
func (w *WriteOnly) Set(addr uint64, buf []byte) error { return w.inner.Set(addr, buf) }
