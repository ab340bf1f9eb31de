package mem

// Empty is a zero-length Memory; every access fails with OutOfBounds. It is
// a convenient placeholder for an address range nothing is mapped into yet
// (e.g. the cartridge slot before a ROM is loaded).
type Empty struct{}

// Len implements Memory.
func (Empty) Len() uint64 { return 0 }

// Get implements Memory and always fails.
func (Empty) Get(addr uint64, buf []byte) error {
	return newError(OutOfBounds, "read of %d byte(s) at 0x%X: memory is empty", len(buf), addr)
}

// Set implements Memory and always fails.
func (Empty) Set(addr uint64, buf []byte) error {
	return newError(OutOfBounds, "write of %d byte(s) at 0x%X: memory is empty", len(buf), addr)
}
