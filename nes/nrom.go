package nes

import "github.com/nes6502/core/mem"

// nrom is the mapper 0 reference implementation: no bank switching. The
// CPU-visible PRG space is a fixed RAM window at 0x6000-0x7FFF (mirrored
// if the cartridge's save RAM is smaller than the window) followed by a
// ROM window at 0x8000-0xFFFF (mirrored to fill 32 KB when the cartridge
// only carries a 16 KB PRG ROM bank). CHR is either a fixed ROM bank or,
// when the header declares CHR RAM instead, a writable fixed buffer.
type nrom struct {
	prg mem.Memory
	chr mem.Memory
}

const (
	nromPRGRAMBase    = 0x6000
	nromPRGRAMWindow  = 0x2000
	nromPRGROMBase    = 0x8000
	nromPRGROMWindow  = 0x8000
	nromCHRWindowSize = 0x2000
)

func newNROM(header Header, prgROM, chrROM []byte) (*nrom, error) {
	ramSize := uint64(header.PRGRAMSize)
	if ramSize == 0 {
		ramSize = nromPRGRAMWindow
	}
	ram := mem.NewFixed(ramSize)

	rom := mem.NewFixed(uint64(len(prgROM)))
	rom.LoadBytes(prgROM)
	romWindow := mem.NewReadOnly(mem.NewMirrored(rom, nromPRGROMWindow))

	prg := mem.NewVirtual()
	if err := prg.Attach(nromPRGRAMBase, mem.NewMirrored(ram, nromPRGRAMWindow)); err != nil {
		return nil, err
	}
	if err := prg.Attach(nromPRGROMBase, romWindow); err != nil {
		return nil, err
	}

	var chr mem.Memory
	if header.CHRRAMSize > 0 {
		chrRAMSize := uint64(header.CHRRAMSize)
		chr = mem.NewMirrored(mem.NewFixed(chrRAMSize), nromCHRWindowSize)
	} else {
		chrRom := mem.NewFixed(uint64(len(chrROM)))
		chrRom.LoadBytes(chrROM)
		chr = mem.NewReadOnly(mem.NewMirrored(chrRom, nromCHRWindowSize))
	}

	return &nrom{prg: prg, chr: chr}, nil
}

func (n *nrom) PRG() mem.Memory    { return n.prg }
func (n *nrom) PRGMut() mem.Memory { return n.prg }
func (n *nrom) CHR() mem.Memory    { return n.chr }
func (n *nrom) CHRMut() mem.Memory { return n.chr }
