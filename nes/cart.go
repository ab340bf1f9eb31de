// Package nes composes the mos6502 core into a Nintendo Entertainment
// System: a cartridge mapper abstraction, the NES memory map that routes
// CPU bus accesses across RAM/PPU/APU/cartridge, and a façade that owns
// the CPU and bus for a host to drive one step at a time.
package nes

import "github.com/nes6502/core/mem"

// Mirroring describes how the PPU's two nametables are wired to the
// cartridge's CIRAM lines. The core stores it for the mapper/PPU to
// consult; it has no effect on CPU-visible addressing.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorFourScreen
	MirrorSingleScreenLower
	MirrorSingleScreenUpper
)

// TVSystem records the cartridge's target video timing, carried through
// from the ROM header for a host to pick a frame rate with; the core
// itself is timing-agnostic.
type TVSystem int

const (
	TVSystemNTSC TVSystem = iota
	TVSystemPAL
	TVSystemDual
)

// Header carries every field an iNES/NES 2.0 parser extracts before
// handing a ROM to Load. Parsing the on-disk byte layout itself is a
// host-side concern; this core only stores and acts on the result.
type Header struct {
	PRGROMSize     uint32
	CHRROMSize     uint32
	PRGRAMSize     uint32
	CHRRAMSize     uint32
	MapperID       uint16
	SubmapperID    uint8
	Mirroring      Mirroring
	Battery        bool
	TrainerPresent bool
	TVSystem       TVSystem
}

// Mapper is the cartridge-side logic that multiplexes PRG and CHR banks
// into the CPU and PPU address spaces respectively. The CPU sees only
// PRG; CHR is exposed for an external PPU to read tile data from.
//
// PRG/PRGMut and CHR/CHRMut return the same underlying mem.Memory: Go has
// no shared/exclusive borrow distinction to preserve from the original
// split, but the paired accessors are kept so callers can mirror the
// original's read-path/write-path naming when that clarifies intent.
type Mapper interface {
	PRG() mem.Memory
	PRGMut() mem.Memory
	CHR() mem.Memory
	CHRMut() mem.Memory
}

// Cartridge pairs a parsed header with the mapper it selects.
type Cartridge struct {
	Header Header
	Mapper Mapper
}

// UnsupportedMapperError is returned by Load when header.MapperID names a
// mapper this core has no implementation for. Only NROM (mapper 0) ships
// today.
type UnsupportedMapperError struct {
	MapperID uint16
}

func (e *UnsupportedMapperError) Error() string {
	return "unsupported mapper id"
}

// Load builds a Cartridge from a parsed header plus the raw PRG and CHR
// ROM bytes a host-side iNES/NES 2.0 reader extracted. CHR ROM may be
// empty when header.CHRRAMSize is nonzero (cartridge provides CHR RAM
// instead of CHR ROM); prgRAM and chrRAM sizing come from the header.
func Load(header Header, prgROM, chrROM []byte) (*Cartridge, error) {
	switch header.MapperID {
	case 0:
		m, err := newNROM(header, prgROM, chrROM)
		if err != nil {
			return nil, err
		}
		return &Cartridge{Header: header, Mapper: m}, nil
	default:
		return nil, &UnsupportedMapperError{MapperID: header.MapperID}
	}
}
