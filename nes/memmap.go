package nes

import (
	"github.com/nes6502/core/io"
	"github.com/nes6502/core/mem"
)

const (
	ramWindowBase = 0x0000
	ramWindowSize = 0x2000
	ramPhysSize   = 0x0800

	ppuWindowBase = 0x2000
	ppuWindowEnd  = 0x4000
	ppuRegisters  = 8

	apuWindowBase = 0x4000
	apuWindowEnd  = 0x4200
	apuRegisters  = 0x20

	cartWindowBase = 0x4200
	addressSpace   = 0x10000
)

// MemoryMap is the NES's CPU-visible address space: on-board RAM mirrored
// across 0x0000-0x1FFF, a PPU register window at 0x2000-0x3FFF, an
// APU/IO window at 0x4000-0x41FF, and whatever cartridge is currently
// loaded from 0x4200 up. PPU and APU are external collaborators reached
// through io.RegisterWindow; reads against an unset collaborator return 0
// rather than erroring, matching open-bus-adjacent behavior real hardware
// exhibits when nothing drives those lines.
type MemoryMap struct {
	ram  *mem.Mirrored
	ppu  io.RegisterWindow
	apu  io.RegisterWindow
	cart *Cartridge
}

// NewMemoryMap builds a MemoryMap with fresh, zeroed RAM and no PPU, APU,
// or cartridge attached.
func NewMemoryMap() *MemoryMap {
	return &MemoryMap{ram: mem.NewMirrored(mem.NewFixed(ramPhysSize), ramWindowSize)}
}

// AttachPPU wires in the PPU register window collaborator. Passing nil
// detaches it.
func (m *MemoryMap) AttachPPU(ppu io.RegisterWindow) { m.ppu = ppu }

// AttachAPU wires in the APU/IO register window collaborator. Passing nil
// detaches it.
func (m *MemoryMap) AttachAPU(apu io.RegisterWindow) { m.apu = apu }

// Load attaches a cartridge, making its PRG visible from 0x4200 up.
func (m *MemoryMap) Load(cart *Cartridge) { m.cart = cart }

// Eject detaches the current cartridge; subsequent cartridge-range
// accesses fail with MemoryNotPresent until a new one is loaded.
func (m *MemoryMap) Eject() { m.cart = nil }

// Len implements mem.Memory.
func (m *MemoryMap) Len() uint64 { return addressSpace }

// Get implements mem.Memory, routing each byte of buf to the region that
// owns it.
func (m *MemoryMap) Get(addr uint64, buf []byte) error {
	for i := range buf {
		v, err := m.getByte(addr + uint64(i))
		if err != nil {
			return err
		}
		buf[i] = v
	}
	return nil
}

// Set implements mem.Memory, routing each byte of buf to the region that
// owns it.
func (m *MemoryMap) Set(addr uint64, buf []byte) error {
	for i, v := range buf {
		if err := m.setByte(addr+uint64(i), v); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryMap) getByte(addr uint64) (uint8, error) {
	switch {
	case addr < ppuWindowBase:
		return mem.GetU8(m.ram, addr-ramWindowBase)
	case addr < ppuWindowEnd:
		if m.ppu == nil {
			return 0, nil
		}
		return m.ppu.ReadRegister((addr - ppuWindowBase) % ppuRegisters), nil
	case addr < apuWindowEnd:
		if m.apu == nil {
			return 0, nil
		}
		return m.apu.ReadRegister((addr - apuWindowBase) % apuRegisters), nil
	case addr < addressSpace:
		if m.cart == nil {
			return 0, &mem.Error{Kind: mem.MemoryNotPresent, Detail: "no cartridge loaded"}
		}
		return mem.GetU8(m.cart.Mapper.PRG(), addr)
	default:
		return 0, &mem.Error{Kind: mem.OutOfBounds, Detail: "address exceeds the 16-bit NES bus"}
	}
}

func (m *MemoryMap) setByte(addr uint64, val uint8) error {
	switch {
	case addr < ppuWindowBase:
		return mem.SetU8(m.ram, addr-ramWindowBase, val)
	case addr < ppuWindowEnd:
		if m.ppu != nil {
			m.ppu.WriteRegister((addr-ppuWindowBase)%ppuRegisters, val)
		}
		return nil
	case addr < apuWindowEnd:
		if m.apu != nil {
			m.apu.WriteRegister((addr-apuWindowBase)%apuRegisters, val)
		}
		return nil
	case addr < addressSpace:
		if m.cart == nil {
			return &mem.Error{Kind: mem.MemoryNotPresent, Detail: "no cartridge loaded"}
		}
		return mem.SetU8(m.cart.Mapper.PRGMut(), addr, val)
	default:
		return &mem.Error{Kind: mem.OutOfBounds, Detail: "address exceeds the 16-bit NES bus"}
	}
}
