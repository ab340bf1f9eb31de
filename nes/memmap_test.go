package nes

import (
	"errors"
	"testing"

	"github.com/nes6502/core/io"
	"github.com/nes6502/core/mem"
)

func TestMemoryMapRAMMirrorsEvery0x800(t *testing.T) {
	m := NewMemoryMap()
	if err := mem.SetU8(m, 0x0042, 0x7A); err != nil {
		t.Fatalf("SetU8: %v", err)
	}
	for _, addr := range []uint64{0x0842, 0x1042, 0x1842} {
		v, err := mem.GetU8(m, addr)
		if err != nil {
			t.Fatalf("GetU8(0x%X): %v", addr, err)
		}
		if v != 0x7A {
			t.Fatalf("GetU8(0x%X) = %#x, want mirrored 0x7A", addr, v)
		}
	}
}

type fakeRegisterWindow struct {
	regs [32]uint8
}

func (f *fakeRegisterWindow) ReadRegister(idx uint16) uint8  { return f.regs[idx] }
func (f *fakeRegisterWindow) WriteRegister(idx uint16, v uint8) { f.regs[idx] = v }

func TestMemoryMapPPUWindowMirrorsEvery8AndReturnsZeroWhenUnset(t *testing.T) {
	m := NewMemoryMap()
	v, err := mem.GetU8(m, 0x2003)
	if err != nil {
		t.Fatalf("GetU8: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 from an unattached PPU window, got %#x", v)
	}

	ppu := &fakeRegisterWindow{}
	m.AttachPPU(ppu)
	if err := mem.SetU8(m, 0x2003, 0x11); err != nil {
		t.Fatalf("SetU8: %v", err)
	}
	for _, addr := range []uint64{0x2003, 0x200B, 0x3FFB} {
		v, err := mem.GetU8(m, addr)
		if err != nil {
			t.Fatalf("GetU8(0x%X): %v", addr, err)
		}
		if v != 0x11 {
			t.Fatalf("GetU8(0x%X) = %#x, want mirrored register value 0x11", addr, v)
		}
	}
}

func TestMemoryMapAPUWindowRoutesToCollaborator(t *testing.T) {
	m := NewMemoryMap()
	apu := &fakeRegisterWindow{}
	m.AttachAPU(apu)
	if err := mem.SetU8(m, 0x4015, 0x05); err != nil {
		t.Fatalf("SetU8: %v", err)
	}
	v, err := mem.GetU8(m, 0x4015)
	if err != nil {
		t.Fatalf("GetU8: %v", err)
	}
	if v != 0x05 {
		t.Fatalf("GetU8(0x4015) = %#x, want 0x05", v)
	}
}

func TestMemoryMapCartRangeIsNotPresentWithoutACartridge(t *testing.T) {
	m := NewMemoryMap()
	_, err := mem.GetU8(m, 0x8000)
	var me *mem.Error
	if !errors.As(err, &me) {
		t.Fatalf("expected a *mem.Error, got %v (%T)", err, err)
	}
	if me.Kind != mem.MemoryNotPresent {
		t.Fatalf("expected MemoryNotPresent, got %v", me.Kind)
	}
}

func TestMemoryMapRoutesToLoadedCartridge(t *testing.T) {
	m := NewMemoryMap()
	rom := make([]byte, 0x8000)
	rom[0x10] = 0xEA
	cart, err := Load(Header{MapperID: 0}, rom, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m.Load(cart)

	v, err := mem.GetU8(m, 0x8010)
	if err != nil {
		t.Fatalf("GetU8: %v", err)
	}
	if v != 0xEA {
		t.Fatalf("GetU8(0x8010) = %#x, want 0xEA", v)
	}

	m.Eject()
	if _, err := mem.GetU8(m, 0x8010); err == nil {
		t.Fatalf("expected cartridge-range read to fail after Eject")
	}
}

var _ io.RegisterWindow = (*fakeRegisterWindow)(nil)
