package nes

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/nes6502/core/mem"
)

func makePRGROM(size int, fill func(i int) byte) []byte {
	rom := make([]byte, size)
	for i := range rom {
		rom[i] = fill(i)
	}
	return rom
}

func TestNROMBelowRAMWindowIsOutOfBounds(t *testing.T) {
	cart, err := Load(Header{MapperID: 0}, makePRGROM(0x8000, func(i int) byte { return byte(i) }), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := mem.GetU8(cart.Mapper.PRG(), 0x5FFF); err == nil {
		t.Fatalf("expected out-of-bounds reading below the RAM window")
	}
}

func TestNROMRAMWindowMirrorsWhenSmallerThanWindow(t *testing.T) {
	cart, err := Load(Header{MapperID: 0, PRGRAMSize: 0x0800}, makePRGROM(0x8000, func(i int) byte { return 0 }), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prg := cart.Mapper.PRG()
	if err := mem.SetU8(prg, nromPRGRAMBase, 0x42); err != nil {
		t.Fatalf("SetU8: %v", err)
	}
	v, err := mem.GetU8(prg, nromPRGRAMBase+0x0800)
	if err != nil {
		t.Fatalf("GetU8: %v", err)
	}
	if v != 0x42 {
		t.Fatalf("expected mirrored RAM read to see the write, got %#x\n%s", v, spew.Sdump(cart))
	}
}

// TestNROMROMMirrorsA16KBBank covers scenario G: a 16 KB PRG ROM mirrored
// to fill the 32 KB window, so 0x8000 and 0xC000 read identical bytes at
// corresponding offsets.
func TestNROMROMMirrorsA16KBBank(t *testing.T) {
	rom := makePRGROM(0x4000, func(i int) byte { return byte(i) })
	cart, err := Load(Header{MapperID: 0}, rom, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prg := cart.Mapper.PRG()
	for _, off := range []uint64{0, 1, 0x10, 0x3FFF} {
		lo, err := mem.GetU8(prg, nromPRGROMBase+off)
		if err != nil {
			t.Fatalf("GetU8 low bank: %v", err)
		}
		hi, err := mem.GetU8(prg, nromPRGROMBase+0x4000+off)
		if err != nil {
			t.Fatalf("GetU8 high bank: %v", err)
		}
		if lo != hi {
			t.Fatalf("offset %#x: low bank %#x != mirrored high bank %#x", off, lo, hi)
		}
	}
}

func TestNROMROMRejectsWrites(t *testing.T) {
	cart, err := Load(Header{MapperID: 0}, makePRGROM(0x8000, func(i int) byte { return 0 }), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := mem.SetU8(cart.Mapper.PRG(), nromPRGROMBase, 0xFF); err == nil {
		t.Fatalf("expected write to ROM window to fail")
	}
}

func TestNROMCHRRAMIsWritable(t *testing.T) {
	cart, err := Load(Header{MapperID: 0, CHRRAMSize: 0x2000}, makePRGROM(0x8000, func(i int) byte { return 0 }), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	chr := cart.Mapper.CHR()
	if err := mem.SetU8(chr, 0x10, 0x99); err != nil {
		t.Fatalf("SetU8: %v", err)
	}
	v, err := mem.GetU8(chr, 0x10)
	if err != nil {
		t.Fatalf("GetU8: %v", err)
	}
	if v != 0x99 {
		t.Fatalf("expected CHR RAM round-trip, got %#x", v)
	}
}

func TestLoadUnsupportedMapper(t *testing.T) {
	if _, err := Load(Header{MapperID: 99}, nil, nil); err == nil {
		t.Fatalf("expected unsupported mapper error")
	}
}
