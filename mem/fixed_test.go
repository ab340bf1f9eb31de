package mem

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestFixedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		size uint64
		addr uint64
		buf  []byte
	}{
		{name: "single byte at start", size: 16, addr: 0, buf: []byte{0xAB}},
		{name: "single byte at end", size: 16, addr: 15, buf: []byte{0xCD}},
		{name: "multi-byte span", size: 16, addr: 4, buf: []byte{1, 2, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFixed(tc.size)
			if err := f.Set(tc.addr, tc.buf); err != nil {
				t.Fatalf("Set: unexpected error: %v\nstate: %s", err, spew.Sdump(f))
			}
			got := make([]byte, len(tc.buf))
			if err := f.Get(tc.addr, got); err != nil {
				t.Fatalf("Get: unexpected error: %v\nstate: %s", err, spew.Sdump(f))
			}
			for i := range tc.buf {
				if got[i] != tc.buf[i] {
					t.Errorf("byte %d: got 0x%02X, want 0x%02X", i, got[i], tc.buf[i])
				}
			}
		})
	}
}

func TestFixedOutOfBounds(t *testing.T) {
	f := NewFixed(4)
	var memErr *Error

	if err := f.Get(4, make([]byte, 1)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Get past end: got %v, want OutOfBounds", err)
	}
	if err := f.Get(2, make([]byte, 4)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Get spanning end: got %v, want OutOfBounds", err)
	}
	if err := f.Set(4, make([]byte, 1)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Set past end: got %v, want OutOfBounds", err)
	}
}

func TestFixedLoadBytes(t *testing.T) {
	f := NewFixed(4)
	f.LoadBytes([]byte{1, 2, 3, 4, 5})

	got := make([]byte, 4)
	if err := f.Get(0, got); err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d (oversized src should truncate)", i, got[i], want[i])
		}
	}
}

func TestEndiannessHelpers(t *testing.T) {
	f := NewFixed(8)

	if err := SetU16LE(f, 0, 0xABCD); err != nil {
		t.Fatalf("SetU16LE: %v", err)
	}
	if got, err := GetU16LE(f, 0); err != nil || got != 0xABCD {
		t.Errorf("GetU16LE: got (0x%04X, %v), want (0xABCD, nil)", got, err)
	}
	if got, err := GetU16BE(f, 0); err != nil || got != 0xCDAB {
		t.Errorf("GetU16BE on LE-written bytes: got (0x%04X, %v), want (0xCDAB, nil)", got, err)
	}

	if err := SetU32LE(f, 2, 0x11223344); err != nil {
		t.Fatalf("SetU32LE: %v", err)
	}
	if got, err := GetU32LE(f, 2); err != nil || got != 0x11223344 {
		t.Errorf("GetU32LE: got (0x%08X, %v), want (0x11223344, nil)", got, err)
	}

	if err := SetI16LE(f, 0, -1); err != nil {
		t.Fatalf("SetI16LE: %v", err)
	}
	if got, err := GetI16LE(f, 0); err != nil || got != -1 {
		t.Errorf("GetI16LE: got (%d, %v), want (-1, nil)", got, err)
	}
}
