package mem

import (
	"errors"
	"testing"
)

func TestMirroredWrapAround(t *testing.T) {
	inner := NewFixed(2048)
	m := NewMirrored(inner, 8192)

	if err := SetU8(m, 0x0042, 0x7E); err != nil {
		t.Fatalf("SetU8 at 0x0042: %v", err)
	}

	tests := []struct {
		name string
		addr uint64
	}{
		{name: "first mirror", addr: 0x0842},
		{name: "second mirror", addr: 0x1042},
		{name: "third mirror", addr: 0x1842},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GetU8(m, tc.addr)
			if err != nil {
				t.Fatalf("GetU8 at 0x%04X: %v", tc.addr, err)
			}
			if got != 0x7E {
				t.Errorf("GetU8 at 0x%04X: got 0x%02X, want 0x7E", tc.addr, got)
			}
		})
	}
}

func TestMirroredSpanningWrapBoundary(t *testing.T) {
	inner := NewFixed(4)
	m := NewMirrored(inner, 16)

	buf := []byte{1, 2, 3, 4, 5, 6}
	if err := m.Set(2, buf); err != nil {
		t.Fatalf("Set spanning wrap: %v", err)
	}

	innerContents := make([]byte, 4)
	if err := inner.Get(0, innerContents); err != nil {
		t.Fatalf("Get inner: %v", err)
	}
	want := []byte{3, 4, 5, 6}
	for i := range want {
		if innerContents[i] != want[i] {
			t.Errorf("inner byte %d: got %d, want %d", i, innerContents[i], want[i])
		}
	}
}

func TestMirroredOutOfBounds(t *testing.T) {
	m := NewMirrored(NewFixed(4), 16)
	var memErr *Error
	if err := m.Get(16, make([]byte, 1)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Get past size: got %v, want OutOfBounds", err)
	}
}
