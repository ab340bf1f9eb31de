package mem

import (
	"errors"
	"testing"

	"github.com/go-test/deep"
)

func TestVirtualAttachAndDispatch(t *testing.T) {
	v := NewVirtual()
	ram := NewFixed(0x0800)
	rom := NewFixed(0x4000)

	if err := v.Attach(0x8000, rom); err != nil {
		t.Fatalf("Attach rom: %v", err)
	}
	if err := v.Attach(0x0000, ram); err != nil {
		t.Fatalf("Attach ram (out of order): %v", err)
	}

	if err := SetU8(v, 0x0010, 0x11); err != nil {
		t.Fatalf("SetU8 into ram segment: %v", err)
	}
	if got, err := GetU8(v, 0x0010); err != nil || got != 0x11 {
		t.Errorf("GetU8 from ram segment: got (0x%02X, %v), want (0x11, nil)", got, err)
	}

	if err := SetU8(v, 0x8000, 0x22); err != nil {
		t.Fatalf("SetU8 into rom segment: %v", err)
	}
	if got, err := GetU8(v, 0x8000); err != nil || got != 0x22 {
		t.Errorf("GetU8 from rom segment: got (0x%02X, %v), want (0x22, nil)", got, err)
	}
}

func TestVirtualOverlapRejected(t *testing.T) {
	v := NewVirtual()
	if err := v.Attach(0x2000, NewFixed(0x1000)); err != nil {
		t.Fatalf("Attach first: %v", err)
	}

	tests := []struct {
		name string
		base uint64
		size uint64
	}{
		{name: "overlaps front", base: 0x1800, size: 0x1000},
		{name: "overlaps tail", base: 0x2800, size: 0x1000},
		{name: "identical range", base: 0x2000, size: 0x1000},
		{name: "fully contained", base: 0x2100, size: 0x10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var vErr *VirtualError
			err := v.Attach(tc.base, NewFixed(tc.size))
			if !errors.As(err, &vErr) || vErr.Kind != MemoryOverlap {
				t.Errorf("Attach: got %v, want MemoryOverlap", err)
			}
		})
	}
}

func TestVirtualSegmentsStaySortedAndDisjoint(t *testing.T) {
	v := NewVirtual()
	bases := []uint64{0x4000, 0x0000, 0x8000, 0x2000}
	for _, base := range bases {
		if err := v.Attach(base, NewFixed(0x1000)); err != nil {
			t.Fatalf("Attach 0x%X: %v", base, err)
		}
	}

	var got []uint64
	for _, s := range v.segments {
		got = append(got, s.base)
	}
	want := []uint64{0x0000, 0x2000, 0x4000, 0x8000}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("segment order mismatch: %v", diff)
	}
}

func TestVirtualOutOfBoundsInGap(t *testing.T) {
	v := NewVirtual()
	if err := v.Attach(0x0000, NewFixed(0x100)); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := v.Attach(0x1000, NewFixed(0x100)); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	var memErr *Error
	if err := v.Get(0x0200, make([]byte, 1)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Get in unmapped gap: got %v, want OutOfBounds", err)
	}
}

func TestVirtualAccessSpanningTwoSegments(t *testing.T) {
	v := NewVirtual()
	first := NewFixed(4)
	second := NewFixed(4)
	if err := v.Attach(0, first); err != nil {
		t.Fatalf("Attach first: %v", err)
	}
	if err := v.Attach(4, second); err != nil {
		t.Fatalf("Attach second: %v", err)
	}

	if err := v.Set(2, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Set spanning segments: %v", err)
	}

	got := make([]byte, 2)
	if err := first.Get(2, got); err != nil || got[0] != 1 || got[1] != 2 {
		t.Errorf("first segment tail: got %v, err %v, want [1 2]", got, err)
	}
	if err := second.Get(0, got); err != nil || got[0] != 3 || got[1] != 4 {
		t.Errorf("second segment head: got %v, err %v, want [3 4]", got, err)
	}
}
