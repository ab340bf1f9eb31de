package mem

import (
	"errors"
	"testing"
)

func TestEmptyAlwaysFails(t *testing.T) {
	var e Empty
	var memErr *Error

	if got := e.Len(); got != 0 {
		t.Errorf("Len: got %d, want 0", got)
	}
	if err := e.Get(0, make([]byte, 1)); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Get: got %v, want OutOfBounds", err)
	}
	if err := e.Set(0, []byte{1}); !errors.As(err, &memErr) || memErr.Kind != OutOfBounds {
		t.Errorf("Set: got %v, want OutOfBounds", err)
	}
}
