package arena

import "testing"

func TestPushSpillsToNewBlock(t *testing.T) {
	a := New(16)
	a.Push(10)
	if a.BlockCount() != 1 {
		t.Fatalf("expected 1 block, got %d", a.BlockCount())
	}
	a.Push(10) // does not fit in the remaining 6 bytes of the first block
	if a.BlockCount() != 2 {
		t.Fatalf("expected spill to a second block, got %d blocks", a.BlockCount())
	}
}

func TestPushBeyondBlockSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for push larger than block size")
		}
	}()
	a := New(8)
	a.Push(9)
}

func TestPushReturnsZeroedMemory(t *testing.T) {
	a := New(64)
	buf := a.Push(8)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b)
		}
	}
}

func TestClearResetsCursor(t *testing.T) {
	a := New(16)
	a.Push(4)
	a.Clear()
	if a.BlockCount() != 0 {
		t.Fatalf("expected 0 blocks after Clear, got %d", a.BlockCount())
	}
}

func TestTypedArenaOneBasedIndex(t *testing.T) {
	ta := NewTyped[int](0)
	if got := ta.Get(0); got != nil {
		t.Fatalf("expected nil for index 0, got %v", got)
	}
	id := ta.Allocate(42)
	if id != 1 {
		t.Fatalf("expected first index to be 1, got %d", id)
	}
	if got := ta.Get(id); got == nil || *got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
}
