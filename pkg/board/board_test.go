package board

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec{2, 3}
	b := Vec{1, -1}

	if got := a.Add(b); got != (Vec{3, 2}) {
		t.Errorf("Add = %v, want (3,2)", got)
	}
	if got := a.Sub(b); got != (Vec{1, 4}) {
		t.Errorf("Sub = %v, want (1,4)", got)
	}
	if got := b.Neg(); got != (Vec{-1, 1}) {
		t.Errorf("Neg = %v, want (-1,1)", got)
	}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %d, want 5", got)
	}
}

func TestBoardGetSetBounds(t *testing.T) {
	b := New(3, 2, 0)

	if !b.Set(Vec{1, 1}, 7) {
		t.Fatal("Set in-bounds should succeed")
	}
	if v, ok := b.Get(Vec{1, 1}); !ok || v != 7 {
		t.Errorf("Get(1,1) = %d,%v want 7,true", v, ok)
	}
	if _, ok := b.Get(Vec{3, 0}); ok {
		t.Error("Get out-of-bounds x should fail")
	}
	if _, ok := b.Get(Vec{0, -1}); ok {
		t.Error("Get out-of-bounds y should fail")
	}
	if b.Set(Vec{-1, 0}, 5) {
		t.Error("Set out-of-bounds should fail")
	}
}

func TestBoardPositionsRowMajor(t *testing.T) {
	b := New(2, 2, 0)
	var order []Vec
	b.Positions(func(v Vec) { order = append(order, v) })

	want := []Vec{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if len(order) != len(want) {
		t.Fatalf("got %d positions, want %d", len(order), len(want))
	}
	for i, v := range want {
		if order[i] != v {
			t.Errorf("position %d = %v, want %v", i, order[i], v)
		}
	}
}

func TestCountNeighbors4(t *testing.T) {
	b := New(3, 3, 0)
	if n := b.CountNeighbors4(Vec{1, 1}); n != 4 {
		t.Errorf("center neighbors = %d, want 4", n)
	}
	if n := b.CountNeighbors4(Vec{0, 0}); n != 2 {
		t.Errorf("corner neighbors = %d, want 2", n)
	}
	if n := b.CountNeighbors4(Vec{1, 0}); n != 3 {
		t.Errorf("edge neighbors = %d, want 3", n)
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	b := New(2, 2, 0)
	b.Set(Vec{0, 0}, 1)
	c := b.Clone()
	c.Set(Vec{0, 0}, 2)

	if v, _ := b.Get(Vec{0, 0}); v != 1 {
		t.Errorf("original mutated after clone: got %d, want 1", v)
	}
	if v, _ := c.Get(Vec{0, 0}); v != 2 {
		t.Errorf("clone not updated: got %d, want 2", v)
	}
}

func TestExplorerBFSOrder(t *testing.T) {
	e := NewExplorer(3, 1)
	e.EnqueueAll([]Vec{{0, 0}, {1, 0}, {0, 0}})

	var popped []Vec
	for {
		v, ok := e.Pop()
		if !ok {
			break
		}
		popped = append(popped, v)
	}

	if len(popped) != 2 {
		t.Fatalf("expected 2 unique positions, got %d", len(popped))
	}
	if popped[0] != (Vec{0, 0}) || popped[1] != (Vec{1, 0}) {
		t.Errorf("unexpected pop order: %v", popped)
	}
}
