package model

import (
	"encoding/json"
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

func TestPointMarshalsAsTwoElementArray(t *testing.T) {
	data, err := json.Marshal(Point{X: 3, Y: 7})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[3,7]" {
		t.Errorf("got %s, want [3,7]", data)
	}

	var p Point
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatal(err)
	}
	if p.X != 3 || p.Y != 7 {
		t.Errorf("round-trip mismatch: %+v", p)
	}
}

func TestEmptyPolicyDTORoundTrips(t *testing.T) {
	cases := []EmptyPolicyDTO{
		{Kind: "none"},
		{Kind: "fix", N: 5},
		{Kind: "ascending", N: 4},
	}
	for _, c := range cases {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("%+v: %v", c, err)
		}
		var got EmptyPolicyDTO
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("%+v: %v", c, err)
		}
		if got != c {
			t.Errorf("round-trip mismatch: got %+v, want %+v (json=%s)", got, c, data)
		}
	}
}

func TestFromSolutionRendersSymbolGrid(t *testing.T) {
	s := state.New(1, 3, board.Vec{X: 0, Y: 0}, board.Vec{X: 0, Y: 2}, policy.NewFix(0))
	var moves []board.Vec
	s.Set(board.Vec{X: 0, Y: 1}, state.Snake)
	moves = append(moves, board.Vec{X: 0, Y: 1})

	lvl, err := FromSolution(s, 0, nil, moves, "test-author", NewEmptyPolicyDTO(policy.NewFix(0)))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"X", "+", "X"}
	for y, row := range lvl.LevelRows {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	if len(lvl.InitialOpen) != 2 {
		t.Fatalf("expected the two snake endpoints to be appended to initial_open, got %v", lvl.InitialOpen)
	}

	data, err := json.Marshal(lvl)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Level
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	grid := decoded.Grid()
	if grid[1][0] != state.Snake {
		t.Errorf("decoded grid middle cell = %v, want Snake", grid[1][0])
	}
}

func TestFromSolutionRejectsUnfinishedState(t *testing.T) {
	s := state.NewEmpty(3, 3, policy.NewNone())
	if _, err := FromSolution(s, 0, nil, nil, "a", NewEmptyPolicyDTO(policy.NewNone())); err == nil {
		t.Error("expected an error for a state with Unknown cells remaining")
	}
}
