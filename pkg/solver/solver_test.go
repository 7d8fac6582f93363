package solver

import (
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

func TestFillObviousForcesSnakeBetweenDanglingEnds(t *testing.T) {
	// A 1x3 strip with both ends as SnakeEnd: the middle cell has nowhere
	// to go but Snake (the region has no spare cells to host an Empty
	// pocket under Fix(0)).
	s := state.New(1, 3, board.Vec{X: 0, Y: 0}, board.Vec{X: 0, Y: 2}, policy.NewFix(0))
	var moves []board.Vec
	res := FillObvious(s, &moves)

	if res.Outcome != Solved {
		t.Fatalf("Outcome = %v, want Solved", res.Outcome)
	}
	if len(moves) != 1 || moves[0] != (board.Vec{X: 0, Y: 1}) {
		t.Fatalf("moves = %v, want a single forced move at (0,1)", moves)
	}
}

func TestFillObviousDetectsContradiction(t *testing.T) {
	// Fix(0) forbids any Empty region whatsoever, so every Unknown cell is
	// forced to Snake. Pre-placing a plus-shape of Snake cells around a
	// center cell leaves that center with 4 snake-kind neighbors: Snake is
	// refused (over 2 neighbors) and Empty is refused by Fix(0), so
	// fill_obvious must report a contradiction.
	s := state.NewEmpty(3, 3, policy.NewFix(0))
	s.Set(board.Vec{X: 1, Y: 0}, state.Snake)
	s.Set(board.Vec{X: 0, Y: 1}, state.Snake)
	s.Set(board.Vec{X: 2, Y: 1}, state.Snake)
	s.Set(board.Vec{X: 1, Y: 2}, state.Snake)

	res := FillObvious(s, nil)
	if res.Outcome != Contradiction {
		t.Fatalf("Outcome = %v, want Contradiction", res.Outcome)
	}
}

func TestSolveFindsConnectedCompletions(t *testing.T) {
	s := state.New(3, 1, board.Vec{X: 0, Y: 0}, board.Vec{X: 2, Y: 0}, policy.NewNone())
	results := Solve(s, 10)

	if len(results) == 0 {
		t.Fatal("expected at least one completed solution")
	}
	for _, r := range results {
		if r.Unknowns() != 0 {
			t.Errorf("solution has %d unknowns left, want 0", r.Unknowns())
		}
		if got := r.IsSnakeConnected(); got != state.Connected {
			t.Errorf("solution IsSnakeConnected() = %v, want Connected", got)
		}
	}
}

func TestSolveRespectsMaxResults(t *testing.T) {
	s := state.New(4, 4, board.Vec{X: 0, Y: 0}, board.Vec{X: 3, Y: 3}, policy.NewNone())
	results := Solve(s, 2)
	if len(results) > 2 {
		t.Fatalf("len(results) = %d, want at most 2", len(results))
	}
}
