package state

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
)

func TestNewRandomPlacesEndpointsAtLeastDistanceTwoApart(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		s := NewRandom(4, 4, rng, policy.NewNone())
		ends := s.SnakeEnds()
		if len(ends) != 2 {
			t.Fatalf("expected 2 endpoints, got %d", len(ends))
		}
		if ends[0].Dist(ends[1]) < 2 {
			t.Fatalf("endpoints %v and %v are closer than Manhattan distance 2", ends[0], ends[1])
		}
	}
}

func TestNewPanicsOnTooCloseEndpoints(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for endpoints at Manhattan distance < 2")
		}
	}()
	New(5, 5, board.Vec{X: 0, Y: 0}, board.Vec{X: 1, Y: 0}, policy.NewNone())
}

func TestNewEmptySeedsNeighborCounts(t *testing.T) {
	s := NewEmpty(3, 3, policy.NewNone())
	if s.Unknowns() != 9 {
		t.Fatalf("Unknowns() = %d, want 9", s.Unknowns())
	}
	if got := s.UnknownAround(board.Vec{X: 1, Y: 1}); got != 4 {
		t.Errorf("center cell should have 4 neighbors, got %d", got)
	}
	if got := s.UnknownAround(board.Vec{X: 0, Y: 0}); got != 2 {
		t.Errorf("corner cell should have 2 neighbors, got %d", got)
	}
}

func TestSetRejectsNonUnknownCell(t *testing.T) {
	s := New(5, 5, board.Vec{X: 0, Y: 0}, board.Vec{X: 4, Y: 4}, policy.NewNone())
	defer func() {
		if recover() == nil {
			t.Error("expected panic when Set targets an already-placed cell")
		}
	}()
	s.Set(board.Vec{X: 0, Y: 0}, Snake)
}

func TestSnakeAllowedRejectsThirdSnakeNeighbor(t *testing.T) {
	s := NewEmpty(3, 3, policy.NewNone())
	center := board.Vec{X: 1, Y: 1}
	s.Set(board.Vec{X: 0, Y: 1}, Snake)
	s.Set(board.Vec{X: 1, Y: 0}, Snake)
	s.Set(board.Vec{X: 2, Y: 1}, Snake)
	if s.SnakeAllowed(center) {
		t.Error("a cell with 3 snake neighbors must not allow Snake (max 2)")
	}
}

func TestSnakeAllowedRejectsClosingACycle(t *testing.T) {
	// A 2x2 board with three sides of the loop already Snake: the fourth
	// corner touches the same segment on two sides, so placing Snake there
	// would close a 4-cycle and must be refused.
	s := NewEmpty(2, 2, policy.NewNone())
	s.Set(board.Vec{X: 0, Y: 0}, Snake)
	s.Set(board.Vec{X: 1, Y: 0}, Snake)
	s.Set(board.Vec{X: 1, Y: 1}, Snake)

	if s.SnakeAllowed(board.Vec{X: 0, Y: 1}) {
		t.Error("closing the loop's last corner must not be allowed")
	}
}

func TestEmptyAllowedRejectsGrowingPastFixedSize(t *testing.T) {
	// Fix(3): growing an Empty region to size 3 is fine, but a fourth cell
	// would push it past the only size the policy allows.
	s := NewEmpty(6, 1, policy.NewFix(3))
	s.Set(board.Vec{X: 0, Y: 0}, Empty)
	s.Set(board.Vec{X: 1, Y: 0}, Empty)
	s.Set(board.Vec{X: 2, Y: 0}, Empty)

	if s.EmptyAllowed(board.Vec{X: 3, Y: 0}) {
		t.Error("growing a Fix(3) region to size 4 must not be allowed")
	}
}

func TestIsSnakeConnectedTransitions(t *testing.T) {
	s := New(5, 3, board.Vec{X: 0, Y: 0}, board.Vec{X: 4, Y: 0}, policy.NewNone())
	if got := s.IsSnakeConnected(); got != Unconnected {
		t.Fatalf("fresh state should be Unconnected, got %v", got)
	}

	s.Set(board.Vec{X: 1, Y: 0}, Snake)
	s.Set(board.Vec{X: 2, Y: 0}, Snake)
	if got := s.IsSnakeConnected(); got != Unconnected {
		t.Fatalf("still-unjoined ends should be Unconnected, got %v", got)
	}

	s.Set(board.Vec{X: 3, Y: 0}, Snake)
	if got := s.IsSnakeConnected(); got != Connected {
		t.Fatalf("fully joined chain should be Connected, got %v", got)
	}

	// An isolated Snake cell elsewhere on the board, not touching the
	// joined chain, makes the snake as a whole Distributed even though the
	// two endpoints remain joined to each other.
	s.Set(board.Vec{X: 2, Y: 2}, Snake)
	if got := s.IsSnakeConnected(); got != Distributed {
		t.Fatalf("a stray disconnected Snake cell should make the board Distributed, got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(5, 5, board.Vec{X: 0, Y: 0}, board.Vec{X: 4, Y: 4}, policy.NewNone())
	c := s.Clone()
	c.Set(board.Vec{X: 1, Y: 0}, Snake)

	if s.Field(board.Vec{X: 1, Y: 0}) != Unknown {
		t.Error("mutating the clone must not affect the original")
	}
	if s.Unknowns() == c.Unknowns() {
		t.Error("clone and original should have diverged in Unknowns() after the clone-only Set")
	}
}

// hand11x11Board is the literal 11x11 Fix(5) fixture taken from the
// original generator's manual playthrough, reshaped into a per-row string
// slice. '+' is Snake, '.' is Empty, 'X' marks the two SnakeEnd endpoints
// that are placed by New before this pattern is replayed.
var hand11x11Board = []string{
	"...+++..+++",
	".+++.+.++.+",
	".+...+.+..+",
	"++.+++.+.++",
	"+.++..++.+.",
	"+.+..++.++.",
	"+.++.+..+..",
	"+..+++..++.",
	"+++...+X.++",
	"..++..+...+",
	"...++++.X++",
}

func TestHand11x11Fix5SolutionReplaysWithoutContradiction(t *testing.T) {
	a := board.Vec{X: 7, Y: 8}
	b := board.Vec{X: 8, Y: 10}
	s := New(11, 11, a, b, policy.NewFix(5))

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			pos := board.Vec{X: x, Y: y}
			if s.Field(pos) != Unknown {
				continue
			}
			switch hand11x11Board[y][x] {
			case '.':
				if !s.EmptyAllowed(pos) {
					t.Fatalf("Empty disallowed at %v, but the hand solution places Empty there", pos)
				}
				s.Set(pos, Empty)
			case '+':
				if !s.SnakeAllowed(pos) {
					t.Fatalf("Snake disallowed at %v, but the hand solution places Snake there", pos)
				}
				s.Set(pos, Snake)
			default:
				t.Fatalf("unexpected fixture rune %q at %v", hand11x11Board[y][x], pos)
			}
		}
	}

	if s.Unknowns() != 0 {
		t.Fatalf("Unknowns() = %d, want 0 after replaying the full hand solution", s.Unknowns())
	}
	if got := s.IsSnakeConnected(); got != Connected {
		t.Fatalf("IsSnakeConnected() = %v, want Connected", got)
	}
}

func TestDebugRendersBorderedGrid(t *testing.T) {
	s := NewEmpty(2, 2, policy.NewNone())
	out := s.Debug()
	if !strings.HasPrefix(out, "x--x\n") {
		t.Errorf("Debug() should open with a dashed border, got %q", out)
	}
}
