// Package solver implements the constraint-propagation fixpoint and the
// bounded exhaustive branching search (V) that either enumerates completed
// grids or proves a partial state has no solution.
package solver

import (
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// Outcome classifies the result of FillObvious.
type Outcome int

const (
	// Contradiction means the state can never be completed.
	Contradiction Outcome = iota
	// Solved means the state is complete and the snake is Connected.
	Solved
	// Ok means propagation reached a fixpoint with Unknown cells remaining
	// and no contradiction detected (yet).
	Ok
)

// Result is the outcome of a single FillObvious pass.
type Result struct {
	Outcome Outcome
	State   *state.State
}

// FillObvious repeatedly scans every position for forced placements (a cell
// whose SnakeAllowed or EmptyAllowed is false, forcing the other value) and
// applies them, until a full pass makes no change. Every cell it sets is
// appended to moves in the order deduced. It mutates and returns s in
// place: callers that need the pre-propagation state should Clone first.
func FillObvious(s *state.State, moves *[]board.Vec) Result {
	for {
		changed := false
		contradiction := false

		s.Positions(func(pos board.Vec) {
			if contradiction {
				return
			}
			f := s.Field(pos)
			if f.IsSnake() && s.IsDanglingSnake(pos) {
				needed := f.MaxSnakeNeighbors() - s.SnakesAround(pos)
				if s.UnknownAround(pos) < needed {
					contradiction = true
					return
				}
			}

			if f != state.Unknown {
				return
			}

			snakeAllowed := s.SnakeAllowed(pos)
			emptyAllowed := s.EmptyAllowed(pos)

			switch {
			case !snakeAllowed && !emptyAllowed:
				contradiction = true
			case !snakeAllowed:
				s.Set(pos, state.Empty)
				if moves != nil {
					*moves = append(*moves, pos)
				}
				changed = true
			case !emptyAllowed:
				s.Set(pos, state.Snake)
				if moves != nil {
					*moves = append(*moves, pos)
				}
				changed = true
			}
		})

		if contradiction {
			return Result{Outcome: Contradiction}
		}
		if !changed {
			break
		}
	}

	connected := s.IsSnakeConnected()
	if connected == state.Distributed || !s.EmptyPolicyStillPossible(s.UnenclosedEmpties()+s.Unknowns()) {
		return Result{Outcome: Contradiction}
	}
	if s.Unknowns() == 0 {
		if connected == state.Connected {
			return Result{Outcome: Solved, State: s}
		}
		return Result{Outcome: Contradiction}
	}
	return Result{Outcome: Ok, State: s}
}

// Solve runs FillObvious, then picks the first Unknown cell in row-major
// order and recurses with it set to Snake, then independently (from the
// pre-branch state) set to Empty, appending every Solved state to the
// return slice. It stops branching as soon as maxResults solutions have
// been found. The row-major "first Unknown" tie-break is the one the
// original generator published; a stronger heuristic (most-constrained
// variable) would change which solutions are enumerated first and so is
// deliberately not substituted here.
func Solve(s *state.State, maxResults int) []*state.State {
	var results []*state.State
	solve(s, &results, maxResults)
	return results
}

func solve(s *state.State, results *[]*state.State, maxResults int) {
	if len(*results) >= maxResults {
		return
	}

	res := FillObvious(s, nil)
	switch res.Outcome {
	case Contradiction:
		return
	case Solved:
		*results = append(*results, res.State)
		return
	}

	var branchPos board.Vec
	found := false
	s.Positions(func(pos board.Vec) {
		if found {
			return
		}
		if s.Field(pos) == state.Unknown {
			branchPos = pos
			found = true
		}
	})
	if !found {
		return
	}

	snakeBranch := s.Clone()
	snakeBranch.Set(branchPos, state.Snake)
	solve(snakeBranch, results, maxResults)

	emptyBranch := s
	emptyBranch.Set(branchPos, state.Empty)
	solve(emptyBranch, results, maxResults)
}
