// Package planner implements the reveal-and-deduce path search (R): given a
// start state and a known-good completed solution, it finds an order of
// cell reveals and forced deductions a human solver could follow, using a
// fewest-unknowns-first priority search with fingerprint deduplication and a
// bounded look-ahead contradiction check to keep each reveal "obvious"
// enough to be worth opening.
package planner

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/solver"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// roundBeamWidth caps how many queued items are expanded per round: only
// the best (fewest-unknowns) roundBeamWidth items survive a round, the rest
// of that round's queue is discarded. This bounds the search to a beam
// instead of letting the frontier grow without limit.
const roundBeamWidth = 100

// item is one candidate partial reveal-path: the state reached so far, the
// forced moves fill_obvious produced along the way, and the positions that
// were deliberately revealed (opened) to get unstuck.
type item struct {
	initialOpenCount int
	state            *state.State
	moves            []board.Vec
	initialOpen      []board.Vec
	finished         bool
}

func newItem(s *state.State) *item {
	if s.Unknowns() <= 0 {
		panic("planner: newItem requires a state with at least one Unknown cell")
	}
	return &item{state: s}
}

func (it *item) clone() *item {
	moves := make([]board.Vec, len(it.moves))
	copy(moves, it.moves)
	open := make([]board.Vec, len(it.initialOpen))
	copy(open, it.initialOpen)
	return &item{
		initialOpenCount: it.initialOpenCount,
		state:            it.state.Clone(),
		moves:            moves,
		initialOpen:      open,
		finished:         it.finished,
	}
}

// fingerprint hashes the item's board contents, opened-count and move
// history, so two different search paths that converge on the same
// position are only ever queued once.
func (it *item) fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	it.state.Positions(func(pos board.Vec) {
		h.Write([]byte{byte(it.state.Field(pos))})
	})

	binary.LittleEndian.PutUint64(buf[:], uint64(it.initialOpenCount))
	h.Write(buf[:])

	for _, m := range it.moves {
		binary.LittleEndian.PutUint64(buf[:], uint64(m.X))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(m.Y))
		h.Write(buf[:])
	}

	return h.Sum64()
}

func (it *item) withMove(pos board.Vec, value state.Cell) *item {
	it.state.Set(pos, value)
	it.moves = append(it.moves, pos)
	return it
}

func (it *item) withOpened(pos board.Vec, solution *state.State) *item {
	it.state.Set(pos, solution.Field(pos))
	it.initialOpenCount++
	it.initialOpen = append(it.initialOpen, pos)
	return it
}

// withFilled runs FillObvious on the item's state, recording every forced
// move. A resulting contradiction is a contract violation: every state this
// package ever builds is reachable from a real solution, so propagation
// must never dead-end it.
func (it *item) withFilled(solution *state.State) *item {
	res := solver.FillObvious(it.state, &it.moves)
	switch res.Outcome {
	case solver.Contradiction:
		panic(fmt.Sprintf("planner: propagation contradiction on a state derived from a known solution after moves %v", it.moves))
	case solver.Solved:
		it.finished = true
	default:
		it.finished = false
	}
	return it
}

// FindSolutionPath searches for a sequence of revealed positions
// (initialOpen) and the forced moves fill_obvious deduces between them
// (moves), such that replaying open-then-fill from begin reaches solution.
// maxAssumeDepth bounds the look-ahead contradiction search used to decide
// whether a reveal is productive.
func FindSolutionPath(begin *state.State, solution *state.State, maxAssumeDepth int) (initialOpen, moves []board.Vec) {
	items := []*item{newItem(begin)}
	result := findSolutionPath2(solution, items, maxAssumeDepth)
	return result.initialOpen, result.moves
}

func findSolutionPath2(solution *state.State, items []*item, maxDepth int) *item {
	seen := make(map[uint64]bool)

	for {
		if len(items) == 0 {
			panic("planner: search queue emptied without reaching a finished item")
		}

		sort.Slice(items, func(i, j int) bool {
			return items[i].state.Unknowns() < items[j].state.Unknowns()
		})

		round := items
		if len(round) > roundBeamWidth {
			round = round[:roundBeamWidth]
		}
		items = nil

		for _, it := range round {
			if it.finished {
				return it
			}

			it.state.Positions(func(pos board.Vec) {
				if it.state.Field(pos) != state.Unknown || solution.Field(pos) != state.Empty {
					return
				}

				candidate := it.clone().withOpened(pos, solution)
				next, _ := furtherItemMulti(candidate, maxDepth, solution)
				if fp := next.fingerprint(); !seen[fp] {
					seen[fp] = true
					items = append(items, next)
				}
			})
		}
	}
}

// furtherItemMulti repeatedly applies furtherItem until it stops making
// progress, returning the last successfully advanced item. It fails only if
// the very first attempt made no progress at all.
func furtherItemMulti(it *item, maxDepth int, solution *state.State) (*item, bool) {
	furthered := false
	for {
		next, progressed := furtherItem(it, maxDepth, solution)
		if !progressed {
			if furthered {
				return next, true
			}
			return next, false
		}
		it = next
		furthered = true
	}
}

// furtherItem runs fill_obvious on it, then (if maxDepth allows) looks for a
// single Unknown cell whose look-ahead contradiction search forces its
// value, applying that forced move as well. It reports whether it advanced
// the item's state at all (by fill or by a forced move).
func furtherItem(it *item, maxDepth int, solution *state.State) (*item, bool) {
	movesBefore := len(it.moves)
	it = it.withFilled(solution)

	if maxDepth > 0 {
		s := it.state
		var forced bool
		s.Positions(func(pos board.Vec) {
			if forced || s.Field(pos) != state.Unknown {
				return
			}

			snakeBranch := s.Clone()
			snakeBranch.Set(pos, state.Snake)
			switch findContradiction(snakeBranch, maxDepth, pos) {
			case crContradiction:
				it = it.withMove(pos, state.Empty).withFilled(solution)
				forced = true
				return
			case crSolved:
				it = it.withMove(pos, state.Snake).withFilled(solution)
				forced = true
				return
			}

			emptyBranch := s.Clone()
			emptyBranch.Set(pos, state.Empty)
			switch findContradiction(emptyBranch, maxDepth, pos) {
			case crContradiction:
				it = it.withMove(pos, state.Snake).withFilled(solution)
				forced = true
			case crSolved:
				it = it.withMove(pos, state.Empty).withFilled(solution)
				forced = true
			}
		})
		if forced {
			return it, true
		}
	}

	return it, len(it.moves) != movesBefore
}

type contradictionOutcome int

const (
	crNone contradictionOutcome = iota
	crContradiction
	crSolved
)

// findContradiction runs fill_obvious on s and, if that alone is
// inconclusive and depth remains, recurses on the 4-neighbors of lastPos
// (the most recently assumed cell) trying both values at each, looking for
// a branch that proves a contradiction or a full solution.
func findContradiction(s *state.State, restDepth int, lastPos board.Vec) contradictionOutcome {
	res := solver.FillObvious(s, nil)
	switch res.Outcome {
	case solver.Contradiction:
		return crContradiction
	case solver.Solved:
		return crSolved
	}

	if restDepth == 0 {
		return crNone
	}

	for _, pos := range s.Neighbors4(lastPos) {
		if s.Field(pos) != state.Unknown {
			continue
		}

		snakeBranch := s.Clone()
		snakeBranch.Set(pos, state.Snake)
		resSnake := findContradiction(snakeBranch, restDepth-1, pos)

		if resSnake == crSolved {
			return crSolved
		} else if resSnake == crNone {
			return crNone
		}

		emptyBranch := s.Clone()
		emptyBranch.Set(pos, state.Empty)
		resEmpty := findContradiction(emptyBranch, restDepth-1, pos)

		if resEmpty == crSolved {
			return crSolved
		}
		if resSnake == crContradiction && resEmpty == crContradiction {
			return crContradiction
		}
	}

	return crNone
}
