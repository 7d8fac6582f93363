// Package state implements the mutable partial grid state (S): a board of
// Unknown/Snake/SnakeEnd/Empty cells, a union-find tracking snake segments
// and empty regions, and the bookkeeping counters and legality predicates
// that keep I1-I6 of the core invariants intact after every Set.
//
// State is built once via New or NewEmpty, then driven to completion by
// repeated Set calls from the solver and planner. It is never mutated back
// from a later value to an earlier one: cells only ever transition
// Unknown -> {Snake, SnakeEnd, Empty}. Cloning is deep, which is how the
// solver's branching and the planner's queued items each get a private
// state to mutate without disturbing their siblings.
package state

import (
	"fmt"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/unionfind"
)

// Cell is the value of a single grid cell.
type Cell int

const (
	Unknown Cell = iota
	Snake
	SnakeEnd
	Empty
)

func (c Cell) String() string {
	switch c {
	case Unknown:
		return " "
	case Snake:
		return "+"
	case SnakeEnd:
		return "X"
	case Empty:
		return "."
	default:
		return "?"
	}
}

// IsSnake reports whether c is a snake-kind cell (Snake or SnakeEnd).
func (c Cell) IsSnake() bool { return c == Snake || c == SnakeEnd }

// IsEmpty reports whether c is Empty.
func (c Cell) IsEmpty() bool { return c == Empty }

// MaxSnakeNeighbors returns the maximum number of snake-kind 4-neighbors a
// cell of this value may have: 1 for SnakeEnd, 2 for Snake, 4 (i.e.
// unconstrained by this rule) for Empty and Unknown.
func (c Cell) MaxSnakeNeighbors() int {
	switch c {
	case Snake:
		return 2
	case SnakeEnd:
		return 1
	default:
		return 4
	}
}

// Connectedness classifies how the snake relates to its two endpoints.
type Connectedness int

const (
	Unconnected Connectedness = iota
	Connected
	Distributed
)

// State is the mutable partial grid described in spec §3-§4.
type State struct {
	board             *board.Board[Cell]
	unions            *unionfind.UnionFind
	snakeEnds         []board.Vec
	unknowns          int
	snakeCount        int
	unenclosedEmpties int
	empties           policy.Policy
}

// NewEmpty creates a width x height board with every cell Unknown and the
// given empty-region policy. Each cell's union-find payload is seeded with
// its in-board 4-neighbor count, per invariant I3's precondition.
func NewEmpty(width, height int, p policy.Policy) *State {
	b := board.New(width, height, Unknown)
	u := unionfind.New(width*height, unionfind.IntPayload(0))

	b.Positions(func(pos board.Vec) {
		id, _ := b.Index(pos)
		u.SetPayload(id, unionfind.IntPayload(b.CountNeighbors4(pos)))
	})

	return &State{
		board:    b,
		unions:   u,
		unknowns: width * height,
		empties:  p,
	}
}

// New creates a width x height board with endpoints a and b already placed
// as SnakeEnd cells. It panics if the Manhattan distance between a and b is
// less than 2 (a contract violation per §4.4).
func New(width, height int, a, b board.Vec, p policy.Policy) *State {
	if a.Dist(b) < 2 {
		panic(fmt.Sprintf("state: endpoints %v and %v must be at least Manhattan distance 2 apart", a, b))
	}
	s := NewEmpty(width, height, p)
	s.Set(a, SnakeEnd)
	s.Set(b, SnakeEnd)
	return s
}

// Rand is the opaque pseudorandom source §6 asks the random endpoint
// constructor to consume, kept minimal so callers can adapt any generator
// (math/rand, a seeded PRNG, a test double) without this package importing
// one concretely.
type Rand interface {
	Intn(n int) int
}

// NewRandom builds a width x height board with two endpoints chosen
// uniformly at random among the positions satisfying the Manhattan
// distance >= 2 constraint New enforces. It panics if no such pair exists
// (boards smaller than the constraint can ever allow).
func NewRandom(width, height int, rng Rand, p policy.Policy) *State {
	total := width * height
	if total < 2 {
		panic("state: NewRandom requires at least 2 cells")
	}

	randPos := func() board.Vec {
		id := rng.Intn(total)
		return board.Vec{X: id % width, Y: id / width}
	}

	a := randPos()
	for attempts := 0; attempts < 10000; attempts++ {
		b := randPos()
		if a.Dist(b) >= 2 {
			return New(width, height, a, b, p)
		}
	}
	panic("state: NewRandom could not find two positions at Manhattan distance >= 2")
}

// Width returns the board width.
func (s *State) Width() int { return s.board.Width }

// Height returns the board height.
func (s *State) Height() int { return s.board.Height }

// Field returns the value of the cell at pos.
func (s *State) Field(pos board.Vec) Cell {
	return s.board.MustGet(pos)
}

// Unknowns returns the number of cells still Unknown.
func (s *State) Unknowns() int { return s.unknowns }

// SnakeEnds returns the positions of the (at most two) SnakeEnd cells.
func (s *State) SnakeEnds() []board.Vec {
	out := make([]board.Vec, len(s.snakeEnds))
	copy(out, s.snakeEnds)
	return out
}

// Positions iterates every grid position in row-major order.
func (s *State) Positions(fn func(board.Vec)) {
	s.board.Positions(fn)
}

func (s *State) neighbors4(pos board.Vec) []board.Vec {
	return s.board.NeighborPositions4(pos)
}

// Neighbors4 returns the in-board 4-neighbors of pos. Exposed for callers
// outside the package (the planner's look-ahead search) that need to walk
// outward from a just-assumed cell the same way Set and the legality
// predicates do.
func (s *State) Neighbors4(pos board.Vec) []board.Vec {
	return s.neighbors4(pos)
}

func (s *State) unionID(pos board.Vec) int {
	id, ok := s.board.Index(pos)
	if !ok {
		panic(fmt.Sprintf("state: position %v out of bounds", pos))
	}
	return id
}

// SnakesAround returns the number of 4-neighbors of pos that are snake-kind.
func (s *State) SnakesAround(pos board.Vec) int {
	n := 0
	for _, p := range s.neighbors4(pos) {
		if s.Field(p).IsSnake() {
			n++
		}
	}
	return n
}

// UnknownAround returns the number of 4-neighbors of pos that are Unknown.
func (s *State) UnknownAround(pos board.Vec) int {
	n := 0
	for _, p := range s.neighbors4(pos) {
		if s.Field(p) == Unknown {
			n++
		}
	}
	return n
}

// IsDanglingSnake reports whether pos is a snake-kind cell whose current
// snake-neighbor count is below its maximum.
func (s *State) IsDanglingSnake(pos board.Vec) bool {
	f := s.Field(pos)
	return f.IsSnake() && s.SnakesAround(pos) < f.MaxSnakeNeighbors()
}

// Set writes value into the Unknown cell at pos, maintaining I1-I6.
// It panics (a contract violation, not a recoverable error) if pos is not
// currently Unknown, if value is Unknown, or if the matching legality
// predicate (SnakeAllowed/EmptyAllowed) does not hold.
func (s *State) Set(pos board.Vec, value Cell) {
	if s.Field(pos) != Unknown {
		panic(fmt.Sprintf("state: Set called on non-Unknown cell %v (value %v)", pos, s.Field(pos)))
	}

	s.unknowns--

	switch value {
	case Unknown:
		panic("state: cannot Set a cell to Unknown")
	case Snake, SnakeEnd:
		if !s.SnakeAllowed(pos) {
			panic(fmt.Sprintf("state: SnakeAllowed precondition violated at %v", pos))
		}
		s.board.Set(pos, value)
		s.snakeCount++

		for _, p := range s.neighbors4(pos) {
			id := s.unionID(p)
			s.unions.SetPayload(id, s.unions.GetPayload(id).(unionfind.IntPayload)-1)

			switch {
			case s.Field(p).IsSnake():
				merged, _ := s.unions.Merge(s.unionID(pos), id)
				if !merged {
					panic("state: expected snake cells to merge into distinct sets")
				}
			case s.Field(p).IsEmpty():
				if s.unions.GetPayload(id).(unionfind.IntPayload) == 0 {
					size := s.unions.Size(id)
					s.empties.Notify(size)
					s.unenclosedEmpties -= size
				}
			}
		}

		if value == SnakeEnd {
			s.snakeEnds = append(s.snakeEnds, pos)
		}

	case Empty:
		if !s.EmptyAllowed(pos) {
			panic(fmt.Sprintf("state: EmptyAllowed precondition violated at %v", pos))
		}
		s.board.Set(pos, value)
		s.unenclosedEmpties++

		for _, p := range s.neighbors4(pos) {
			id := s.unionID(p)
			s.unions.SetPayload(id, s.unions.GetPayload(id).(unionfind.IntPayload)-1)

			if s.Field(p).IsEmpty() {
				s.unions.Merge(s.unionID(pos), id)
			}
		}

		selfID := s.unionID(pos)
		if s.unions.GetPayload(selfID).(unionfind.IntPayload) == 0 {
			size := s.unions.Size(selfID)
			s.empties.Notify(size)
			s.unenclosedEmpties -= size
		}
	}
}

type emptyCluster struct {
	size             int
	unknownNeighbors int
}

// SnakeAllowed reports whether pos (which must currently be Unknown) may
// legally be set to Snake/SnakeEnd.
func (s *State) SnakeAllowed(pos board.Vec) bool {
	if s.Field(pos) != Unknown {
		return false
	}

	if s.SnakesAround(pos) > 2 {
		return false
	}

	var firstSeg = -1
	haveFirstSeg := false
	clusters := make(map[int]*emptyCluster)
	forkedPolicy := s.empties.Clone()

	for _, p := range s.neighbors4(pos) {
		f := s.Field(p)
		switch {
		case f.IsSnake():
			seg := s.unions.Find(s.unionID(p))
			sameAsFirst := haveFirstSeg && seg == firstSeg
			firstSeg, haveFirstSeg = seg, true
			if sameAsFirst || !s.IsDanglingSnake(p) {
				return false
			}
		case f.IsEmpty():
			id := s.unions.Find(s.unionID(p))
			c, ok := clusters[id]
			if !ok {
				c = &emptyCluster{
					size:             s.unions.Size(id),
					unknownNeighbors: int(s.unions.GetPayload(id).(unionfind.IntPayload)),
				}
				clusters[id] = c
			}
			if c.unknownNeighbors <= 1 {
				if !forkedPolicy.Allowed(c.size) {
					return false
				}
				forkedPolicy.Notify(c.size)
			}
			c.unknownNeighbors--
		}
	}

	return true
}

// EmptyAllowed reports whether pos (which must currently be Unknown) may
// legally be set to Empty.
func (s *State) EmptyAllowed(pos board.Vec) bool {
	if s.Field(pos) != Unknown {
		return false
	}

	clusterCount := 1
	remaining := make(map[int]int)

	for _, p := range s.neighbors4(pos) {
		f := s.Field(p)
		switch {
		case f.IsEmpty():
			id := s.unions.Find(s.unionID(p))
			if _, ok := remaining[id]; !ok {
				clusterCount += s.unions.Size(id)
				remaining[id] = int(s.unions.GetPayload(id).(unionfind.IntPayload))
			}
			remaining[id]--
		case f.IsSnake():
			snakesAround := s.SnakesAround(p)
			unknownAround := s.UnknownAround(p)
			if unknownAround <= f.MaxSnakeNeighbors()-snakesAround {
				return false
			}
		}
	}

	selfUnknownNeighbors := int(s.unions.GetPayload(s.unionID(pos)).(unionfind.IntPayload))
	willNotBeClosed := selfUnknownNeighbors >= 1
	if !willNotBeClosed {
		for _, left := range remaining {
			if left > 0 {
				willNotBeClosed = true
				break
			}
		}
	}

	return s.empties.Allowed(clusterCount) ||
		(s.empties.CouldBecomeAllowed(clusterCount) && willNotBeClosed)
}

// IsSnakeConnected classifies the snake per §3: Unconnected if fewer than
// two endpoints exist or they are in different union-find sets, Connected
// if they share a set whose size equals the total snake cell count, and
// Distributed if they share a set but other snake cells exist outside it.
func (s *State) IsSnakeConnected() Connectedness {
	if len(s.snakeEnds) < 2 {
		return Unconnected
	}
	ra := s.unions.Find(s.unionID(s.snakeEnds[0]))
	rb := s.unions.Find(s.unionID(s.snakeEnds[1]))
	if ra != rb {
		return Unconnected
	}
	if s.unions.Size(ra) == s.snakeCount {
		return Connected
	}
	return Distributed
}

// UnenclosedEmpties returns the total number of cells in empty regions that
// still touch at least one Unknown cell.
func (s *State) UnenclosedEmpties() int { return s.unenclosedEmpties }

// EmptyPolicyStillPossible reports whether the board's empty-region size
// policy can still be satisfied given remainingUnenclosed cells left to
// assign. Exposed so the solver can prune a branch whose propagated state
// has already made the policy unsatisfiable, without reaching into the
// policy itself.
func (s *State) EmptyPolicyStillPossible(remainingUnenclosed int) bool {
	return s.empties.IsStillPossible(remainingUnenclosed)
}

// SnakeCount returns the number of Snake/SnakeEnd cells placed so far.
func (s *State) SnakeCount() int { return s.snakeCount }

// Clone returns a deep copy of the state, including its policy and
// union-find. This backs the solver's branching and the planner's queued
// items, each of which owns a private state to mutate.
func (s *State) Clone() *State {
	ends := make([]board.Vec, len(s.snakeEnds))
	copy(ends, s.snakeEnds)

	return &State{
		board:             s.board.Clone(),
		unions:            s.unions.Clone(),
		snakeEnds:         ends,
		unknowns:          s.unknowns,
		snakeCount:        s.snakeCount,
		unenclosedEmpties: s.unenclosedEmpties,
		empties:           s.empties.Clone(),
	}
}

// Equal reports whether two states have identical board contents. Used by
// the planner's fingerprint dedup and by round-trip tests.
func (s *State) Equal(o *State) bool {
	return s.board.Equal(o.board, func(a, b Cell) bool { return a == b })
}

// Debug renders the board as a human-readable grid, with Unknown cells
// showing their current union-find payload (the unknown-neighbor count)
// instead of a blank, matching the original generator's debug dump.
func (s *State) Debug() string {
	out := fmt.Sprintf("x%sx\n", dashes(s.Width()))
	for y := 0; y < s.Height(); y++ {
		out += "|"
		for x := 0; x < s.Width(); x++ {
			pos := board.Vec{X: x, Y: y}
			if s.Field(pos) == Unknown {
				out += fmt.Sprintf("%d", s.unions.GetPayload(s.unionID(pos)).(unionfind.IntPayload))
			} else {
				out += s.Field(pos).String()
			}
		}
		out += "|\n"
	}
	out += fmt.Sprintf("x%sx\n", dashes(s.Width()))
	return out
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
