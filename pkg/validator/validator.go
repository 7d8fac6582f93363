// Package validator checks a serialized model.Level against the core's
// round-trip property (spec §8): replaying initial_open followed by
// fixpoint propagation (and the recorded moves, for whatever propagation
// alone could not deduce) must reconstruct the stored solution exactly.
package validator

import (
	"fmt"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/board"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/solver"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// Validate replays lvl's initial_open and moves against solver.FillObvious
// and reports whether the replay reconstructs the stored level exactly. A
// non-nil error identifies the first point of divergence; nil means the
// level is a genuine, replayable solution.
func Validate(lvl *model.Level) error {
	grid := lvl.Grid()

	a, b, err := findEndpoints(grid)
	if err != nil {
		return err
	}

	solution := replayGrid(grid)

	pol := lvl.EmptyPolicy.ToPolicy()
	replay := state.New(lvl.Width, lvl.Height, a, b, pol)

	moves := make([]board.Vec, 0, len(lvl.Moves))
	pendingMoves := toVecs(lvl.Moves)

	for _, p := range toVecs(lvl.InitialOpen) {
		if replay.Field(p) != state.Unknown {
			continue // the two endpoints are already placed by state.New
		}
		replay.Set(p, solution.Field(p))
	}

	for replay.Unknowns() > 0 {
		res := solver.FillObvious(replay, &moves)
		switch res.Outcome {
		case solver.Contradiction:
			return fmt.Errorf("validator: fill_obvious hit a contradiction replaying the recorded level")
		case solver.Solved:
			return finish(replay, solution)
		}

		if len(pendingMoves) == 0 {
			return fmt.Errorf("validator: replay stalled at %d unknowns with no recorded moves left to apply", replay.Unknowns())
		}
		next := pendingMoves[0]
		pendingMoves = pendingMoves[1:]
		if replay.Field(next) != state.Unknown {
			continue
		}
		replay.Set(next, solution.Field(next))
	}

	return finish(replay, solution)
}

func finish(replay, solution *state.State) error {
	if !replay.Equal(solution) {
		return fmt.Errorf("validator: replay diverged from the recorded solution")
	}
	if replay.IsSnakeConnected() != state.Connected {
		return fmt.Errorf("validator: replayed snake is %v, want Connected", replay.IsSnakeConnected())
	}
	return nil
}

// replayGrid reconstructs a fully-solved State from a level's literal
// symbol grid by Set-ing every cell in row-major order. A malformed grid
// (one that violates a legality predicate) panics, since a Level's grid
// came from a solver in the first place and should never be malformed.
func replayGrid(grid [][]state.Cell) *state.State {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	a, b, err := findEndpoints(grid)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}

	// The grid is already fully solved, so no legality decision here actually
	// consults the policy; policy.NewNone() is the cheapest stand-in.
	s := state.New(width, height, a, b, policy.NewNone())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := board.Vec{X: x, Y: y}
			if s.Field(pos) != state.Unknown {
				continue
			}
			s.Set(pos, grid[y][x])
		}
	}
	return s
}

func findEndpoints(grid [][]state.Cell) (a, b board.Vec, err error) {
	var found []board.Vec
	for y, row := range grid {
		for x, c := range row {
			if c == state.SnakeEnd {
				found = append(found, board.Vec{X: x, Y: y})
			}
		}
	}
	if len(found) != 2 {
		return board.Vec{}, board.Vec{}, fmt.Errorf("validator: expected exactly 2 snake-head cells, found %d", len(found))
	}
	return found[0], found[1], nil
}

func toVecs(pts []model.Point) []board.Vec {
	out := make([]board.Vec, len(pts))
	for i, p := range pts {
		out[i] = board.Vec{X: p.X, Y: p.Y}
	}
	return out
}
