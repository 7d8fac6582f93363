// Package generator orchestrates the core packages into finished,
// human-solvable levels: picking a board size and endpoints for a given
// difficulty preset, solving it, planning a reveal path through the first
// solution found, and assembling the result into model.Level.
package generator

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/planner"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/solver"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
)

// Result bundles a generated level with the bookkeeping a caller might log
// or use to pick a filename.
type Result struct {
	Level    *model.Level
	Attempts int
	Width    int
	Height   int
}

// Generate builds one level from preset, retrying with a fresh random
// board up to preset.MaxGenerateRetries times whenever the solver reports
// a contradiction or finds no solution. rng drives both the board's size
// and its endpoint placement, so a seeded source makes the whole run
// reproducible.
func Generate(preset config.Preset, rng state.Rand) (*Result, error) {
	return GenerateWatched(preset, rng, nil)
}

// GenerateWatched behaves exactly like Generate, except observe (if
// non-nil) is called with a snapshot of each attempt's random starting
// board and, for the attempt that succeeds, the completed solution — for
// streaming generation progress to something like pkg/liveserve.
func GenerateWatched(preset config.Preset, rng state.Rand, observe func(*state.State)) (*Result, error) {
	var lastErr error
	for attempt := 1; attempt <= preset.MaxGenerateRetries; attempt++ {
		width := randBetween(rng, preset.GridSize.MinWidth, preset.GridSize.MaxWidth)
		height := randBetween(rng, preset.GridSize.MinHeight, preset.GridSize.MaxHeight)

		pol, err := preset.BuildPolicy(width, height)
		if err != nil {
			return nil, err
		}

		s := state.NewRandom(width, height, rng, pol)
		begin := s.Clone()
		if observe != nil {
			observe(begin)
		}

		results := solver.Solve(s, preset.MaxSolverResults)
		if len(results) == 0 {
			lastErr = fmt.Errorf("no solution within %d results", preset.MaxSolverResults)
			continue
		}
		solution := results[0]
		if observe != nil {
			observe(solution)
		}

		initialOpen, moves := planner.FindSolutionPath(begin, solution, preset.MaxAssumeDepth)

		lvl, err := model.FromSolution(solution, preset.MaxAssumeDepth, initialOpen, moves, uuid.NewString(), model.NewEmptyPolicyDTO(pol))
		if err != nil {
			return nil, fmt.Errorf("generator: %w", err)
		}

		return &Result{Level: lvl, Attempts: attempt, Width: width, Height: height}, nil
	}

	return nil, fmt.Errorf("generator: exhausted %d attempts for preset %q: %w", preset.MaxGenerateRetries, preset.Name, lastErr)
}

func randBetween(rng state.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
