package validator

import (
	"math/rand"
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
)

func TestValidateAcceptsAGeneratedLevel(t *testing.T) {
	preset := config.Preset{
		Name: "test",
		GridSize: config.GridRange{
			MinWidth: 5, MaxWidth: 5,
			MinHeight: 5, MaxHeight: 5,
		},
		PolicyKind:         "fix",
		FixSize:            3,
		MaxAssumeDepth:     1,
		MaxSolverResults:   10,
		MaxGenerateRetries: 200,
	}

	rng := rand.New(rand.NewSource(7))
	result, err := generator.Generate(preset, rng)
	if err != nil {
		t.Fatal(err)
	}

	if err := Validate(result.Level); err != nil {
		t.Errorf("Validate rejected a freshly generated level: %v", err)
	}
}

func TestValidateRejectsATamperedMove(t *testing.T) {
	preset := config.Preset{
		Name: "test",
		GridSize: config.GridRange{
			MinWidth: 5, MaxWidth: 5,
			MinHeight: 5, MaxHeight: 5,
		},
		PolicyKind:         "fix",
		FixSize:            3,
		MaxAssumeDepth:     1,
		MaxSolverResults:   10,
		MaxGenerateRetries: 200,
	}

	rng := rand.New(rand.NewSource(7))
	result, err := generator.Generate(preset, rng)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Level.Moves) == 0 {
		t.Skip("this seed produced a level with no deduced moves to tamper with")
	}

	tampered := *result.Level
	// Dropping only the last move is not enough: replay re-derives it by
	// propagation. With every move dropped, replay stalls short of a solution.
	tampered.Moves = result.Level.Moves[:0]

	if err := Validate(&tampered); err == nil {
		t.Error("expected Validate to reject a level with a truncated moves list that can't reach a full solution")
	}
}
