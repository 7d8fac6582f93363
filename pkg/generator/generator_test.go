package generator

import (
	"math/rand"
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
)

func TestGenerateProducesAReplayableLevel(t *testing.T) {
	preset := config.Preset{
		Name: "test",
		GridSize: config.GridRange{
			MinWidth: 4, MaxWidth: 4,
			MinHeight: 4, MaxHeight: 4,
		},
		PolicyKind:         "none",
		MaxAssumeDepth:     0,
		MaxSolverResults:   10,
		MaxGenerateRetries: 200,
	}

	rng := rand.New(rand.NewSource(42))
	result, err := Generate(preset, rng)
	if err != nil {
		t.Fatal(err)
	}

	if result.Width != 4 || result.Height != 4 {
		t.Errorf("got %dx%d, want 4x4", result.Width, result.Height)
	}
	if len(result.Level.LevelRows) != 4 {
		t.Fatalf("expected 4 level rows, got %d", len(result.Level.LevelRows))
	}
	if len(result.Level.InitialOpen) < 2 {
		t.Error("expected at least the two snake endpoints in initial_open")
	}
}

func TestGenerateFailsWhenPolicyMakesEverySeedUnsolvable(t *testing.T) {
	preset := config.Preset{
		Name: "impossible",
		GridSize: config.GridRange{
			MinWidth: 4, MaxWidth: 4,
			MinHeight: 4, MaxHeight: 4,
		},
		PolicyKind:         "fix",
		FixSize:            16,
		MaxAssumeDepth:     0,
		MaxSolverResults:   1,
		MaxGenerateRetries: 3,
	}

	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(preset, rng); err == nil {
		t.Error("expected generation to fail: a 4x4 board has no room for both a >=3-cell snake and a fixed-16 empty region")
	}
}
