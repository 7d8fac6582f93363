package generate

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/liveserve"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/state"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/validator"
)

var (
	count     int
	seed      int64
	preset    string
	pack      string
	overwrite bool
	watchAddr string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate new puzzle levels",
	Long: `Generate new snake logic puzzle levels.

Picks a board size and endpoint pair for the chosen difficulty preset,
solves it, plans a human-followable reveal path, and writes the result to
levels/. When --pack is set, every generated level is also recorded in
data/packs.json under that pack name.

Examples:
  level-builder generate --count 50 --preset nurturing
  level-builder gen -c 20 -v
  level-builder g -c 10 --seed 12345
  level-builder g --pack garden-1 --preset flourishing -c 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading presets: %w", err)
		}
		p, err := presets.Get(preset)
		if err != nil {
			return err
		}

		common.Info("Starting level generation...")
		common.Verbose("Generating %d levels at preset %q", count, preset)
		if seed != 0 {
			common.Verbose("Using base seed: %d", seed)
		}

		rng := rand.New(rand.NewSource(resolveSeed(seed)))

		var observe func(*state.State)
		if watchAddr != "" {
			broadcaster := liveserve.New()
			go func() {
				if err := broadcaster.ListenAndServe(watchAddr, "/watch"); err != nil {
					common.Warning("liveserve: %v", err)
				}
			}()
			common.Info("Streaming generation progress at ws://%s/watch", watchAddr)
			observe = broadcaster.Send
		}

		generated := 0
		for i := 0; i < count; i++ {
			result, err := generator.GenerateWatched(p, rng, observe)
			if err != nil {
				return fmt.Errorf("generation failed after %d/%d levels: %w", generated, count, err)
			}
			if err := validator.Validate(result.Level); err != nil {
				return fmt.Errorf("generated level failed validation: %w", err)
			}

			path, err := common.LevelFilePath(result.Level.Author)
			if err != nil {
				return err
			}
			if err := common.WriteLevel(path, result.Level, overwrite); err != nil {
				return err
			}

			if pack != "" {
				packsFile, err := common.PacksFile()
				if err != nil {
					return err
				}
				if err := common.AppendToPack(packsFile, pack, preset, result.Level.Author); err != nil {
					return fmt.Errorf("failed to update %s: %w", packsFile, err)
				}
			}

			generated++
			common.Verbose("Generated level %s (%dx%d, %d attempts) -> %s", result.Level.Author, result.Width, result.Height, result.Attempts, path)
		}

		common.Info("✓ Successfully generated %d levels", generated)
		return nil
	},
}

// resolveSeed falls back to a fixed default when seed is 0, so --seed 0
// (the flag's zero value) still yields a deterministic, not time-based, run.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

func init() {
	generateCmd.Flags().IntVarP(&count, "count", "c", 50, "number of levels to generate")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "base seed for generation (0 = a fixed default seed)")
	generateCmd.Flags().StringVarP(&preset, "preset", "p", "nurturing", "difficulty preset (tutorial, seedling, sprout, nurturing, flourishing, transcendent)")
	generateCmd.Flags().StringVar(&pack, "pack", "", "record generated levels under this pack name in data/packs.json")
	generateCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing level files")
	generateCmd.Flags().StringVar(&watchAddr, "watch", "", "serve a websocket stream of each attempt's board at this address (e.g. localhost:8089)")
}

// GetCommand returns the generate command for registration with root
func GetCommand() *cobra.Command {
	return generateCmd
}
