package repair

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/validator"
)

var (
	directoryFlag string
	overwriteFlag bool
	dryRunFlag    bool
	presetFlag    string
)

var levelFileRE = regexp.MustCompile(`^level_(.+)\.json$`)

// RepairCmd repairs corrupted, truncated, or unsolvable level files by
// regenerating them from scratch.
var RepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair broken level JSON files by regenerating them",
	Long: `Scan a levels directory and regenerate any file that fails to parse or
fails the replay round-trip check. A regenerated level gets a freshly
minted id, since a corrupted file's original generation parameters can't
be recovered from its filename alone.

Examples:
  level-builder repair
  level-builder repair --directory levels
  level-builder repair --dry-run
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := directoryFlag
		if dir == "" {
			var err error
			dir, err = common.LevelsDir()
			if err != nil {
				return err
			}
		}

		return repairDirectory(dir, overwriteFlag, dryRunFlag)
	},
}

func init() {
	RepairCmd.Flags().StringVarP(&directoryFlag, "directory", "d", "", "directory containing level files to repair (default: levels/)")
	RepairCmd.Flags().BoolVarP(&overwriteFlag, "overwrite", "o", true, "overwrite repaired files")
	RepairCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "scan and report without writing files")
	RepairCmd.Flags().StringVarP(&presetFlag, "preset", "p", "nurturing", "difficulty preset to use when regenerating a broken level")
}

func repairDirectory(dir string, overwrite, dryRun bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	presets, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}
	preset, err := presets.Get(presetFlag)
	if err != nil {
		return err
	}

	fixed := 0
	failed := 0
	checked := 0
	rng := rand.New(rand.NewSource(1))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if levelFileRE.FindStringSubmatch(name) == nil {
			continue
		}
		checked++
		path := filepath.Join(dir, name)
		common.Verbose("Checking %s", path)

		repaired, repairErr := repairFileIfNeeded(path, preset, rng, overwrite, dryRun)
		if repaired {
			if repairErr != nil {
				common.Error("%v", repairErr)
				failed++
			} else {
				fixed++
			}
		}
	}

	common.Info("Repair summary: checked=%d repaired=%d failed=%d", checked, fixed, failed)
	if failed > 0 {
		return fmt.Errorf("failed to repair %d files", failed)
	}
	return nil
}

// repairFileIfNeeded checks a single file and regenerates it in place if it
// fails to parse or fails the round-trip validator.
func repairFileIfNeeded(path string, preset config.Preset, rng *rand.Rand, overwrite, dryRun bool) (bool, error) {
	lvl, err := common.ReadLevel(path)
	switch {
	case err == nil && validator.Validate(lvl) == nil:
		return false, nil
	case err == nil:
		common.Warning("%s failed validation (scheduling regenerate)", path)
	default:
		common.Warning("Failed to parse %s: %v (scheduling regenerate)", path, err)
	}

	if dryRun {
		common.Info("Would regenerate %s", path)
		return true, nil
	}

	result, genErr := generator.Generate(preset, rng)
	if genErr != nil {
		return true, fmt.Errorf("failed to regenerate %s: %w", path, genErr)
	}
	if verr := validator.Validate(result.Level); verr != nil {
		return true, fmt.Errorf("regenerated replacement for %s failed validation: %w", path, verr)
	}

	// The old file is replaced in place under its original name, but the
	// level inside carries the newly minted id generator.Generate gave it.
	if err := common.WriteLevel(path, result.Level, overwrite || dryRun); err != nil {
		return true, fmt.Errorf("failed to write repaired level to %s: %w", path, err)
	}

	common.Info("Repaired %s", path)
	return true, nil
}
