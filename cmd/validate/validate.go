package validate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/validator"
)

var fileFlag string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate existing levels",
	Long: `Validate puzzle levels against the replay round-trip property.

Reconstructs each level's recorded solution independently from its grid,
then replays initial_open and moves through fixpoint propagation and
checks that the replay reaches the same solved, connected board. Without
--file, every level in levels/ is checked.

Examples:
  level-builder validate
  level-builder val --file levels/level_1234.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Starting level validation...")

		if fileFlag != "" {
			return validateFile(fileFlag)
		}

		levelsDir, err := common.LevelsDir()
		if err != nil {
			return err
		}
		files, err := filepath.Glob(filepath.Join(levelsDir, "level_*.json"))
		if err != nil {
			return fmt.Errorf("failed to list level files: %w", err)
		}

		failed := 0
		for _, f := range files {
			if err := validateFile(f); err != nil {
				common.Error("%v", err)
				failed++
			}
		}

		common.Info("Validated %d levels, %d failed", len(files), failed)
		if failed > 0 {
			return fmt.Errorf("%d/%d levels failed validation", failed, len(files))
		}
		return nil
	},
}

func validateFile(path string) error {
	lvl, err := common.ReadLevel(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := validator.Validate(lvl); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	common.Verbose("%s: ok", path)
	return nil
}

func init() {
	validateCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "validate a single level file instead of the whole levels directory")
}

// GetCommand returns the validate command for registration with root
func GetCommand() *cobra.Command {
	return validateCmd
}
