package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
)

var packsToo bool

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated levels and packs",
	Long: `Remove all generated level files, and optionally the packs registry.

Deletes:
  - All level_*.json files in levels/
  - data/packs.json, when --packs is set

This is a destructive operation. Use with caution.

Examples:
  level-builder clean
  level-builder clean --packs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Cleaning generated levels...")

		levelsDir, err := common.LevelsDir()
		if err != nil {
			return err
		}

		files, err := filepath.Glob(filepath.Join(levelsDir, "level_*.json"))
		if err != nil {
			return fmt.Errorf("failed to list level files: %w", err)
		}

		removed := 0
		for _, f := range files {
			if err := os.Remove(f); err != nil {
				return fmt.Errorf("failed to remove %s: %w", f, err)
			}
			removed++
		}
		common.Verbose("Removed %d level files", removed)

		if packsToo {
			packsFile, err := common.PacksFile()
			if err != nil {
				return err
			}
			if err := os.Remove(packsFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", packsFile, err)
			}
			common.Verbose("Removed %s", packsFile)
		}

		common.Info("✓ Successfully cleaned generated levels")
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&packsToo, "packs", false, "also remove data/packs.json")
}

// GetCommand returns the clean command for registration with root
func GetCommand() *cobra.Command {
	return cleanCmd
}
