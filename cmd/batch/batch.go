/*
Package batch provides the command-line interface for batch-generating a
whole named pack of levels against a single difficulty preset, with a
worker pool and a progress spinner.

Usage examples:

	level-builder batch --pack garden-1 --preset nurturing --count 21
	level-builder batch --pack garden-2 --preset flourishing --count 10 --dry-run
	level-builder batch --pack garden-3 --preset sprout --overwrite --concurrency 4

The command generates levels concurrently across --concurrency goroutines,
validates each immediately after generation, records them in
data/packs.json under --pack, and reports a summary of success/failure
statistics at the end.
*/
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	batchsvc "github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/batch"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/ui"
)

var (
	packName  string
	preset    string
	count     int
	seed      int64
	overwrite bool
	dryRun    bool
	backup    bool
	workers   int
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate a named pack of levels against a difficulty preset",
	Long: `Generate an entire pack of levels at one difficulty preset.

The command generates levels across a worker pool, validates each
immediately, writes them to levels/, and records them in data/packs.json
under --pack.

Examples:
  level-builder batch --pack garden-1 --preset nurturing --count 21
  level-builder batch --pack garden-2 --preset flourishing --count 10 --dry-run
  level-builder batch --pack garden-3 --preset sprout --overwrite --concurrency 4`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&packName, "pack", "", "pack name to record generated levels under (required)")
	batchCmd.Flags().StringVarP(&preset, "preset", "p", "nurturing", "difficulty preset (tutorial, seedling, sprout, nurturing, flourishing, transcendent)")
	batchCmd.Flags().IntVarP(&count, "count", "c", 21, "number of levels to generate")
	batchCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "base seed for generation (0 = a fixed default seed)")
	batchCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing level files")
	batchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview what would be generated without writing files")
	batchCmd.Flags().BoolVar(&backup, "backup", true, "back up the pack's existing levels before overwriting")
	batchCmd.Flags().IntVar(&workers, "concurrency", 1, "number of concurrent generation workers")

	batchCmd.MarkFlagRequired("pack")
}

// GetCommand returns the batch command
func GetCommand() *cobra.Command {
	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	common.Info("Starting batch generation for pack %q...", packName)

	levelsDir, err := common.LevelsDir()
	if err != nil {
		return err
	}

	if backup && overwrite && !dryRun {
		performBackup(levelsDir)
	}

	spin := ui.NewSpinner(fmt.Sprintf("generating 0/%d levels...", count))
	spin.Start()

	cfg := batchsvc.Config{
		PackName:  packName,
		Preset:    preset,
		Count:     count,
		OutputDir: levelsDir,
		Overwrite: overwrite,
		DryRun:    dryRun,
		Workers:   workers,
		OnProgress: func(done, total int) {
			spin.UpdateMessage("generating %d/%d levels...", done, total)
		},
	}

	batchResult, err := batchsvc.GeneratePack(cfg, resolveSeed(seed))
	spin.Stop()
	if err != nil {
		return err
	}

	if err := reportSummary(batchResult); err != nil {
		return err
	}

	if dryRun {
		common.Info("Batch generation completed (dry run).")
		return nil
	}

	packsFile, err := common.PacksFile()
	if err != nil {
		return err
	}
	for _, result := range batchResult.Levels {
		if !result.Success {
			continue
		}
		if err := common.AppendToPack(packsFile, packName, preset, result.LevelID); err != nil {
			return fmt.Errorf("failed to update %s: %w", packsFile, err)
		}
	}
	common.Info("Updated %s for pack %q", packsFile, packName)

	common.Info("Batch generation completed successfully!")
	return nil
}

// performBackup backs up whatever levels the pack already holds in the
// registry before the run overwrites them.
func performBackup(levelsDir string) {
	packsFile, err := common.PacksFile()
	if err != nil {
		return
	}
	registry, err := common.LoadPackRegistry(packsFile)
	if err != nil {
		return
	}
	p, err := common.GetPack(registry, packName)
	if err != nil {
		return
	}
	if len(p.LevelIDs) == 0 {
		return
	}

	dataDir, err := common.DataDir()
	if err != nil {
		return
	}
	backupDir := fmt.Sprintf("%s/levels_backup", dataDir)
	if _, err := common.BackupLevels(p.LevelIDs, levelsDir, backupDir); err != nil {
		common.Warning("Backup failed: %v (continuing anyway)", err)
	}
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

func reportSummary(batchResult *batchsvc.PackBatch) error {
	common.Info("=== Batch Generation Summary ===")
	common.Info("Pack: %s", batchResult.PackName)
	common.Info("Preset: %s", batchResult.Preset)
	common.Info("Total Time: %v", batchResult.TotalTime)
	common.Info("Success: %d / %d", batchResult.SuccessCount, len(batchResult.Levels))
	common.Info("Failures: %d", batchResult.FailureCount)

	if batchResult.FailureCount == 0 {
		return nil
	}

	common.Warning("Failed levels:")
	for _, result := range batchResult.Levels {
		if !result.Success {
			common.Warning("  %s: %s", result.LevelID, result.Error)
		}
	}
	return fmt.Errorf("batch generation completed with %d failures", batchResult.FailureCount)
}
