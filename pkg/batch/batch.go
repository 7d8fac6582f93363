// Package batch orchestrates generating a whole named pack of levels in
// one run: a bounded worker pool of repeated calls into generator.Generate,
// per-level file output, and a summary of successes and failures. Grounded
// on the teacher's module-batch shape (a fixed-size batch with a
// fail-fast-free summary report and a worker-pool knob), generalized from a
// fixed 21-level module layout to an arbitrary count against a single
// difficulty preset, and from the teacher's shared-rng sequential loop to
// one independently-seeded generator.Generate call per level.
package batch

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/generator/config"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/validator"
)

// Config holds configuration for a batch generation run.
type Config struct {
	PackName  string
	Preset    string // difficulty preset name, e.g. "nurturing"
	Count     int
	OutputDir string // directory to write level_<id>.json files into
	Overwrite bool
	DryRun    bool
	Workers   int // concurrent generator.Generate calls; <= 1 means sequential

	// OnProgress, if set, is called after each level finishes (success or
	// failure) with the running count and the total. Called from whichever
	// worker goroutine finished that level.
	OnProgress func(done, total int)
}

// Result captures the outcome of generating one level within a pack.
type Result struct {
	LevelID  string
	Success  bool
	Error    string
	Attempts int
	Width    int
	Height   int
}

// PackBatch is the summary of a whole batch run.
type PackBatch struct {
	PackName     string
	Preset       string
	Levels       []Result
	TotalTime    time.Duration
	SuccessCount int
	FailureCount int
}

// GeneratePack generates cfg.Count levels against cfg.Preset, writing each
// to cfg.OutputDir (unless DryRun) and returning a summary. baseSeed seeds
// every level's own independent *rand.Rand (derived as baseSeed+index), so
// the whole batch is reproducible regardless of cfg.Workers. A failure
// generating one level does not stop the batch; it's recorded in the
// returned summary instead.
func GeneratePack(cfg Config, baseSeed int64) (*PackBatch, error) {
	presets, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	preset, err := presets.Get(cfg.Preset)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	results := make([]Result, cfg.Count)

	var done int
	var doneMu sync.Mutex
	reportDone := func() {
		if cfg.OnProgress == nil {
			return
		}
		doneMu.Lock()
		done++
		n := done
		doneMu.Unlock()
		cfg.OnProgress(n, cfg.Count)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rng := rand.New(rand.NewSource(baseSeed + int64(i)))
				results[i] = generateOne(preset, rng, cfg)
				reportDone()
			}
		}()
	}
	for i := 0; i < cfg.Count; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	batchResult := &PackBatch{PackName: cfg.PackName, Preset: cfg.Preset, Levels: results}
	for _, r := range results {
		if r.Success {
			batchResult.SuccessCount++
		} else {
			batchResult.FailureCount++
		}
	}
	batchResult.TotalTime = time.Since(start)
	return batchResult, nil
}

func generateOne(preset config.Preset, rng *rand.Rand, cfg Config) Result {
	genResult, err := generator.Generate(preset, rng)
	if err != nil {
		return Result{LevelID: uuid.NewString(), Success: false, Error: err.Error()}
	}

	if err := validator.Validate(genResult.Level); err != nil {
		return Result{LevelID: genResult.Level.Author, Success: false, Error: fmt.Sprintf("generated level failed validation: %v", err)}
	}

	levelID := genResult.Level.Author
	result := Result{
		LevelID:  levelID,
		Success:  true,
		Attempts: genResult.Attempts,
		Width:    genResult.Width,
		Height:   genResult.Height,
	}

	if cfg.DryRun {
		return result
	}

	path, err := levelFilePath(cfg.OutputDir, levelID)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		return result
	}
	if err := common.WriteLevel(path, genResult.Level, cfg.Overwrite); err != nil {
		result.Success = false
		result.Error = err.Error()
	}
	return result
}

func levelFilePath(outputDir, levelID string) (string, error) {
	if outputDir == "" {
		return "", fmt.Errorf("batch: no output directory configured")
	}
	return fmt.Sprintf("%s/level_%s.json", outputDir, levelID), nil
}
