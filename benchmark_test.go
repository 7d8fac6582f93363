package main

import (
	"path/filepath"
	"testing"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/common"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/validator"
)

// BenchmarkValidateAllLevels measures round-trip validation performance
// across every generated level on disk.
func BenchmarkValidateAllLevels(b *testing.B) {
	levelsDir, err := common.LevelsDir()
	if err != nil {
		b.Fatalf("failed to resolve levels directory: %v", err)
	}
	levels, err := loadAllLevels(levelsDir)
	if err != nil {
		b.Fatalf("failed to load levels: %v", err)
	}
	if len(levels) == 0 {
		b.Skip("no generated levels on disk to benchmark")
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, level := range levels {
			if err := validator.Validate(level); err != nil {
				b.Fatalf("validation failed for a level by %s: %v", level.Author, err)
			}
		}
	}
}

func loadAllLevels(dir string) ([]*model.Level, error) {
	files, err := filepath.Glob(filepath.Join(dir, "level_*.json"))
	if err != nil {
		return nil, err
	}

	levels := make([]*model.Level, 0, len(files))
	for _, file := range files {
		level, err := common.ReadLevel(file)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
