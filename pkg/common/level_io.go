package common

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
)

// ReadLevel loads and parses a level JSON file.
func ReadLevel(path string) (*model.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lvl model.Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &lvl, nil
}

// WriteLevel writes a level to path as formatted JSON. If overwrite is
// false, it refuses to clobber an existing file.
func WriteLevel(path string, lvl *model.Level, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %s (pass --overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(lvl, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal level: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
