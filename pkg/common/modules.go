package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
)

// LoadPackRegistry loads the packs.json registry file.
func LoadPackRegistry(filePath string) (*model.Registry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read packs.json: %w", err)
	}

	var registry model.Registry
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&registry); err != nil {
		return nil, fmt.Errorf("failed to parse packs.json: %w", err)
	}

	return &registry, nil
}

// SavePackRegistry writes the packs.json registry file with proper
// formatting, creating its directory if needed and renaming into place so
// a crash mid-write never leaves a truncated file behind.
func SavePackRegistry(filePath string, registry *model.Registry) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal packs.json: %w", err)
	}

	tmpFile := filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	Verbose("Updated packs.json: %s", filePath)
	return nil
}

// AppendToPack loads the registry at filePath, appends levelID to the
// named pack (creating it with preset if it does not yet exist), and
// saves the registry back.
func AppendToPack(filePath, packName, preset, levelID string) error {
	registry, err := LoadPackRegistry(filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		registry = model.NewRegistry()
	}

	registry.Add(packName, preset, levelID)
	return SavePackRegistry(filePath, registry)
}

// GetPack returns a named pack from the registry.
func GetPack(registry *model.Registry, packName string) (*model.Pack, error) {
	p, ok := registry.Packs[packName]
	if !ok {
		return nil, fmt.Errorf("pack %q not found", packName)
	}
	return p, nil
}
