package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Singleton for resolved output paths
var (
	resolvedLevelsDir string
	resolvedDataDir   string
	resolvedPacksFile string
	pathsOnce         sync.Once
	pathsError        error
)

// RepoMarkerFiles are files that indicate the root of this module, used to
// anchor relative output paths regardless of the working directory a CLI
// subcommand happens to be invoked from.
var RepoMarkerFiles = []string{"go.mod"}

// initPaths resolves output paths once at startup.
// It looks for the repo root by checking:
// 1. Current working directory
// 2. Parent directories (up to 5 levels)
// Returns error if repo root cannot be found.
func initPaths() {
	pathsOnce.Do(func() {
		repoRoot, err := findRepoRoot()
		if err != nil {
			pathsError = err
			return
		}

		resolvedLevelsDir = filepath.Join(repoRoot, "levels")
		resolvedDataDir = filepath.Join(repoRoot, "data")
		resolvedPacksFile = filepath.Join(resolvedDataDir, "packs.json")

		Verbose("Resolved repo root: %s", repoRoot)
		Verbose("Levels directory: %s", resolvedLevelsDir)
	})
}

// findRepoRoot searches for the repository root by looking for marker files
// starting from the current directory and walking up the directory tree.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isRepoRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find module root (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

// isRepoRoot checks if a directory contains repo marker files
func isRepoRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		markerPath := filepath.Join(dir, marker)
		if _, err := os.Stat(markerPath); err == nil {
			return true
		}
	}
	return false
}

// LevelsDir returns the absolute path to the generated-levels directory.
func LevelsDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedLevelsDir, nil
}

// DataDir returns the absolute path to the data directory.
func DataDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedDataDir, nil
}

// PacksFile returns the absolute path to the packs.json registry file.
func PacksFile() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedPacksFile, nil
}

// LevelFilePath returns the absolute path to a specific level file.
func LevelFilePath(levelID string) (string, error) {
	levelsDir, err := LevelsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(levelsDir, fmt.Sprintf("level_%s.json", levelID)), nil
}

// MustLevelsDir returns the levels directory path or panics if not found.
// Use sparingly - prefer LevelsDir() with proper error handling.
func MustLevelsDir() string {
	dir, err := LevelsDir()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve levels directory: %v", err))
	}
	return dir
}

// MustPacksFile returns the packs.json file path or panics if not found.
// Use sparingly - prefer PacksFile() with proper error handling.
func MustPacksFile() string {
	path, err := PacksFile()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve packs.json path: %v", err))
	}
	return path
}

// ResetPaths resets the cached paths (useful for testing)
func ResetPaths() {
	resolvedLevelsDir = ""
	resolvedDataDir = ""
	resolvedPacksFile = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
