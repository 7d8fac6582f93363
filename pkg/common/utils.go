package common

import (
	"fmt"
	"os"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/model"
)

// FileExists reports whether a file exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GenerateLevelID returns an unused numeric level ID, starting the search
// at start, by probing the levels directory for the first free filename.
func GenerateLevelID(levelsDir string, start int) int {
	for id := start; id < 1_000_000; id++ {
		path := fmt.Sprintf("%s/level_%d.json", levelsDir, id)
		if !FileExists(path) {
			return id
		}
	}
	return start
}

// PointKey creates a unique string key for a point, usable as a map key.
func PointKey(pt model.Point) string {
	return fmt.Sprintf("%d,%d", pt.X, pt.Y)
}

// ParsePointKey parses a key produced by PointKey back into coordinates.
func ParsePointKey(key string) (x, y int) {
	n, _ := fmt.Sscanf(key, "%d,%d", &x, &y)
	if n != 2 {
		return 0, 0
	}
	return x, y
}
