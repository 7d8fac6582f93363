// Package config loads the difficulty presets package generator builds
// levels from: grid-size range, empty-region policy kind, and the
// planner's look-ahead depth, one entry per named difficulty tier.
//
// Presets live in an embedded YAML file instead of a Go literal map, so a
// tier's numbers can be tuned without recompiling the tool.
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
)

//go:embed presets.yaml
var presetsYAML []byte

// GridRange bounds the width/height a preset may pick for a level,
// inclusive on both ends.
type GridRange struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// Preset is one named difficulty tier's generation parameters.
type Preset struct {
	Name               string    `yaml:"-"`
	GridSize           GridRange `yaml:"grid_size"`
	PolicyKind         string    `yaml:"policy"`          // "none", "fix", "ascending"
	FixSize            int       `yaml:"fix_size"`        // only meaningful when PolicyKind == "fix"
	MaxAssumeDepth     int       `yaml:"max_assume_depth"`
	MaxSolverResults   int       `yaml:"max_solver_results"`
	MaxGenerateRetries int       `yaml:"max_generate_retries"`
}

// BuildPolicy constructs the policy.Policy this preset describes for a
// board of the given dimensions.
func (p Preset) BuildPolicy(width, height int) (policy.Policy, error) {
	switch p.PolicyKind {
	case "none":
		return policy.NewNone(), nil
	case "fix":
		return policy.NewFix(p.FixSize), nil
	case "ascending":
		return policy.NewAscending(width, height), nil
	default:
		return nil, fmt.Errorf("config: preset %q has unknown policy kind %q", p.Name, p.PolicyKind)
	}
}

// Presets is the full set of difficulty tiers, keyed by name.
type Presets map[string]Preset

// Load parses the embedded presets.yaml into a Presets map, stamping each
// entry's Name field from its YAML key.
func Load() (Presets, error) {
	var raw map[string]Preset
	if err := yaml.Unmarshal(presetsYAML, &raw); err != nil {
		return nil, fmt.Errorf("config: failed to parse embedded presets.yaml: %w", err)
	}
	out := make(Presets, len(raw))
	for name, p := range raw {
		p.Name = name
		out[name] = p
	}
	return out, nil
}

// Get returns the named preset, or an error listing the known names.
func (p Presets) Get(name string) (Preset, error) {
	preset, ok := p[name]
	if !ok {
		return Preset{}, fmt.Errorf("config: unknown difficulty preset %q (known: %v)", name, p.Names())
	}
	return preset, nil
}

// Names returns the preset names in no particular order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	return names
}
