package config

import "testing"

func TestLoadParsesAllPresets(t *testing.T) {
	presets, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"tutorial", "seedling", "sprout", "nurturing", "flourishing", "transcendent"} {
		p, err := presets.Get(name)
		if err != nil {
			t.Errorf("preset %q missing: %v", name, err)
			continue
		}
		if p.Name != name {
			t.Errorf("preset %q: Name = %q, want %q", name, p.Name, name)
		}
		if p.GridSize.MinWidth < 2 || p.GridSize.MinHeight < 2 {
			t.Errorf("preset %q: grid size below the 2x2 minimum: %+v", name, p.GridSize)
		}
		if p.GridSize.MaxWidth < p.GridSize.MinWidth || p.GridSize.MaxHeight < p.GridSize.MinHeight {
			t.Errorf("preset %q: max grid size below min: %+v", name, p.GridSize)
		}
	}
}

func TestGetUnknownPresetReturnsError(t *testing.T) {
	presets, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := presets.Get("nonexistent"); err == nil {
		t.Error("expected an error for an unknown preset name")
	}
}

func TestBuildPolicyConstructsEachKind(t *testing.T) {
	cases := []struct {
		preset Preset
	}{
		{Preset{Name: "p", PolicyKind: "none"}},
		{Preset{Name: "p", PolicyKind: "fix", FixSize: 3}},
		{Preset{Name: "p", PolicyKind: "ascending"}},
	}
	for _, c := range cases {
		p, err := c.preset.BuildPolicy(8, 8)
		if err != nil {
			t.Errorf("%+v: %v", c.preset, err)
			continue
		}
		if p == nil {
			t.Errorf("%+v: got nil policy", c.preset)
		}
	}

	if _, err := (Preset{Name: "p", PolicyKind: "bogus"}).BuildPolicy(8, 8); err == nil {
		t.Error("expected an error for an unknown policy kind")
	}
}
