package model

// Pack groups a sequence of generated levels under a shared difficulty
// preset, the way the embedder organizes generated output into named
// batches (e.g. "ascending-10x10") recorded in the on-disk pack registry.
type Pack struct {
	Name        string   `json:"name"`
	Preset      string   `json:"preset"`
	LevelIDs    []string `json:"level_ids"`
	Description string   `json:"description,omitempty"`
}

// Registry is the contents of the on-disk pack index: every pack the
// embedder has generated, keyed by name for lookup.
type Registry struct {
	Version string           `json:"version"`
	Packs   map[string]*Pack `json:"packs"`
}

// NewRegistry returns an empty Registry ready to accumulate packs.
func NewRegistry() *Registry {
	return &Registry{Version: "1", Packs: map[string]*Pack{}}
}

// Add appends a level ID to the named pack, creating the pack if it does
// not yet exist.
func (r *Registry) Add(packName, preset, levelID string) {
	p, ok := r.Packs[packName]
	if !ok {
		p = &Pack{Name: packName, Preset: preset}
		r.Packs[packName] = p
	}
	p.LevelIDs = append(p.LevelIDs, levelID)
}
