// Package model implements the level-serialization output format (§6): the
// JSON shape the core emits to the embedder, independent of the in-memory
// grid state the solver and planner operate on.
package model

import (
	"encoding/json"
	"fmt"
)

// Point is a grid coordinate. It marshals as the two-element array [x, y]
// the serialization format requires, not as an {"x":_,"y":_} object.
type Point struct {
	X int
	Y int
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("model: point must be a two-element array: %w", err)
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}
