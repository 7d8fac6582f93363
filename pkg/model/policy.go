package model

import (
	"encoding/json"
	"fmt"

	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/pkg/policy"
)

// EmptyPolicyDTO is the wire shape of an empty-region-size policy: a tagged
// object with exactly one of the three keys present, matching §6's
// {None} / {Fix: {fix_size: n}} / {Ascending: {top: k}}.
type EmptyPolicyDTO struct {
	Kind string
	N    int // fix_size for "fix", top for "ascending"; unused for "none"
}

// NewEmptyPolicyDTO captures a live Policy's serializable shape.
func NewEmptyPolicyDTO(p policy.Policy) EmptyPolicyDTO {
	kind, n := p.Describe()
	return EmptyPolicyDTO{Kind: kind, N: n}
}

// ToPolicy reconstructs the live Policy this DTO describes.
func (d EmptyPolicyDTO) ToPolicy() policy.Policy {
	return policy.FromDescribe(d.Kind, d.N)
}

type fixBody struct {
	FixSize int `json:"fix_size"`
}

type ascendingBody struct {
	Top int `json:"top"`
}

func (d EmptyPolicyDTO) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case "none":
		return json.Marshal(map[string]struct{}{"None": {}})
	case "fix":
		return json.Marshal(map[string]fixBody{"Fix": {FixSize: d.N}})
	case "ascending":
		return json.Marshal(map[string]ascendingBody{"Ascending": {Top: d.N}})
	default:
		return nil, fmt.Errorf("model: unknown empty policy kind %q", d.Kind)
	}
}

func (d *EmptyPolicyDTO) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("model: empty policy must be a tagged object: %w", err)
	}
	if _, ok := tagged["None"]; ok {
		*d = EmptyPolicyDTO{Kind: "none"}
		return nil
	}
	if raw, ok := tagged["Fix"]; ok {
		var body fixBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("model: malformed Fix policy: %w", err)
		}
		*d = EmptyPolicyDTO{Kind: "fix", N: body.FixSize}
		return nil
	}
	if raw, ok := tagged["Ascending"]; ok {
		var body ascendingBody
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("model: malformed Ascending policy: %w", err)
		}
		*d = EmptyPolicyDTO{Kind: "ascending", N: body.Top}
		return nil
	}
	return fmt.Errorf("model: empty policy object has none of None/Fix/Ascending")
}
