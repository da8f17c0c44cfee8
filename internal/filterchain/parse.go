package filterchain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Parse decodes a serialized filter mapping such as
//
//	{"highpass": {"enabled": true, "params": "f=200"}}
//
// Blank input yields an empty spec.
func Parse(raw string) (Spec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, nil
	}
	var spec Spec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, fmt.Errorf("parse filters: %w", err)
	}
	if spec == nil {
		spec = Spec{}
	}
	return spec, nil
}

// Merge overlays the entries of override on top of base and returns a new spec.
func Merge(base, override Spec) Spec {
	out := base.Clone()
	for name, setting := range override {
		out[name] = setting
	}
	return out
}

// Unknown lists the sorted entry names that are not canonical filters.
func (s Spec) Unknown() []string {
	var names []string
	for name := range s {
		if !Known(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
