package filterchain

import (
	"strconv"
	"strings"
)

// Canonical filter names in application order.
const (
	Highpass    = "highpass"
	Lowpass     = "lowpass"
	Deesser     = "deesser"
	Acompressor = "acompressor"
	Loudnorm    = "loudnorm"
	Alimiter    = "alimiter"
)

var canonicalOrder = []string{Highpass, Lowpass, Deesser, Acompressor, Loudnorm, Alimiter}

// Order returns the canonical filter application order.
func Order() []string {
	return append([]string(nil), canonicalOrder...)
}

// Known reports whether name is one of the canonical filters.
func Known(name string) bool {
	for _, candidate := range canonicalOrder {
		if candidate == name {
			return true
		}
	}
	return false
}

// Setting toggles a single filter stage.
type Setting struct {
	Enabled bool   `json:"enabled" toml:"enabled"`
	Params  string `json:"params" toml:"params"`
}

// Spec maps filter names to their settings. Names outside the canonical set
// are carried along but never emitted.
type Spec map[string]Setting

// Clone returns an independent copy so a task can own its configuration.
func (s Spec) Clone() Spec {
	if s == nil {
		return Spec{}
	}
	out := make(Spec, len(s))
	for name, setting := range s {
		out[name] = setting
	}
	return out
}

// Stages returns the enabled stages as name=params strings in canonical order.
func (s Spec) Stages() []string {
	stages := make([]string, 0, len(canonicalOrder))
	for _, name := range canonicalOrder {
		setting, ok := s[name]
		if !ok || !setting.Enabled || setting.Params == "" {
			continue
		}
		stages = append(stages, name+"="+setting.Params)
	}
	return stages
}

// Build composes the processing expression for spec and speed. An empty
// result means no transformation applies and the input can be stream copied.
func Build(spec Spec, speed float64) string {
	filters := strings.Join(spec.Stages(), ",")
	tempo := TempoStage(speed)
	switch {
	case filters != "" && tempo != "":
		return filters + "," + tempo
	case filters != "":
		return filters
	default:
		return tempo
	}
}

// TempoStage returns the atempo stage for speed, or "" when speed is 1.0.
func TempoStage(speed float64) string {
	if speed == 1.0 {
		return ""
	}
	return "atempo=" + FormatSpeed(speed)
}

// FormatSpeed renders a multiplier the way users write it: integral values
// keep a single decimal (2 -> "2.0") and fractional values use the shortest
// exact representation.
func FormatSpeed(speed float64) string {
	formatted := strconv.FormatFloat(speed, 'f', -1, 64)
	if !strings.ContainsAny(formatted, ".eE") {
		formatted += ".0"
	}
	return formatted
}
