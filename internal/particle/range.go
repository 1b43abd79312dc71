// Package particle provides the value syntax used by burst definitions in the
// fireworks configuration.
//
// Burst properties are written the same way particle emitters describe their
// spawn parameters:
//   - Fixed value: "0.1" → min=0.1, max=0.1
//   - Range: "[2 5]" → random value between min and max
//   - Single bracketed value: "[3]" → fixed value 3
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive [Min, Max] interval sampled when a particle is spawned.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a range that always samples v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Between returns the range [min, max].
func Between(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// ParseRange parses a value string in fixed or range format.
//
// Returns an error for empty input, malformed numbers, or min > max.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	// 范围格式: "[min max]" 或 "[value]"
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Fixed(v), nil
		case 2:
			min, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min %q: %w", s, err)
			}
			max, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max %q: %w", s, err)
			}
			if min > max {
				return Range{}, fmt.Errorf("range %q has min greater than max", s)
			}
			return Between(min, max), nil
		default:
			return Range{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	// 固定值格式
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// String formats the range back into the configuration syntax.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + " " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}

// Float returns a uniformly distributed value in [Min, Max).
// A degenerate range always returns Min.
func (r Range) Float(rng *rand.Rand) float64 {
	if r.Min >= r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Int returns a uniformly distributed integer in [ceil(Min), floor(Max)],
// both ends inclusive.
func (r Range) Int(rng *rand.Rand) int {
	lo := int(math.Ceil(r.Min))
	hi := int(math.Floor(r.Max))
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// UnmarshalYAML accepts either a number or a range string.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar", node.Line)
	}
	parsed, err := ParseRange(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the range in configuration syntax.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
