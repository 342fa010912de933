// Package measure: keyword-style configuration.
//
// Outer layers configure evaluables through a flat mapping (the holder's
// Params). This file owns the set of keys measures recognize and the
// translation from such a mapping into a constructed Measure, so that the
// key inventory lives next to the code that interprets it.

package measure

import (
	"fmt"
	"sort"
	"strings"
)

// Recognized configuration keys. KeyNoMeasure is consumed by holders
// before the mapping reaches this package; it is listed here so holders
// can validate against a single inventory.
const (
	KeyMeasure    = "measure"
	KeyNoMeasure  = "no_measure"
	KeyBeta       = "beta"
	KeyKappa      = "kappa"
	KeyNormed     = "normed"
	KeyCoords     = "coords"
	KeyCheckInput = "check_input"
	KeySubslicing = "subslicing"
)

// paramKeys is the full recognized-key inventory.
var paramKeys = map[string]struct{}{
	KeyMeasure:    {},
	KeyNoMeasure:  {},
	KeyBeta:       {},
	KeyKappa:      {},
	KeyNormed:     {},
	KeyCoords:     {},
	KeyCheckInput: {},
	KeySubslicing: {},
}

// UnknownParams returns the keys of p that no measure recognizes, sorted.
func UnknownParams(p map[string]any) []string {
	var unknown []string
	for k := range p {
		if _, ok := paramKeys[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	return unknown
}

// FromParams validates p against the recognized-key inventory and
// constructs a Measure from it. The "measure" key selects the kind,
// falling back to defaultKind when absent; remaining keys override
// DefaultOptions fields.
//
// Errors:
//   - ErrUnknownParam — p contains unrecognized keys; the error names them.
//   - ErrBadParam     — a recognized key holds a value of the wrong type.
//   - anything New returns for the resulting (kind, options) pair.
func FromParams(p map[string]any, defaultKind Kind) (*Measure, error) {
	if unknown := UnknownParams(p); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, strings.Join(unknown, ", "))
	}

	kind := defaultKind
	if v, ok := p[KeyMeasure]; ok {
		switch k := v.(type) {
		case Kind:
			kind = k
		case string:
			kind = Kind(k)
		default:
			return nil, fmt.Errorf("%w: %s must be a measure kind, got %T", ErrBadParam, KeyMeasure, v)
		}
	}

	opts := DefaultOptions()
	if v, ok := p[KeyBeta]; ok {
		f, err := toFloat(KeyBeta, v)
		if err != nil {
			return nil, err
		}
		opts.Beta = f
	}
	if v, ok := p[KeyKappa]; ok {
		f, err := toFloat(KeyKappa, v)
		if err != nil {
			return nil, err
		}
		opts.Kappa = f
	}
	if v, ok := p[KeyNormed]; ok {
		b, err := toBool(KeyNormed, v)
		if err != nil {
			return nil, err
		}
		opts.Normed = b
	}
	if v, ok := p[KeyCheckInput]; ok {
		b, err := toBool(KeyCheckInput, v)
		if err != nil {
			return nil, err
		}
		opts.CheckInput = b
	}
	if v, ok := p[KeySubslicing]; ok {
		b, err := toBool(KeySubslicing, v)
		if err != nil {
			return nil, err
		}
		opts.Subslicing = b
	}
	if v, ok := p[KeyCoords]; ok {
		switch c := v.(type) {
		case CoordSystem:
			opts.Coords = c
		case string:
			opts.Coords = CoordSystem(c)
		default:
			return nil, fmt.Errorf("%w: %s must be a coordinate system, got %T", ErrBadParam, KeyCoords, v)
		}
	}

	return New(kind, opts)
}

// toFloat accepts the numeric types a literal mapping plausibly carries.
func toFloat(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	}

	return 0, fmt.Errorf("%w: %s must be numeric, got %T", ErrBadParam, key, v)
}

func toBool(key string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}

	return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrBadParam, key, v)
}
