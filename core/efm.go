package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// DefaultEFMKind is the measure kind moment-type observables adopt when
// the configuration does not name one.
const DefaultEFMKind = measure.HadrEFM

// EFMCore is the moment-type layer: a measure holder restricted to
// moment-capable kinds, with the beta exponent cleared at construction
// (moments fold the angular weighting into their own ranks).
//
// Concrete moment observables embed EFMCore together with a
// BatchEvaluator typed to their per-event result.
type EFMCore struct {
	*MeasureHolder
}

// NewEFMCore validates that the configured measure kind is moment-capable
// (ErrNotMomentMeasure otherwise, before anything is computed), builds the
// holder, and clears beta on the attached measure.
func NewEFMCore(params Params) (*EFMCore, error) {
	kind := DefaultEFMKind
	if v, ok := params[measure.KeyMeasure]; ok {
		switch k := v.(type) {
		case measure.Kind:
			kind = k
		case string:
			kind = measure.Kind(k)
		default:
			return nil, fmt.Errorf("%w: %s must be a measure kind, got %T",
				measure.ErrBadParam, measure.KeyMeasure, v)
		}
	}
	if !kind.Moment() {
		return nil, fmt.Errorf("%w: got %q", ErrNotMomentMeasure, kind)
	}

	h, err := NewMeasureHolder(params, DefaultEFMKind)
	if err != nil {
		return nil, err
	}
	if h.HasMeasure() {
		h.Measure().ClearBeta()
	}

	return &EFMCore{MeasureHolder: h}, nil
}

// ZsPhats resolves one event's (zs, phats) for the moment arithmetic.
//
// If event is non-nil it is evaluated through the attached measure and any
// explicitly passed zs/phats are discarded. A nil event requires both zs
// and phats (ErrMissingInput otherwise). An empty non-nil event is a valid
// event with no particles.
func (c *EFMCore) ZsPhats(event measure.Event, zs []float64, phats *mat.Dense) ([]float64, *mat.Dense, error) {
	if event != nil {
		if !c.HasMeasure() {
			return nil, nil, ErrNoMeasure
		}
		return c.Measure().EvaluateMoment(event)
	}
	if zs == nil || phats == nil {
		return nil, nil, ErrMissingInput
	}

	return zs, phats, nil
}
