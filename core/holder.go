package core

import (
	"fmt"
	"strings"

	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// Params is the flat keyword-style configuration evaluables are built
// from. Recognized keys are the measure package's Key* constants; any
// other key fails construction with measure.ErrUnknownParam.
type Params map[string]any

// clone returns a shallow copy so holders can consume keys without
// mutating the caller's mapping.
func (p Params) clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// MeasureHolder owns zero-or-one measure and exposes its configuration
// read-only. A holder built with no_measure=true carries no measure: all
// accessors report absence and event-driven computation is unavailable.
type MeasureHolder struct {
	m *measure.Measure
}

// NewMeasureHolder validates params and, unless no_measure is set,
// constructs the measure, using defaultKind when the "measure" key is
// absent.
//
// Errors: measure.ErrUnknownParam (naming the offending keys),
// measure.ErrBadParam, and anything measure construction returns.
func NewMeasureHolder(params Params, defaultKind measure.Kind) (*MeasureHolder, error) {
	p := params.clone()
	if noMeasure, _ := p[measure.KeyNoMeasure].(bool); noMeasure {
		// Still reject unknown keys so a typo cannot hide behind no_measure.
		if unknown := measure.UnknownParams(p); len(unknown) > 0 {
			return nil, fmt.Errorf("%w: %s", measure.ErrUnknownParam, strings.Join(unknown, ", "))
		}

		return &MeasureHolder{}, nil
	}
	delete(p, measure.KeyNoMeasure)

	m, err := measure.FromParams(p, defaultKind)
	if err != nil {
		return nil, err
	}

	return &MeasureHolder{m: m}, nil
}

// HasMeasure reports whether a live measure is attached.
func (h *MeasureHolder) HasMeasure() bool { return h.m != nil }

// Measure returns the attached measure, or nil.
func (h *MeasureHolder) Measure() *measure.Measure { return h.m }

// MeasureKind returns the attached measure's kind; ok is false without one.
func (h *MeasureHolder) MeasureKind() (kind measure.Kind, ok bool) {
	if h.m == nil {
		return "", false
	}

	return h.m.Kind(), true
}

// Beta returns the angular exponent. ok is false without a measure and
// after the moment-type beta clearing.
func (h *MeasureHolder) Beta() (beta float64, ok bool) {
	if h.m == nil {
		return 0, false
	}

	return h.m.Beta()
}

// Kappa returns the energy exponent; ok is false without a measure.
func (h *MeasureHolder) Kappa() (kappa float64, ok bool) {
	if h.m == nil {
		return 0, false
	}

	return h.m.Kappa(), true
}

// Normed reports unit-sum normalization; ok is false without a measure.
func (h *MeasureHolder) Normed() (normed, ok bool) {
	if h.m == nil {
		return false, false
	}

	return h.m.Normed(), true
}

// Coords returns the coordinate system; ok is false without a measure.
func (h *MeasureHolder) Coords() (coords measure.CoordSystem, ok bool) {
	if h.m == nil {
		return "", false
	}

	return h.m.Coords(), true
}

// CheckInput reports input validation; ok is false without a measure.
func (h *MeasureHolder) CheckInput() (check, ok bool) {
	if h.m == nil {
		return false, false
	}

	return h.m.CheckInput(), true
}

// Subslicing reports subslicing capability; ok is false without a measure.
func (h *MeasureHolder) Subslicing() (sub, ok bool) {
	if h.m == nil {
		return false, false
	}

	return h.m.Subslicing(), true
}
