package core

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// MomentSet is the compute-graph of moment terms a polynomial observable
// bridges to when its measure is moment-capable. Package efm provides the
// canonical implementation.
type MomentSet interface {
	// ComputeMoments returns the flattened moment tensor for each rank in
	// the set, evaluated on one event's (zs, phats).
	ComputeMoments(zs []float64, phats *mat.Dense) (map[int][]float64, error)
}

// PolynomialObservable is the contract a concrete polynomial-type
// observable fulfils on top of EFPCore.
type PolynomialObservable interface {
	// WeightSet lists the distinct integer angular exponents the
	// observable's structure requires.
	WeightSet() []int

	// EFMSet returns the observable's moment set, or nil when it computes
	// through pairwise angles only.
	EFMSet() MomentSet

	// Compute evaluates the observable on one event.
	Compute(event measure.Event) (float64, error)
}

// EFPCore is the polynomial-type layer: a measure holder plus a batch
// evaluator over the observable's single-event compute, plus the shared
// (zs, θ^w) table construction.
type EFPCore struct {
	*MeasureHolder
	*BatchEvaluator[float64]

	obs      PolynomialObservable
	usesEFMs bool
}

// DefaultEFPKind is the measure kind polynomial observables adopt when
// the configuration does not name one.
const DefaultEFPKind = measure.Hadr

// NewEFPCore builds the shared layer for obs from params. The batch
// evaluator dispatches obs.Compute; UsesEFMs reports whether the
// configured measure kind routes computation through moment sets.
func NewEFPCore(obs PolynomialObservable, params Params) (*EFPCore, error) {
	h, err := NewMeasureHolder(params, DefaultEFPKind)
	if err != nil {
		return nil, err
	}
	c := &EFPCore{
		MeasureHolder:  h,
		BatchEvaluator: NewBatchEvaluator(obs.Compute),
		obs:            obs,
	}
	if kind, ok := h.MeasureKind(); ok {
		c.usesEFMs = kind.Moment()
	}

	return c, nil
}

// UsesEFMs reports whether the measure kind is moment-capable, in which
// case Compute implementations should go through ComputeEFMs.
func (c *EFPCore) UsesEFMs() bool { return c.usesEFMs }

// ZsThetasTable resolves one event's (zs, thetas) and builds the
// angle-power lookup table the polynomial kernel consumes: one θ^w matrix
// per weight in the observable's weight set.
//
// If event is non-nil it is evaluated through the attached measure and any
// explicitly passed zs/thetas are discarded. A nil event requires both zs
// and thetas (ErrMissingInput otherwise). An empty non-nil event is a
// valid event with no particles.
func (c *EFPCore) ZsThetasTable(event measure.Event, zs []float64, thetas *mat.SymDense) ([]float64, map[int]*mat.SymDense, error) {
	if event != nil {
		if !c.HasMeasure() {
			return nil, nil, ErrNoMeasure
		}
		var err error
		zs, thetas, err = c.Measure().Evaluate(event)
		if err != nil {
			return nil, nil, err
		}
	} else if zs == nil || thetas == nil {
		return nil, nil, ErrMissingInput
	}

	table := make(map[int]*mat.SymDense, len(c.obs.WeightSet()))
	for _, w := range c.obs.WeightSet() {
		table[w] = powSym(thetas, w)
	}

	return zs, table, nil
}

// ComputeEFMs resolves one event's (zs, phats) under the same
// event-or-explicit contract and delegates to the observable's moment set.
func (c *EFPCore) ComputeEFMs(event measure.Event, zs []float64, phats *mat.Dense) (map[int][]float64, error) {
	set := c.obs.EFMSet()
	if set == nil {
		return nil, ErrNoMomentSet
	}
	if event != nil {
		if !c.HasMeasure() {
			return nil, ErrNoMeasure
		}
		var err error
		zs, phats, err = c.Measure().EvaluateMoment(event)
		if err != nil {
			return nil, err
		}
	} else if zs == nil || phats == nil {
		return nil, ErrMissingInput
	}

	return set.ComputeMoments(zs, phats)
}

// powSym raises every entry of s to the integer power w, elementwise.
func powSym(s *mat.SymDense, w int) *mat.SymDense {
	n := s.SymmetricDim()
	if n == 0 {
		return &mat.SymDense{}
	}
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, math.Pow(s.At(i, j), float64(w)))
		}
	}

	return out
}
