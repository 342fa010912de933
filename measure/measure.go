package measure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Event is an ordered collection of particle records. Each row holds one
// particle's coordinates in the measure's configured CoordSystem. Events
// are read-only inputs; evaluation never mutates them.
type Event [][]float64

// Kind identifies a measure strategy.
type Kind string

const (
	// Hadr computes z from transverse momentum and pairwise angles from
	// the rapidity-azimuth separation ΔR. Default coords: ptyphim.
	Hadr Kind = "hadr"

	// EE computes z from energy and pairwise angles from normalized
	// Minkowski dot products. Default coords: epxpypz.
	EE Kind = "ee"

	// HadrEFM is the moment-capable hadronic measure: z from transverse
	// momentum, coordinates as energy-scaled momentum directions.
	HadrEFM Kind = "hadrefm"

	// EEEFM is the moment-capable e⁺e⁻ measure: z from energy,
	// coordinates as energy-scaled momentum directions.
	EEEFM Kind = "eeefm"
)

// Moment reports whether the kind produces (zs, phats) for moment-type
// observables rather than pairwise angles.
func (k Kind) Moment() bool { return strings.Contains(string(k), "efm") }

// valid reports whether the kind is one this package implements.
func (k Kind) valid() bool {
	switch k {
	case Hadr, EE, HadrEFM, EEEFM:
		return true
	}

	return false
}

// defaultCoords is the coordinate system a kind anticipates when the
// configuration does not override it.
func (k Kind) defaultCoords() CoordSystem {
	if k == EE || k == EEEFM {
		return EPxPyPz
	}

	return PtYPhiM
}

// Defaults for Options. Beta and kappa multiply angles and energies as
// exponents; both default to 1 so the measure is the plain (z, θ) one.
const (
	DefaultBeta  = 1.0
	DefaultKappa = 1.0
)

// Options configures a Measure.
//
// Fields:
//   - Beta       — angular exponent, must be > 0. Moment-capable kinds
//     ignore it (moments fold the angular weighting into themselves).
//   - Kappa      — energy exponent applied to each z before normalization.
//   - Normed     — scale zs to unit sum.
//   - Coords     — coordinate system of incoming events; empty selects the
//     kind's default.
//   - CheckInput — validate each event row (width, finiteness) on every
//     Evaluate call.
//   - Subslicing — whether downstream moment sets may compute a tensor by
//     slicing a higher-rank one instead of recontracting.
type Options struct {
	Beta       float64
	Kappa      float64
	Normed     bool
	Coords     CoordSystem
	CheckInput bool
	Subslicing bool
}

// DefaultOptions returns the canonical configuration: beta=1, kappa=1,
// normalized zs, kind-default coordinates, input checking on.
func DefaultOptions() Options {
	return Options{
		Beta:       DefaultBeta,
		Kappa:      DefaultKappa,
		Normed:     true,
		CheckInput: true,
	}
}

// Measure converts events into the coordinates an observable consumes.
// Configuration is fixed at construction; the only permitted mutation is
// ClearBeta, the one-time normalization applied when a moment-type
// evaluable adopts the measure.
type Measure struct {
	kind       Kind
	beta       *float64
	kappa      float64
	normed     bool
	coords     CoordSystem
	checkInput bool
	subslicing bool
}

// New constructs a Measure of the given kind.
//
// Errors:
//   - ErrUnknownKind — kind is not implemented here.
//   - ErrBadCoords   — opts.Coords is set but not a known system.
//   - ErrBadParam    — opts.Beta <= 0 for an angle-producing kind.
func New(kind Kind, opts Options) (*Measure, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	coords := opts.Coords
	if coords == "" {
		coords = kind.defaultCoords()
	}
	if coords != PtYPhiM && coords != EPxPyPz {
		return nil, fmt.Errorf("%w: %q", ErrBadCoords, coords)
	}
	if !kind.Moment() && opts.Beta <= 0 {
		return nil, fmt.Errorf("%w: beta must be > 0, got %v", ErrBadParam, opts.Beta)
	}
	beta := opts.Beta

	return &Measure{
		kind:       kind,
		beta:       &beta,
		kappa:      opts.Kappa,
		normed:     opts.Normed,
		coords:     coords,
		checkInput: opts.CheckInput,
		subslicing: opts.Subslicing,
	}, nil
}

// Kind returns the measure's kind identifier.
func (m *Measure) Kind() Kind { return m.kind }

// Beta returns the angular exponent; ok is false after ClearBeta.
func (m *Measure) Beta() (beta float64, ok bool) {
	if m.beta == nil {
		return 0, false
	}

	return *m.beta, true
}

// Kappa returns the energy exponent.
func (m *Measure) Kappa() float64 { return m.kappa }

// Normed reports whether zs are scaled to unit sum.
func (m *Measure) Normed() bool { return m.normed }

// Coords returns the coordinate system incoming events are expected in.
func (m *Measure) Coords() CoordSystem { return m.coords }

// CheckInput reports whether events are validated on every evaluation.
func (m *Measure) CheckInput() bool { return m.checkInput }

// Subslicing reports whether moment sets may derive tensors by slicing.
func (m *Measure) Subslicing() bool { return m.subslicing }

// ClearBeta permanently drops the angular exponent. Moment-type evaluables
// apply it once at construction; after the call Beta reports absence.
func (m *Measure) ClearBeta() { m.beta = nil }

// Evaluate converts one event into (zs, thetas) for a polynomial-type
// observable: zs[i] is the energy fraction of particle i and thetas is the
// symmetric matrix of pairwise angular weights θ_ij^beta.
//
// Moment-capable kinds do not produce pairwise angles; they return
// ErrAngleOnly. An empty event yields empty zs and a 0×0 matrix.
func (m *Measure) Evaluate(event Event) (zs []float64, thetas *mat.SymDense, err error) {
	if m.kind.Moment() {
		return nil, nil, ErrAngleOnly
	}
	hadrRows, p4Rows, err := m.canonical(event)
	if err != nil {
		return nil, nil, err
	}

	beta := DefaultBeta
	if m.beta != nil {
		beta = *m.beta
	}
	n := len(event)
	if m.kind == Hadr {
		zs = m.fractions(hadrRows, 0)
		thetas = pairwise(n, func(i, j int) float64 {
			dy := hadrRows[i][1] - hadrRows[j][1]
			dphi := wrapDeltaPhi(hadrRows[i][2] - hadrRows[j][2])

			return math.Pow(dy*dy+dphi*dphi, beta/2)
		})

		return zs, thetas, nil
	}

	// EE: angles from normalized Minkowski dot products.
	zs = m.fractions(p4Rows, 0)
	thetas = pairwise(n, func(i, j int) float64 {
		dot := p4Rows[i][0]*p4Rows[j][0] -
			p4Rows[i][1]*p4Rows[j][1] -
			p4Rows[i][2]*p4Rows[j][2] -
			p4Rows[i][3]*p4Rows[j][3]

		return math.Pow(2*dot/(p4Rows[i][0]*p4Rows[j][0]), beta/2)
	})

	return zs, thetas, nil
}

// EvaluateMoment converts one event into (zs, phats) for a moment-type
// observable: phats row i is particle i's spatial momentum scaled by 1/E.
//
// Angle-producing kinds return ErrMomentOnly. An empty event yields empty
// zs and an empty matrix.
func (m *Measure) EvaluateMoment(event Event) (zs []float64, phats *mat.Dense, err error) {
	if !m.kind.Moment() {
		return nil, nil, ErrMomentOnly
	}
	hadrRows, p4Rows, err := m.canonical(event)
	if err != nil {
		return nil, nil, err
	}

	if m.kind == HadrEFM {
		zs = m.fractions(hadrRows, 0)
	} else {
		zs = m.fractions(p4Rows, 0)
	}

	n := len(event)
	if n == 0 {
		return zs, &mat.Dense{}, nil
	}
	phats = mat.NewDense(n, 3, nil)
	for i, p4 := range p4Rows {
		e := p4[0]
		phats.SetRow(i, []float64{p4[1] / e, p4[2] / e, p4[3] / e})
	}

	return zs, phats, nil
}

// canonical validates the event when configured to and materializes it in
// both coordinate systems, converting from whichever one it arrived in.
func (m *Measure) canonical(event Event) (hadrRows, p4Rows Event, err error) {
	if m.checkInput {
		if err = m.validate(event); err != nil {
			return nil, nil, err
		}
	}
	if m.coords == PtYPhiM {
		return event, P4sFromPtYPhiMs(event), nil
	}

	return PtYPhiMsFromP4s(event), event, nil
}

// validate enforces row width and finiteness for the configured coords.
func (m *Measure) validate(event Event) error {
	width := 3 // pt, y, phi; mass optional
	if m.coords == EPxPyPz {
		width = 4
	}
	for i, row := range event {
		if len(row) < width {
			return fmt.Errorf("%w: row %d has %d columns, need at least %d (%s)",
				ErrBadEvent, i, len(row), width, m.coords)
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d contains a non-finite value", ErrBadEvent, i)
			}
		}
	}

	return nil
}

// fractions computes zs from column col of rows, applying the kappa
// exponent and, when configured, unit-sum normalization.
func (m *Measure) fractions(rows Event, col int) []float64 {
	zs := make([]float64, len(rows))
	for i, row := range rows {
		zs[i] = math.Pow(row[col], m.kappa)
	}
	if m.normed {
		if total := floats.Sum(zs); total != 0 {
			floats.Scale(1/total, zs)
		}
	}

	return zs
}

// pairwise builds the symmetric n×n matrix with zero diagonal whose (i,j)
// entry, i≠j, is f(i, j).
func pairwise(n int, f func(i, j int) float64) *mat.SymDense {
	if n == 0 {
		return &mat.SymDense{}
	}
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.SetSym(i, j, f(i, j))
		}
	}

	return s
}
