package efm

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

var (
	// ErrBadRank is returned when a requested moment rank is < 1.
	ErrBadRank = errors.New("efm: rank must be >= 1")

	// ErrEmptySet is returned when a Set is constructed with no ranks.
	ErrEmptySet = errors.New("efm: moment set has no ranks")

	// ErrShapeMismatch is returned when len(zs) does not match the number
	// of phat rows.
	ErrShapeMismatch = errors.New("efm: zs and phats disagree on particle count")
)

// Dim is the dimensionality of the momentum directions the measures
// produce; a rank-v tensor is flattened to length Dim^v.
const Dim = 3

// EFM is a single-rank moment observable.
type EFM struct {
	*core.EFMCore
	*core.BatchEvaluator[[]float64]

	v int
}

// New constructs the rank-v moment observable from params. The configured
// measure kind must be moment-capable; beta is cleared per the moment
// contract.
func New(v int, params core.Params) (*EFM, error) {
	if v < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRank, v)
	}
	c, err := core.NewEFMCore(params)
	if err != nil {
		return nil, err
	}
	e := &EFM{EFMCore: c, v: v}
	e.BatchEvaluator = core.NewBatchEvaluator(func(ev measure.Event) ([]float64, error) {
		return e.Compute(ev, nil, nil)
	})

	return e, nil
}

// Rank returns the tensor rank v.
func (e *EFM) Rank() int { return e.v }

// Compute evaluates the rank-v moment tensor for one event, flattened
// row-major to length Dim^v. A non-nil event is resolved through the
// measure; a nil event requires explicit zs and phats.
func (e *EFM) Compute(event measure.Event, zs []float64, phats *mat.Dense) ([]float64, error) {
	zs, phats, err := e.ZsPhats(event, zs, phats)
	if err != nil {
		return nil, err
	}

	return raise(zs, phats, e.v)
}

// Set is a collection of moment ranks evaluated together on one event:
// the EfmSet every moment-routed polynomial observable shares. Building
// rank r+1 reuses each particle's rank-r outer product, so a Set is
// cheaper than its ranks computed independently.
type Set struct {
	*core.EFMCore
	*core.BatchEvaluator[map[int][]float64]

	ranks []int // sorted, distinct
}

// NewSet constructs a moment set over the given ranks (deduplicated,
// sorted) from params.
func NewSet(ranks []int, params core.Params) (*Set, error) {
	if len(ranks) == 0 {
		return nil, ErrEmptySet
	}
	distinct := make(map[int]struct{}, len(ranks))
	for _, v := range ranks {
		if v < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrBadRank, v)
		}
		distinct[v] = struct{}{}
	}
	sorted := make([]int, 0, len(distinct))
	for v := range distinct {
		sorted = append(sorted, v)
	}
	sort.Ints(sorted)

	c, err := core.NewEFMCore(params)
	if err != nil {
		return nil, err
	}
	s := &Set{EFMCore: c, ranks: sorted}
	s.BatchEvaluator = core.NewBatchEvaluator(func(ev measure.Event) (map[int][]float64, error) {
		return s.Compute(ev, nil, nil)
	})

	return s, nil
}

// Ranks returns the sorted distinct ranks in the set. Read-only.
func (s *Set) Ranks() []int { return s.ranks }

// Compute evaluates every rank in the set for one event under the usual
// event-or-explicit contract.
func (s *Set) Compute(event measure.Event, zs []float64, phats *mat.Dense) (map[int][]float64, error) {
	zs, phats, err := s.ZsPhats(event, zs, phats)
	if err != nil {
		return nil, err
	}

	return s.ComputeMoments(zs, phats)
}

// ComputeMoments is the moment kernel on explicit coordinates; it
// satisfies core.MomentSet. All ranks share one pass over the particles:
// per particle the rank-r outer product extends to rank r+1 by one outer
// multiplication with its direction.
func (s *Set) ComputeMoments(zs []float64, phats *mat.Dense) (map[int][]float64, error) {
	n, _ := phats.Dims()
	if n != len(zs) {
		return nil, fmt.Errorf("%w: %d zs, %d phat rows", ErrShapeMismatch, len(zs), n)
	}

	maxRank := s.ranks[len(s.ranks)-1]
	wanted := make(map[int]bool, len(s.ranks))
	out := make(map[int][]float64, len(s.ranks))
	for _, v := range s.ranks {
		wanted[v] = true
		out[v] = make([]float64, tensorLen(v))
	}

	for p := 0; p < n; p++ {
		dir := phats.RawRowView(p)
		t := []float64{zs[p]}
		for r := 1; r <= maxRank; r++ {
			t = outer(t, dir)
			if wanted[r] {
				floats.Add(out[r], t)
			}
		}
	}

	return out, nil
}

// raise computes one flattened rank-v tensor from explicit coordinates.
func raise(zs []float64, phats *mat.Dense, v int) ([]float64, error) {
	n, _ := phats.Dims()
	if n != len(zs) {
		return nil, fmt.Errorf("%w: %d zs, %d phat rows", ErrShapeMismatch, len(zs), n)
	}
	acc := make([]float64, tensorLen(v))
	for p := 0; p < n; p++ {
		dir := phats.RawRowView(p)
		t := []float64{zs[p]}
		for r := 0; r < v; r++ {
			t = outer(t, dir)
		}
		floats.Add(acc, t)
	}

	return acc, nil
}

// outer flattens the outer product t ⊗ dir in row-major order.
func outer(t, dir []float64) []float64 {
	out := make([]float64, 0, len(t)*len(dir))
	for _, a := range t {
		for _, b := range dir {
			out = append(out, a*b)
		}
	}

	return out
}

// tensorLen is Dim^v.
func tensorLen(v int) int {
	n := 1
	for i := 0; i < v; i++ {
		n *= Dim
	}

	return n
}
