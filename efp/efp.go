package efp

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

var (
	// ErrEmptyGraph is returned when an EFP is constructed with no edges.
	ErrEmptyGraph = errors.New("efp: multigraph must have at least one edge")

	// ErrBadEdge is returned for an edge with a negative vertex label.
	ErrBadEdge = errors.New("efp: edge vertices must be non-negative")

	// ErrSelfLoop is returned for an edge joining a vertex to itself;
	// the angular weight of a particle with itself vanishes identically.
	ErrSelfLoop = errors.New("efp: self-loops are not allowed")

	// ErrMomentMeasure is returned when an EFP is configured with a
	// moment-capable measure; the direct vertex-sum kernel needs pairwise
	// angles. Route moment-based computation through an efm.Set instead.
	ErrMomentMeasure = errors.New("efp: direct evaluation requires an angle-producing measure")
)

// Graph is a multigraph given as an edge list; repeated pairs raise the
// edge multiplicity. Vertex labels must be non-negative and the vertex
// count is inferred as the largest label plus one.
type Graph [][2]int

// edge is a normalized (low, high) vertex pair.
type edge struct{ u, v int }

// EFP is a polynomial observable indexed by a multigraph.
type EFP struct {
	*core.EFPCore

	edges     Graph
	nVertices int
	weightSet []int
	// byVertex[v] lists the normalized edges whose highest vertex is v,
	// with their multiplicities; the vertex sum consumes edges as soon as
	// both endpoints are assigned.
	byVertex [][]struct{ u, w int }
	efmset   core.MomentSet
}

// New constructs the observable for graph from params. The default
// measure kind is hadr; a moment-capable kind is rejected with
// ErrMomentMeasure at construction, before any computation.
func New(graph Graph, params core.Params) (*EFP, error) {
	if len(graph) == 0 {
		return nil, ErrEmptyGraph
	}

	mults := make(map[edge]int, len(graph))
	nVertices := 0
	for _, e := range graph {
		u, v := e[0], e[1]
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrBadEdge, u, v)
		}
		if u == v {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		if u > v {
			u, v = v, u
		}
		if v+1 > nVertices {
			nVertices = v + 1
		}
		mults[edge{u, v}]++
	}

	weights := make(map[int]struct{}, len(mults))
	byVertex := make([][]struct{ u, w int }, nVertices)
	for e, w := range mults {
		weights[w] = struct{}{}
		byVertex[e.v] = append(byVertex[e.v], struct{ u, w int }{e.u, w})
	}
	weightSet := make([]int, 0, len(weights))
	for w := range weights {
		weightSet = append(weightSet, w)
	}
	sort.Ints(weightSet)

	obs := &EFP{
		edges:     append(Graph(nil), graph...),
		nVertices: nVertices,
		weightSet: weightSet,
		byVertex:  byVertex,
	}
	c, err := core.NewEFPCore(obs, params)
	if err != nil {
		return nil, err
	}
	if c.UsesEFMs() {
		kind, _ := c.MeasureKind()

		return nil, fmt.Errorf("%w: got %q", ErrMomentMeasure, kind)
	}
	obs.EFPCore = c

	return obs, nil
}

// Graph returns a copy of the defining edge list.
func (e *EFP) Graph() Graph { return append(Graph(nil), e.edges...) }

// NumVertices returns the inferred vertex count N.
func (e *EFP) NumVertices() int { return e.nVertices }

// WeightSet returns the sorted distinct edge multiplicities. Read-only.
func (e *EFP) WeightSet() []int { return e.weightSet }

// EFMSet returns nil: this observable computes through pairwise angles.
func (e *EFP) EFMSet() core.MomentSet { return e.efmset }

// Compute evaluates the polynomial on one event through the attached
// measure. An event with fewer particles than needed simply contributes
// its (possibly empty) vertex sum; no special casing.
func (e *EFP) Compute(event measure.Event) (float64, error) {
	zs, table, err := e.ZsThetasTable(event, nil, nil)
	if err != nil {
		return 0, err
	}

	return e.value(zs, table), nil
}

// ComputeFrom evaluates the polynomial on explicit coordinates, matching
// what Compute produces for an event the measure maps to (zs, thetas).
func (e *EFP) ComputeFrom(zs []float64, thetas *mat.SymDense) (float64, error) {
	zs, table, err := e.ZsThetasTable(nil, zs, thetas)
	if err != nil {
		return 0, err
	}

	return e.value(zs, table), nil
}

// value runs the direct vertex sum using the angle-power table.
func (e *EFP) value(zs []float64, table map[int]*mat.SymDense) float64 {
	m := len(zs)
	if m == 0 {
		return 0
	}
	assign := make([]int, e.nVertices)

	var sum func(vertex int, prod float64) float64
	sum = func(vertex int, prod float64) float64 {
		if vertex == e.nVertices {
			return prod
		}
		total := 0.0
		for p := 0; p < m; p++ {
			f := prod * zs[p]
			for _, ew := range e.byVertex[vertex] {
				f *= table[ew.w].At(assign[ew.u], p)
			}
			if f == 0 {
				continue
			}
			assign[vertex] = p
			total += sum(vertex+1, f)
		}

		return total
	}

	return sum(0, 1)
}
