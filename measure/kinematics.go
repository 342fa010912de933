// Package measure: four-vector coordinate conversions.
//
// Two particle coordinate systems are supported:
//   - ptyphim — hadronic collider coordinates (pt, y, phi[, m]); the mass
//     column is optional and defaults to zero.
//   - epxpypz — Cartesian four-momenta (E, px, py, pz).
//
// Conversions here are exact (up to floating point) and allocate fresh
// slices; input rows are never mutated.

package measure

import "math"

// CoordSystem identifies a particle coordinate system.
type CoordSystem string

const (
	// PtYPhiM is the hadronic (pt, y, phi[, m]) coordinate system.
	PtYPhiM CoordSystem = "ptyphim"

	// EPxPyPz is the Cartesian (E, px, py, pz) coordinate system.
	EPxPyPz CoordSystem = "epxpypz"
)

// P4FromPtYPhiM converts one (pt, y, phi[, m]) row to (E, px, py, pz).
//
//	mt = sqrt(m² + pt²)
//	E  = mt·cosh(y),  pz = mt·sinh(y)
//	px = pt·cos(phi), py = pt·sin(phi)
func P4FromPtYPhiM(row []float64) [4]float64 {
	pt, y, phi := row[0], row[1], row[2]
	m := 0.0
	if len(row) > 3 {
		m = row[3]
	}
	mt := math.Hypot(m, pt)

	return [4]float64{
		mt * math.Cosh(y),
		pt * math.Cos(phi),
		pt * math.Sin(phi),
		mt * math.Sinh(y),
	}
}

// PtYPhiMFromP4 converts one (E, px, py, pz) row to (pt, y, phi, m).
//
//	pt  = sqrt(px² + py²)
//	y   = ½·ln((E+pz)/(E−pz))
//	phi = atan2(py, px), wrapped into [0, 2π)
//	m   = sqrt(max(E² − |p|², 0))
func PtYPhiMFromP4(row []float64) [4]float64 {
	e, px, py, pz := row[0], row[1], row[2], row[3]
	pt := math.Hypot(px, py)
	y := 0.5 * math.Log((e+pz)/(e-pz))
	phi := math.Atan2(py, px)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	m2 := e*e - px*px - py*py - pz*pz
	m := 0.0
	if m2 > 0 {
		m = math.Sqrt(m2)
	}

	return [4]float64{pt, y, phi, m}
}

// P4sFromPtYPhiMs converts a whole event from ptyphim to epxpypz rows.
func P4sFromPtYPhiMs(event Event) Event {
	out := make(Event, len(event))
	for i, row := range event {
		p4 := P4FromPtYPhiM(row)
		out[i] = p4[:]
	}

	return out
}

// PtYPhiMsFromP4s converts a whole event from epxpypz to ptyphim rows.
func PtYPhiMsFromP4s(event Event) Event {
	out := make(Event, len(event))
	for i, row := range event {
		hc := PtYPhiMFromP4(row)
		out[i] = hc[:]
	}

	return out
}

// wrapDeltaPhi maps an azimuthal difference into (−π, π].
func wrapDeltaPhi(dphi float64) float64 {
	for dphi > math.Pi {
		dphi -= 2 * math.Pi
	}
	for dphi <= -math.Pi {
		dphi += 2 * math.Pi
	}

	return dphi
}
