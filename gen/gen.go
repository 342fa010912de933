package gen

import (
	"math"
	"math/rand"

	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// Kinematic ranges for synthetic events. Transverse momenta fall off
// exponentially with unit mean; rapidities and azimuths are uniform.
const (
	maxAbsRapidity = 2.0
	minPt          = 1e-3
)

// RandomHadrEvents returns nEvents events of nParticles massless particles
// each, in ptyphim coordinates: rows (pt, y, phi, 0).
func RandomHadrEvents(r *rand.Rand, nEvents, nParticles int) []measure.Event {
	events := make([]measure.Event, nEvents)
	for i := range events {
		ev := make(measure.Event, nParticles)
		for j := range ev {
			ev[j] = []float64{
				minPt + r.ExpFloat64(),
				maxAbsRapidity * (2*r.Float64() - 1),
				2 * math.Pi * r.Float64(),
				0,
			}
		}
		events[i] = ev
	}

	return events
}

// RandomEEEvents returns nEvents events of nParticles massless particles
// each, in epxpypz coordinates: rows (E, px, py, pz) with E = |p|,
// directions uniform on the sphere.
func RandomEEEvents(r *rand.Rand, nEvents, nParticles int) []measure.Event {
	events := make([]measure.Event, nEvents)
	for i := range events {
		ev := make(measure.Event, nParticles)
		for j := range ev {
			e := minPt + r.ExpFloat64()
			cosTheta := 2*r.Float64() - 1
			sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
			phi := 2 * math.Pi * r.Float64()
			ev[j] = []float64{
				e,
				e * sinTheta * math.Cos(phi),
				e * sinTheta * math.Sin(phi),
				e * cosTheta,
			}
		}
		events[i] = ev
	}

	return events
}
