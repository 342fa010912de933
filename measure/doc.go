// Package measure converts particle events into the normalized
// (energy fraction, angle) coordinates that energy-flow observables
// consume.
//
// 🚀 What is a measure?
//
//	Every energy-flow observable is a function of per-particle energy
//	fractions z_i and pairwise angular weights θ_ij (or unit momentum
//	directions p̂_i for moment-type observables). A Measure is the
//	pluggable strategy that produces those quantities from a raw event,
//	per a configured coordinate system and exponents:
//	  • hadr    — hadronic: z from transverse momentum, θ from rapidity-
//	    azimuth separation ΔR
//	  • ee      — e⁺e⁻: z from energy, θ from normalized four-vector dot
//	    products
//	  • hadrefm / eeefm — moment-capable variants returning (z, p̂)
//	    instead of pairwise angles
//
// ✨ Key features:
//   - kappa energy exponent and beta angular exponent, with unit-sum
//     normalization of the z vector (Normed)
//   - two coordinate systems, ptyphim and epxpypz, with exact
//     conversions in both directions
//   - optional per-event input validation (row width, finiteness)
//   - empty events are valid and produce empty coordinates
//
// ⚙️ Usage:
//
//	import "github.com/SebastianMacaluso/EnergyFlow/measure"
//
//	m, err := measure.New(measure.Hadr, measure.DefaultOptions())
//	if err != nil { ... }
//	zs, thetas, err := m.Evaluate(event) // event: rows of (pt, y, phi[, m])
//
// Errors are package-level sentinels (ErrUnknownKind, ErrBadParam,
// ErrBadEvent, ...) matched with errors.Is.
package measure
