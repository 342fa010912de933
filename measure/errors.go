// Package measure: sentinel error set.
// All constructors and evaluation paths return these sentinels (possibly
// wrapped with context via fmt.Errorf("...: %w", ...)); tests match them
// with errors.Is. No user-triggered condition panics.

package measure

import "errors"

var (
	// ErrUnknownKind is returned when a measure kind identifier is not one
	// of the kinds this package implements.
	ErrUnknownKind = errors.New("measure: unknown measure kind")

	// ErrUnknownParam is returned when a configuration mapping contains a
	// key that no measure recognizes. The wrapping error names the
	// offending keys.
	ErrUnknownParam = errors.New("measure: unrecognized keyword")

	// ErrBadParam is returned when a recognized configuration key carries
	// a value of the wrong type or an out-of-range value (e.g. beta <= 0).
	ErrBadParam = errors.New("measure: invalid parameter value")

	// ErrBadCoords is returned when a coordinate system identifier is not
	// ptyphim or epxpypz.
	ErrBadCoords = errors.New("measure: unknown coordinate system")

	// ErrBadEvent is returned by Evaluate when input checking is enabled
	// and an event row is too narrow for the configured coordinate system
	// or contains non-finite values.
	ErrBadEvent = errors.New("measure: malformed event")

	// ErrMomentOnly is returned when EvaluateMoment is called on a measure
	// whose kind produces pairwise angles rather than momentum directions.
	ErrMomentOnly = errors.New("measure: kind does not produce phats")

	// ErrAngleOnly is returned when Evaluate is called on a moment-capable
	// measure; moment kinds expose (zs, phats) via EvaluateMoment.
	ErrAngleOnly = errors.New("measure: moment kind does not produce pairwise angles")
)
