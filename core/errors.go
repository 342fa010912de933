// Package core: sentinel error set.
// Construction and computation errors are sentinels matched with
// errors.Is; wrapping adds context at the boundary where it is known.

package core

import "errors"

var (
	// ErrMissingInput is returned when a computation is given neither a
	// source event nor a fully explicit coordinate pair.
	ErrMissingInput = errors.New("core: if event is nil then zs and thetas/phats cannot also be nil")

	// ErrNoMeasure is returned when an event is passed to an evaluable
	// constructed without a measure; such evaluables accept explicit
	// coordinates only.
	ErrNoMeasure = errors.New("core: no measure attached")

	// ErrNotMomentMeasure is returned when a moment-type evaluable is
	// constructed with a measure kind that cannot produce phats.
	ErrNotMomentMeasure = errors.New("core: must use a moment-capable (efm) measure")

	// ErrNoMomentSet is returned by ComputeEFMs when the observable does
	// not carry a moment set.
	ErrNoMomentSet = errors.New("core: observable has no moment set")

	// ErrBadJobs is returned by BatchCompute when the requested worker
	// count is not -1 (auto) or a positive integer.
	ErrBadJobs = errors.New("core: n_jobs must be -1 or positive")
)
