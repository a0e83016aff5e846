package motion

import "errors"

// Standard errors returned by gateway operations. Alarms (see AlarmCode) are
// a separate, latched concept delivered through System.RaiseAlarm and are not
// represented as errors: they model machine-state faults, not programmer or
// caller faults.
var (
	// ErrNilCollaborator is returned by New when a required collaborator
	// interface was not supplied.
	ErrNilCollaborator = errors.New("motion: required collaborator is nil")

	// ErrInvalidAxisCount is returned by New when the configured axis count
	// is outside the supported range (1..MaxAxes).
	ErrInvalidAxisCount = errors.New("motion: invalid axis count")

	// ErrNotIdle is returned by Home when the machine is not in a state
	// that permits starting a homing cycle.
	ErrNotIdle = errors.New("motion: machine is not idle")

	// ErrPlannerNotEmpty is returned by Home when the planner is not empty
	// at the start of a homing cycle.
	ErrPlannerNotEmpty = errors.New("motion: planner is not empty")
)
