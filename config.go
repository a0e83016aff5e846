package motion

import "time"

// MaxAxes bounds the supported axis count (typically 3 to 6).
const MaxAxes = 6

// Settings carries the configuration flags the gateway consults. These
// were compile-time conditionals in the original firmware; here they are
// ordinary configuration values so every path is exercisable by host
// tests.
type Settings struct {
	// AxisCount is the number of axes in Position vectors (1..MaxAxes).
	AxisCount int

	// SoftLimitEnable gates the soft-limit check in Line.
	SoftLimitEnable bool
	// LaserMode enables the zero-length spindle-sync behaviour in Line.
	LaserMode bool

	// ArcTolerance is the maximum chord-to-arc deviation, in millimetres,
	// used by Arc.
	ArcTolerance float32
	// NArcCorrection is the period (in segments) of exact arc correction
	// (recommended 4-20).
	NArcCorrection int
	// ArcAngularTravelEpsilon is the small-angle threshold (radians, ~1e-6)
	// that forces a full revolution for near-zero travel.
	ArcAngularTravelEpsilon float32

	// HomingSingleAxisCommands enables single-axis homing command mode.
	HomingSingleAxisCommands bool
	// LimitsTwoSwitchesOnAxes enables the both-ends hard-limit check before
	// a homing cycle starts.
	LimitsTwoSwitchesOnAxes bool
	// ParkingEnable enables the parking motion path.
	ParkingEnable bool
	// EnableParkingOverrideControl enables runtime override of the parking
	// behaviour via SetOverrideControl.
	EnableParkingOverrideControl bool
	// MessageProbeCoordinates enables emitting a probe-coordinates message
	// via Collaborators.Reporter after every probe cycle whose motion ran
	// (found or not, with the succeeded flag); aborted and FAIL-INIT
	// cycles emit none.
	MessageProbeCoordinates bool

	// StatusReportMinInterval bounds how often Poll honors a queued
	// STATUS-REPORT flag. Zero disables throttling.
	StatusReportMinInterval time.Duration

	// PlannerCapacity sizes the default RingPlanner when no Planner
	// collaborator is supplied explicitly; must be a power of two.
	PlannerCapacity int

	// HomingCycles is the default (non single-axis-command) ordered list of
	// axis masks run by Home, one mask per pass.
	HomingCycles []AxisMask
}

// AxisMask is a bit-set of axis indices, one bit per axis, used to select
// which axes a homing pass or single-axis command addresses.
type AxisMask uint32

// DefaultSettings returns Settings with reasonable defaults for a 3-axis
// machine (ArcTolerance = 0.002mm, NArcCorrection = 12, epsilon ~= 1e-6).
func DefaultSettings() Settings {
	return Settings{
		AxisCount:               3,
		ArcTolerance:            0.002,
		NArcCorrection:          12,
		ArcAngularTravelEpsilon: 1e-6,
		PlannerCapacity:         16,
		HomingCycles:            []AxisMask{1 << 2, (1 << 0) | (1 << 1)}, // Z, then X&Y
	}
}
