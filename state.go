package motion

import (
	"sync"
	"sync/atomic"
)

// MachineState is the process-wide machine state.
//
// A small closed enum backed by an atomic word, mutated through CAS for
// conditional transitions (so a concurrent state change is never lost by
// them) and through plain atomic stores for unconditional ones.
type MachineState uint32

const (
	// StateIdle is the default, motion-admitting state.
	StateIdle MachineState = iota
	// StateCycle indicates the planner is actively executing queued motion.
	StateCycle
	// StateHold indicates a feed hold is in effect.
	StateHold
	// StateHoming indicates a homing cycle is in progress.
	StateHoming
	// StateJog indicates a jog move is in progress (soft-limit checks in
	// Line are skipped in this state; the jog layer enforces its own).
	StateJog
	// StateCheck is the dry-run state: motion is parsed but never queued.
	StateCheck
	// StateAlarm is the latched fault state; requires acknowledgement.
	StateAlarm
	// StateSleep is a low-power idle state.
	StateSleep
	// StateSafetyDoor indicates the safety door is open.
	StateSafetyDoor
)

func (s MachineState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCycle:
		return "Cycle"
	case StateHold:
		return "Hold"
	case StateHoming:
		return "Homing"
	case StateJog:
		return "Jog"
	case StateCheck:
		return "Check"
	case StateAlarm:
		return "Alarm"
	case StateSleep:
		return "Sleep"
	case StateSafetyDoor:
		return "SafetyDoor"
	default:
		return "Unknown"
	}
}

// fastMachineState is a lock-free state cell, mutated via CAS for
// conditional transitions and via Store for unconditional ones (entering
// Alarm, Homing, Idle, SafetyDoor). See MachineState.
type fastMachineState struct { //nolint:govet
	_ [64]byte
	v atomic.Uint32
	_ [60]byte
}

func newFastMachineState(initial MachineState) *fastMachineState {
	s := &fastMachineState{}
	s.v.Store(uint32(initial))
	return s
}

func (s *fastMachineState) Load() MachineState {
	return MachineState(s.v.Load())
}

func (s *fastMachineState) Store(state MachineState) {
	s.v.Store(uint32(state))
}

func (s *fastMachineState) TryTransition(from, to MachineState) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}

// OverrideControl is the enumerated parking-override mode.
type OverrideControl uint32

const (
	// OverrideControlNormal is the default override mode.
	OverrideControlNormal OverrideControl = iota
	// OverrideControlParkingMotion forces parking on every hold.
	OverrideControlParkingMotion
	// OverrideControlDisabled turns parking motion off on every hold.
	OverrideControlDisabled
)

// AlarmCode is one of the latched alarm conditions the gateway can raise.
type AlarmCode int

const (
	AlarmNone AlarmCode = iota
	AlarmHardLimit
	AlarmProbeFailInitial
	AlarmProbeFailContact
	AlarmHomingFailReset
	AlarmAbortCycle
	AlarmSoftLimit
)

func (a AlarmCode) String() string {
	switch a {
	case AlarmNone:
		return "none"
	case AlarmHardLimit:
		return "hard-limit"
	case AlarmProbeFailInitial:
		return "probe-fail-initial"
	case AlarmProbeFailContact:
		return "probe-fail-contact"
	case AlarmHomingFailReset:
		return "homing-fail-reset"
	case AlarmAbortCycle:
		return "abort-cycle"
	case AlarmSoftLimit:
		return "soft-limit"
	default:
		return "unknown"
	}
}

// Position is an N-axis vector of absolute machine-coordinate distances,
// in millimetres, kept single precision throughout: reimplementers must
// not silently switch to double precision.
type Position []float32

// Clone returns a copy of p, since Position is otherwise shared by
// reference and the probe snapshot in particular must not alias the live
// machine position.
func (p Position) Clone() Position {
	out := make(Position, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and o are bit-for-bit identical. Endpoint
// exactness is defined in terms of this, not within-tolerance comparison.
func (p Position) Equal(o Position) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// System is the single process-wide machine-state record, kept as one
// struct passed explicitly rather than scattered globals. It is
// constructed by New
// and is safe for the foreground owner to call any method on; Reset,
// RequestHold, RequestCycleStart, RequestStatusReport, RequestSafetyDoor,
// and SignalProbeTrigger are additionally safe to call concurrently from
// any other goroutine standing in for an interrupt handler.
type System struct {
	settings Settings
	collab   Collaborators
	log      *gatewayLogger
	metrics  *Metrics

	rt    RTFlags
	state *fastMachineState
	abort atomic.Bool
	step  stepControlWord

	positionMu sync.Mutex
	position   Position

	probeMu           sync.Mutex
	probeSucceeded    bool
	probePosition     Position
	probeStateActive  atomic.Bool
	overrideControl   atomic.Uint32
	pendingAlarm      atomic.Int32
	statusReportLimit *StatusReportLimiter
}

// State returns the current machine state.
func (s *System) State() MachineState { return s.state.Load() }

// Abort reports whether a reset has been observed and latched.
func (s *System) Abort() bool { return s.abort.Load() }

// Position returns a copy of the current machine position.
func (s *System) Position() Position {
	s.positionMu.Lock()
	defer s.positionMu.Unlock()
	return s.position.Clone()
}

func (s *System) setPosition(p Position) {
	s.positionMu.Lock()
	s.position = p.Clone()
	s.positionMu.Unlock()
}

// ProbeSucceeded reports whether the most recent probe cycle triggered the
// probe pin before travel was exhausted.
func (s *System) ProbeSucceeded() bool {
	s.probeMu.Lock()
	defer s.probeMu.Unlock()
	return s.probeSucceeded
}

// ProbePosition returns the machine position snapshot captured at the most
// recent probe trigger (or at end-of-travel, on a no-error probe).
func (s *System) ProbePosition() Position {
	s.probeMu.Lock()
	defer s.probeMu.Unlock()
	return s.probePosition.Clone()
}

// OverrideControl returns the current parking-override mode.
func (s *System) OverrideControl() OverrideControl {
	return OverrideControl(s.overrideControl.Load())
}

// SetOverrideControl updates the parking-override mode. Exposed for
// mc_override_ctrl_update(mode).
func (s *System) SetOverrideControl(mode OverrideControl) {
	s.overrideControl.Store(uint32(mode))
}

// PendingAlarm returns the first alarm code latched since the last
// Reinitialize, or AlarmNone if no alarm is pending. Tracked separately
// from State() so that a latched alarm can be observed even from a
// motion state that hasn't yet transitioned to StateAlarm.
func (s *System) PendingAlarm() AlarmCode {
	return AlarmCode(s.pendingAlarm.Load())
}

func (s *System) hasPendingAlarm() bool {
	return AlarmCode(s.pendingAlarm.Load()) != AlarmNone
}

// RequestHold sets RTFlagFeedHold. Safe to call concurrently with the
// foreground, e.g. from an interrupt handler.
func (s *System) RequestHold() { s.rt.Set(RTFlagFeedHold) }

// RequestCycleStart sets RTFlagCycleStart. Safe to call concurrently.
func (s *System) RequestCycleStart() { s.rt.Set(RTFlagCycleStart) }

// RequestStatusReport sets RTFlagStatusReport. Safe to call concurrently.
func (s *System) RequestStatusReport() { s.rt.Set(RTFlagStatusReport) }

// RequestSafetyDoor sets RTFlagSafetyDoor. Safe to call concurrently.
func (s *System) RequestSafetyDoor() { s.rt.Set(RTFlagSafetyDoor) }
