package motion

// ProbeFlags is the parser flags bit-set for probe cycles.
type ProbeFlags uint32

const (
	// ProbeIsAway inverts the probe-pin polarity, for a "probe-away" move.
	ProbeIsAway ProbeFlags = 1 << iota
	// ProbeIsNoError suppresses PROBE-FAIL-CONTACT when travel completes
	// without a trigger.
	ProbeIsNoError
)

func (f ProbeFlags) Has(bit ProbeFlags) bool { return f&bit != 0 }

// ProbeResult is one of the possible outcomes of a probe cycle.
type ProbeResult int

const (
	// ProbeCheckMode: machine was in CHECK state, no motion performed.
	ProbeCheckMode ProbeResult = iota
	// ProbeAbort: reset observed during synchronize or motion.
	ProbeAbort
	// ProbeFailInit: probe pin was already asserted before motion began.
	ProbeFailInit
	// ProbeFailEnd: motion completed without the pin triggering.
	ProbeFailEnd
	// ProbeFound: the pin triggered within travel.
	ProbeFound
)

func (r ProbeResult) String() string {
	switch r {
	case ProbeCheckMode:
		return "CHECK-MODE"
	case ProbeAbort:
		return "ABORT"
	case ProbeFailInit:
		return "FAIL-INIT"
	case ProbeFailEnd:
		return "FAIL-END"
	case ProbeFound:
		return "FOUND"
	default:
		return "UNKNOWN"
	}
}

// Probe runs a blocking probing move with pin-triggered early termination.
func (s *System) Probe(target Position, line PlanLine, flags ProbeFlags) (ProbeResult, error) {
	if s.state.Load() == StateCheck {
		return ProbeCheckMode, nil
	}

	if err := s.collab.Planner.Synchronize(); err != nil {
		return 0, err
	}
	if s.Abort() {
		return ProbeAbort, nil
	}

	isAway := flags.Has(ProbeIsAway)
	s.collab.Probe.ConfigureInvertMask(isAway)

	s.probeMu.Lock()
	s.probeSucceeded = false
	s.probeMu.Unlock()

	if s.collab.Probe.GetState() {
		s.RaiseAlarm(AlarmProbeFailInitial, "probe pin asserted before motion began")
		s.collab.Probe.ConfigureInvertMask(false)
		return ProbeFailInit, nil
	}

	s.probeStateActive.Store(true)

	if err := s.Line(target, line); err != nil {
		s.probeStateActive.Store(false)
		return 0, err
	}

	s.collab.Stepper.ActivateProbeMonitor()
	s.RequestCycleStart()

	for s.state.Load() != StateIdle && !s.Abort() {
		s.Poll()
	}

	aborted := s.Abort()

	active := s.probeStateActive.Load()
	var result ProbeResult
	switch {
	case aborted:
		result = ProbeAbort
	case active:
		// No trigger: motion ran to completion.
		if flags.Has(ProbeIsNoError) {
			s.probeMu.Lock()
			s.probePosition = s.Position()
			s.probeMu.Unlock()
		} else {
			s.RaiseAlarm(AlarmProbeFailContact, "probe did not contact surface within travel")
		}
		result = ProbeFailEnd
	default:
		s.probeMu.Lock()
		s.probeSucceeded = true
		s.probeMu.Unlock()
		result = ProbeFound
	}

	s.collab.Stepper.DeactivateProbeMonitor()
	s.collab.Probe.ConfigureInvertMask(false)
	s.probeStateActive.Store(false)
	s.Poll()

	// The queued remainder of the probe segment must be discarded: it
	// stopped mid-segment and would otherwise fire on the next cycle-start.
	s.collab.Stepper.Reset()
	s.collab.Planner.Reset()
	s.collab.Planner.SyncPosition(s.Position())

	if s.settings.MessageProbeCoordinates && result != ProbeAbort {
		s.collab.Reporter.ProbeParameters(s.ProbePosition(), s.ProbeSucceeded())
	}

	s.metrics.probesRun.Add(1)
	s.log.probe("probe cycle complete", result == ProbeFound)
	return result, nil
}

// SignalProbeTrigger is the edge-detection callback the probe-pin
// interrupt handler invokes on trigger. It captures the machine position
// and ends the in-flight probing move.
func (s *System) SignalProbeTrigger() {
	if !s.probeStateActive.CompareAndSwap(true, false) {
		return
	}
	pos := s.Position()
	s.probeMu.Lock()
	s.probePosition = pos
	s.probeMu.Unlock()
	s.state.Store(StateIdle)
}
