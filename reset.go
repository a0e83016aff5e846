package motion

// Reset is the ISR-safe abort. It may be invoked from interrupt
// handlers — implemented here as any goroutine racing the foreground.
// Idempotent: a second call before Reinitialize is a no-op.
func (s *System) Reset() {
	if s.rt.TestAndSet(RTFlagReset) {
		return
	}
	s.abort.Store(true)
	s.collab.Spindle.Stop()
	s.collab.Coolant.Stop()

	st := s.state.Load()
	motionActive := st == StateCycle || st == StateHoming || st == StateJog
	holdOrSysMotion := s.step.test(StepControlExecuteHold | StepControlExecuteSysMotion)

	if motionActive || holdOrSysMotion {
		// PendingAlarm, not State(), is the "is an alarm already latched"
		// signal: State() can only ever read as the pre-alarm motion state
		// here, since RaiseAlarm hasn't run yet this call. A concurrent
		// caller may already have latched an alarm (e.g. a hard limit) via
		// PendingAlarm before this Reset observed it; don't overwrite it.
		if !s.hasPendingAlarm() {
			if st == StateHoming {
				s.RaiseAlarm(AlarmHomingFailReset, "reset observed during homing cycle")
			} else {
				s.RaiseAlarm(AlarmAbortCycle, "reset observed during active motion")
			}
		}
		s.collab.Stepper.GoIdle()
	}

	s.metrics.resetsObserved.Add(1)
	s.log.reset(false)
}

// Reinitialize clears the sticky abort/EXEC_RESET latch and returns the
// machine to StateIdle, standing in for a reboot-equivalent
// reinitialization — the only thing that can clear sys.abort once
// latched. It is the operation a supervising main loop calls once it has
// observed Abort() and reinitialized collaborators.
func (s *System) Reinitialize() {
	s.rt.Clear(RTFlagReset)
	s.rt.Clear(RTFlagFeedHold)
	s.rt.Clear(RTFlagCycleStart)
	s.rt.Clear(RTFlagSafetyDoor)
	s.abort.Store(false)
	s.step.clear(StepControlExecuteHold | StepControlExecuteSysMotion | StepControlEndMotion)
	s.pendingAlarm.Store(int32(AlarmNone))
	s.state.Store(StateIdle)
}
