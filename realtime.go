package motion

// Poll is the realtime executor hook: a non-blocking
// drain of pending asynchronous events. Every busy-wait anywhere in this
// package calls Poll on each iteration, and re-checks Abort() afterwards.
//
// On every invocation it:
//  1. applies any pending reset by latching sys.abort (Reset itself runs
//     the reset actions; Poll does not repeat them);
//  2. services a queued feed-hold/cycle-start transition;
//  3. forwards to Collaborators.Protocol.ExecuteRealtime, so the
//     collaborator can emit any queued alarms / status reports it owns;
//  4. honors a queued STATUS-REPORT flag, subject to StatusReportLimiter.
func (s *System) Poll() {
	if s.rt.Test(RTFlagReset) {
		// EXEC_RESET is sticky (cleared only by Reinitialize): Reset itself
		// already performed the substantive actions; Poll's only job is to
		// make sure the foreground observes the abort promptly.
		s.abort.Store(true)
	}

	if s.rt.Test(RTFlagFeedHold) {
		s.rt.Clear(RTFlagFeedHold)
		if s.state.TryTransition(StateCycle, StateHold) {
			s.log.homing("feed hold entered")
		}
	}
	if s.rt.SwapClear(RTFlagCycleStart) {
		s.collab.Protocol.AutoCycleStart()
		s.state.TryTransition(StateHold, StateCycle)
	}
	if s.rt.Test(RTFlagSafetyDoor) {
		s.state.Store(StateSafetyDoor)
	}

	s.collab.Protocol.ExecuteRealtime()

	if s.rt.Test(RTFlagStatusReport) {
		if s.statusReportLimit == nil || s.statusReportLimit.Allow() {
			s.rt.Clear(RTFlagStatusReport)
			s.collab.Reporter.ProbeParameters(s.Position(), s.ProbeSucceeded())
		}
	}
}

// RaiseAlarm transitions the machine to StateAlarm and logs the
// condition. Alarms are latched conditions requiring acknowledgement.
// The first alarm code raised since the last Reinitialize sticks: a
// later call records the state transition and the log line but does not
// overwrite PendingAlarm(), so a concurrent caller can tell which fault
// triggered the latch.
func (s *System) RaiseAlarm(code AlarmCode, detail string) {
	s.state.Store(StateAlarm)
	s.pendingAlarm.CompareAndSwap(int32(AlarmNone), int32(code))
	s.metrics.alarmsRaised.Add(1)
	s.log.alarm(code, detail)
}
