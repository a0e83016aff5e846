package motion

// Line is the primary gateway for every linear motion.
// It is the only submitter to Planner for ordinary motion; Park is the one
// operation that submits directly.
func (s *System) Line(target Position, line PlanLine) error {
	// 1. Soft-limit check. Jogs are exempt: the jog layer enforces its own
	// bounds.
	if s.settings.SoftLimitEnable && s.state.Load() != StateJog {
		if err := s.collab.Limits.SoftCheck(target); err != nil {
			s.RaiseAlarm(AlarmSoftLimit, err.Error())
			s.Reset()
			return nil
		}
	}

	// 2. Check-mode gate: parsed but never queued.
	if s.state.Load() == StateCheck {
		return nil
	}

	// 3. Back-pressure loop: never busy-spins without driving Poll.
	for s.collab.Planner.IsFull() {
		s.Poll()
		if s.Abort() {
			return nil
		}
		s.collab.Protocol.AutoCycleStart()
	}

	// 4. Submit.
	status, err := s.collab.Planner.Submit(target, line)
	if err != nil {
		return err
	}
	s.metrics.segmentsSubmitted.Add(1)
	s.log.planner("segment submitted")

	if status == SubmitEmptyBlock && s.settings.LaserMode && line.Conditions.Has(ConditionSpindleCW) {
		// Laser raster programs emit zero-length G1 moves purely to change
		// power; sync must take effect in order, hence synchronous (not
		// queued) here rather than via Planner.
		s.collab.Spindle.Sync(SpindleCW, line.SpindleSpeed)
	}

	s.setPosition(target)
	return nil
}
