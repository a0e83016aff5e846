package motion

// Park performs the out-of-band parking move used during feed-hold. It
// bypasses the main planner ring by marking the step-control word with
// StepControlExecuteSysMotion and temporarily redirecting the
// step-segment buffer, then restores it. Once the move is queued, it
// fills the dedicated parking step-segment buffer and wakes the step
// executor out of idle before waiting for completion. Aborts early on
// Abort(). If the planner cannot accept the move, that event is logged
// rather than silently dropped, since whether the skip is intentional or
// latent is unclear.
//
// Whether the move runs at all is settings.ParkingEnable, unless
// settings.EnableParkingOverrideControl is set, in which case the
// runtime OverrideControl mode takes precedence:
// OverrideControlDisabled forces the move off even when ParkingEnable is
// true, and OverrideControlParkingMotion forces it on even when
// ParkingEnable is false.
func (s *System) Park(target Position, line PlanLine) error {
	parkingEnabled := s.settings.ParkingEnable
	if s.settings.EnableParkingOverrideControl {
		switch s.OverrideControl() {
		case OverrideControlDisabled:
			parkingEnabled = false
		case OverrideControlParkingMotion:
			parkingEnabled = true
		}
	}
	if !parkingEnabled {
		return nil
	}

	s.step.set(StepControlExecuteSysMotion)
	s.collab.Stepper.ParkingSetupBuffer()
	defer func() {
		s.collab.Stepper.ParkingRestoreBuffer()
		s.step.clear(StepControlExecuteSysMotion)
	}()

	status, err := s.collab.Planner.Submit(target, line)
	if err != nil {
		return err
	}
	if status == SubmitEmptyBlock {
		s.log.planner("parking move skipped: planner rejected zero-length or full block")
		return nil
	}

	s.collab.Stepper.PrepBuffer()
	s.collab.Stepper.WakeUp()

	for {
		s.Poll()
		if s.Abort() {
			return nil
		}
		if err := s.collab.Planner.Synchronize(); err != nil {
			return err
		}
		break
	}

	s.setPosition(target)
	return nil
}
