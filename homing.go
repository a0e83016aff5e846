package motion

import "golang.org/x/exp/slices"

// Home runs the configured homing sequence. mask is
// non-zero only when Settings.HomingSingleAxisCommands is set, in which
// case exactly that mask is homed instead of the default ordered cycles.
func (s *System) Home(mask AxisMask) error {
	if s.state.Load() != StateIdle {
		return ErrNotIdle
	}
	if !s.collab.Planner.IsEmpty() {
		return ErrPlannerNotEmpty
	}

	if s.settings.LimitsTwoSwitchesOnAxes {
		if st := s.collab.Limits.GetState(); st.AnyAsserted {
			s.Reset()
			s.RaiseAlarm(AlarmHardLimit, "limit switch asserted before homing")
			return nil
		}
	}

	s.collab.Limits.Disable()
	s.state.Store(StateHoming)

	cycles := s.settings.HomingCycles
	if s.settings.HomingSingleAxisCommands && mask != 0 {
		cycles = []AxisMask{mask}
	}

	var seen []AxisMask
	var final Position
	for _, cycleMask := range cycles {
		if cycleMask == 0 {
			continue
		}
		if slices.Contains(seen, cycleMask) {
			// A repeated exact mask would re-home the same axes twice in
			// one cycle; skip it rather than waste a pass.
			continue
		}
		seen = append(seen, cycleMask)

		pos, err := s.collab.Limits.GoHome(cycleMask)
		if err != nil {
			return err
		}
		final = pos
		s.log.homing("homing pass complete")
	}

	s.Poll()
	if s.Abort() {
		return nil
	}

	if final != nil {
		s.setPosition(final)
		s.collab.Planner.SyncPosition(final)
	}
	s.collab.Limits.Enable()
	s.state.Store(StateIdle)
	s.metrics.homingCyclesRun.Add(1)
	return nil
}
