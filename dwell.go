package motion

import "time"

// dwellTick bounds how long Dwell sleeps between Poll calls, so a reset is
// observed within one tick.
const dwellTick = 10 * time.Millisecond

// Dwell drains the planner and blocks for seconds wall-clock time while
// continuing to service Poll. Not cancellable except by reset.
func (s *System) Dwell(seconds float32) error {
	if s.state.Load() == StateCheck {
		return nil
	}
	if err := s.collab.Planner.Synchronize(); err != nil {
		return err
	}
	if s.Abort() {
		return nil
	}

	remaining := time.Duration(seconds * float32(time.Second))
	for remaining > 0 {
		s.Poll()
		if s.Abort() {
			return nil
		}
		step := dwellTick
		if step > remaining {
			step = remaining
		}
		platformSleep(step)
		remaining -= step
	}
	return nil
}
