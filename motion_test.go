package motion

import (
	"sync"
)

// fakeLimits is a test double for Limits, grounded on the eventloop test
// suite's pattern of hand-rolled fakes with recorded call state rather
// than a mocking framework.
type fakeLimits struct {
	mu sync.Mutex

	softCheckErr error
	goHomeResult Position
	goHomeErr    error
	state        LimitState

	disableCalls int
	enableCalls  int
	initCalls    int
	goHomeMasks  []AxisMask
}

func (f *fakeLimits) SoftCheck(Position) error { return f.softCheckErr }

func (f *fakeLimits) GoHome(mask AxisMask) (Position, error) {
	f.mu.Lock()
	f.goHomeMasks = append(f.goHomeMasks, mask)
	f.mu.Unlock()
	if f.goHomeErr != nil {
		return nil, f.goHomeErr
	}
	return f.goHomeResult, nil
}

func (f *fakeLimits) Disable()            { f.disableCalls++ }
func (f *fakeLimits) Enable()             { f.enableCalls++ }
func (f *fakeLimits) GetState() LimitState { return f.state }
func (f *fakeLimits) Init()               { f.initCalls++ }

// fakeProbe is a test double for Probe.
type fakeProbe struct {
	mu          sync.Mutex
	asserted    bool
	invertCalls []bool
}

func (f *fakeProbe) ConfigureInvertMask(isAway bool) {
	f.mu.Lock()
	f.invertCalls = append(f.invertCalls, isAway)
	f.mu.Unlock()
}

func (f *fakeProbe) GetState() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.asserted
}

func (f *fakeProbe) setAsserted(v bool) {
	f.mu.Lock()
	f.asserted = v
	f.mu.Unlock()
}

// fakeSpindle is a test double for Spindle.
type fakeSpindle struct {
	mu        sync.Mutex
	syncCalls []struct {
		dir SpindleDirection
		rpm float32
	}
	stopCalls int
}

func (f *fakeSpindle) Sync(dir SpindleDirection, rpm float32) {
	f.mu.Lock()
	f.syncCalls = append(f.syncCalls, struct {
		dir SpindleDirection
		rpm float32
	}{dir, rpm})
	f.mu.Unlock()
}

func (f *fakeSpindle) Stop() { f.stopCalls++ }

// fakeCoolant is a test double for Coolant.
type fakeCoolant struct {
	stopCalls int
}

func (f *fakeCoolant) Stop() { f.stopCalls++ }

// fakeStepper is a test double for Stepper.
type fakeStepper struct {
	mu                       sync.Mutex
	wakeUpCalls              int
	goIdleCalls              int
	resetCalls               int
	prepBufferCalls          int
	parkingSetupCalls        int
	parkingRestoreCalls      int
	activateProbeCalls       int
	deactivateProbeCalls     int
}

func (f *fakeStepper) WakeUp()   { f.mu.Lock(); f.wakeUpCalls++; f.mu.Unlock() }
func (f *fakeStepper) GoIdle()   { f.mu.Lock(); f.goIdleCalls++; f.mu.Unlock() }
func (f *fakeStepper) Reset()    { f.mu.Lock(); f.resetCalls++; f.mu.Unlock() }
func (f *fakeStepper) PrepBuffer() { f.mu.Lock(); f.prepBufferCalls++; f.mu.Unlock() }
func (f *fakeStepper) ParkingSetupBuffer()   { f.mu.Lock(); f.parkingSetupCalls++; f.mu.Unlock() }
func (f *fakeStepper) ParkingRestoreBuffer() { f.mu.Lock(); f.parkingRestoreCalls++; f.mu.Unlock() }
func (f *fakeStepper) ActivateProbeMonitor() { f.mu.Lock(); f.activateProbeCalls++; f.mu.Unlock() }
func (f *fakeStepper) DeactivateProbeMonitor() {
	f.mu.Lock()
	f.deactivateProbeCalls++
	f.mu.Unlock()
}

// fakeProtocol is a test double for Protocol. onExecuteRealtime lets tests
// inject side effects (e.g. ending a probe cycle) on every Poll tick.
type fakeProtocol struct {
	mu                 sync.Mutex
	executeCalls       int
	autoCycleCalls     int
	onExecuteRealtime  func()
}

func (f *fakeProtocol) ExecuteRealtime() {
	f.mu.Lock()
	f.executeCalls++
	cb := f.onExecuteRealtime
	f.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (f *fakeProtocol) BufferSynchronize() error { return nil }
func (f *fakeProtocol) AutoCycleStart()          { f.mu.Lock(); f.autoCycleCalls++; f.mu.Unlock() }

// fakeReporter is a test double for Reporter.
type fakeReporter struct {
	mu    sync.Mutex
	calls []struct {
		pos       Position
		succeeded bool
	}
}

func (f *fakeReporter) ProbeParameters(pos Position, succeeded bool) {
	f.mu.Lock()
	f.calls = append(f.calls, struct {
		pos       Position
		succeeded bool
	}{pos.Clone(), succeeded})
	f.mu.Unlock()
}

func (f *fakeReporter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testFixture bundles a System with its fakes for assertions.
type testFixture struct {
	sys      *System
	limits   *fakeLimits
	probe    *fakeProbe
	spindle  *fakeSpindle
	coolant  *fakeCoolant
	stepper  *fakeStepper
	protocol *fakeProtocol
	reporter *fakeReporter
	planner  *RingPlanner
}

func newTestFixture(settings Settings) *testFixture {
	f := &testFixture{
		limits:   &fakeLimits{},
		probe:    &fakeProbe{},
		spindle:  &fakeSpindle{},
		coolant:  &fakeCoolant{},
		stepper:  &fakeStepper{},
		protocol: &fakeProtocol{},
		reporter: &fakeReporter{},
		planner:  NewRingPlanner(settings.PlannerCapacity),
	}
	sys, err := New(settings, Collaborators{
		Planner:  f.planner,
		Limits:   f.limits,
		Probe:    f.probe,
		Spindle:  f.spindle,
		Coolant:  f.coolant,
		Stepper:  f.stepper,
		Protocol: f.protocol,
		Reporter: f.reporter,
	})
	if err != nil {
		panic(err)
	}
	f.sys = sys
	return f
}

func defaultTestSettings() Settings {
	s := DefaultSettings()
	s.AxisCount = 3
	s.PlannerCapacity = 4
	return s
}
