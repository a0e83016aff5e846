package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_CheckModeNeverMoves(t *testing.T) {
	f := newTestFixture(defaultTestSettings())
	f.sys.state.Store(StateCheck)

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ProbeCheckMode, result)
	assert.True(t, f.planner.IsEmpty())
}

func TestProbe_AbortObservedBeforeMotion(t *testing.T) {
	f := newTestFixture(defaultTestSettings())
	f.sys.Reset()

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ProbeAbort, result)
}

func TestProbe_FailInitWhenPinAlreadyAsserted(t *testing.T) {
	f := newTestFixture(defaultTestSettings())
	f.probe.setAsserted(true)

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ProbeFailInit, result)
	assert.Equal(t, StateAlarm, f.sys.State())
}

func TestProbe_FoundViaSignalProbeTrigger(t *testing.T) {
	f := newTestFixture(defaultTestSettings())
	// Simulate the probe cycle starting mid-motion so the wait loop in
	// Probe actually iterates at least once.
	f.sys.state.Store(StateCycle)
	f.protocol.onExecuteRealtime = func() {
		f.sys.SignalProbeTrigger()
	}

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ProbeFound, result)
	assert.True(t, f.sys.ProbeSucceeded())
	assert.Equal(t, int64(1), f.sys.Metrics().ProbesRun)
}

func TestProbe_FailEndWithNoErrorFlagSkipsAlarm(t *testing.T) {
	f := newTestFixture(defaultTestSettings())

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, ProbeIsNoError)
	require.NoError(t, err)
	assert.Equal(t, ProbeFailEnd, result)
	assert.NotEqual(t, StateAlarm, f.sys.State())
}

func TestProbe_FailEndWithoutNoErrorFlagRaisesAlarm(t *testing.T) {
	f := newTestFixture(defaultTestSettings())

	result, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ProbeFailEnd, result)
	assert.Equal(t, StateAlarm, f.sys.State())
}

func TestProbe_DiscardsQueuedRemainderAfterCompletion(t *testing.T) {
	f := newTestFixture(defaultTestSettings())

	_, err := f.sys.Probe(Position{1, 0, 0}, PlanLine{}, ProbeIsNoError)
	require.NoError(t, err)
	assert.Equal(t, 1, f.stepper.resetCalls)
	assert.True(t, f.planner.IsEmpty())
}

func TestSignalProbeTrigger_NoOpWhenNotActive(t *testing.T) {
	f := newTestFixture(defaultTestSettings())
	f.sys.state.Store(StateCycle)

	f.sys.SignalProbeTrigger()
	assert.Equal(t, StateCycle, f.sys.State())
}

func TestProbeResult_String(t *testing.T) {
	assert.Equal(t, "FOUND", ProbeFound.String())
	assert.Equal(t, "UNKNOWN", ProbeResult(99).String())
}
