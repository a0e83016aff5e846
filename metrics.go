package motion

import "sync/atomic"

// Metrics holds atomic counters for gateway activity, grounded on the
// teacher's eventloop/metrics.go style of plain atomic counters rather
// than a full histogram/exporter. Purely observational: nothing in this
// package reads its own counters to make decisions.
type Metrics struct {
	segmentsSubmitted atomic.Int64
	arcsDecomposed    atomic.Int64
	probesRun         atomic.Int64
	resetsObserved    atomic.Int64
	alarmsRaised      atomic.Int64
	homingCyclesRun   atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of Metrics' counters.
type MetricsSnapshot struct {
	SegmentsSubmitted int64
	ArcsDecomposed    int64
	ProbesRun         int64
	ResetsObserved    int64
	AlarmsRaised      int64
	HomingCyclesRun   int64
}

// Metrics returns a snapshot of the gateway's activity counters.
func (s *System) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		SegmentsSubmitted: s.metrics.segmentsSubmitted.Load(),
		ArcsDecomposed:    s.metrics.arcsDecomposed.Load(),
		ProbesRun:         s.metrics.probesRun.Load(),
		ResetsObserved:    s.metrics.resetsObserved.Load(),
		AlarmsRaised:      s.metrics.alarmsRaised.Load(),
		HomingCyclesRun:   s.metrics.homingCyclesRun.Load(),
	}
}
