package motion

import (
	"time"

	"github.com/joeycumines/go-catrate"
)

// StatusReportLimiter throttles how often Poll honors a queued
// STATUS-REPORT flag. Real controllers rate-limit status reports to avoid
// saturating the serial link. Backed directly by catrate.Limiter rather
// than a hand-rolled token bucket.
type StatusReportLimiter struct {
	limiter  *catrate.Limiter
	category string
}

// NewStatusReportLimiter allows at most one status report per interval.
func NewStatusReportLimiter(interval time.Duration) *StatusReportLimiter {
	return &StatusReportLimiter{
		limiter:  catrate.NewLimiter(map[time.Duration]int{interval: 1}),
		category: "status-report",
	}
}

// Allow reports whether a status report may be emitted now.
func (l *StatusReportLimiter) Allow() bool {
	if l == nil || l.limiter == nil {
		return true
	}
	_, ok := l.limiter.Allow(l.category)
	return ok
}
