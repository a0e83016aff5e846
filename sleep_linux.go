//go:build linux

package motion

import (
	"time"

	"golang.org/x/sys/unix"
)

// platformSleep sleeps for d using a monotonic-clock nanosleep via
// golang.org/x/sys/unix, rather than plain time.Sleep, which on Linux is
// more jitter-prone under scheduler load than clock_nanosleep against
// CLOCK_MONOTONIC.
func platformSleep(d time.Duration) {
	if d <= 0 {
		return
	}
	ts := unix.NsecToTimespec(d.Nanoseconds())
	for {
		rem := &unix.Timespec{}
		err := unix.ClockNanosleep(unix.CLOCK_MONOTONIC, 0, &ts, rem)
		if err == unix.EINTR {
			ts = *rem
			continue
		}
		return
	}
}
