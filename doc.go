// Package motion implements the motion-command gateway of a G-code-driven
// CNC controller: the layer between a G-code parser and a low-level
// step-pulse generator.
//
// # Architecture
//
// The gateway is built around a [System] that owns the process-wide machine
// state, the runtime-exec flag word, and the probe/alarm/override
// bookkeeping. Every blocking operation — [System.Line],
// [System.Arc], [System.Dwell], [System.Home], [System.Probe],
// [System.Park] — cooperates with [System.Poll] (the realtime executor hook)
// at every suspension point, so that an asynchronous reset is always
// observed promptly.
//
// [System.Line] is the sole gateway to the planner ([Planner]) for ordinary
// motion; [System.Arc] decomposes its work into a sequence of [System.Line]
// calls. [System.Park] is the exception: it submits directly to the planner,
// bypassing Line's soft-limit and laser-mode handling, since a parking move
// runs on its own dedicated step-segment buffer outside normal G-code motion.
//
// # Concurrency
//
// There is exactly one foreground goroutine driving [System]'s blocking
// operations at a time. A small number of other goroutines play the role of
// the original firmware's interrupt handlers: they may call [System.Reset],
// [System.RequestHold], [System.RequestCycleStart],
// [System.RequestStatusReport], [System.RequestSafetyDoor], or
// [System.SignalProbeTrigger] concurrently with the foreground, and with
// each other. Those methods, and the flag word they mutate, are safe for
// concurrent use; everything else on [System] is foreground-only.
//
// # Platform support
//
// [System.Dwell] uses a monotonic clock via golang.org/x/sys/unix on Linux for
// sub-millisecond-accurate sleeps, falling back to [time.Sleep] elsewhere.
//
// # Usage
//
//	sys, err := motion.New(settings, collaborators)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sys.Line(target, planLine); err != nil {
//	    log.Fatal(err)
//	}
package motion
