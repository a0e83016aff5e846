package motion

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// gatewayLogger wraps a logiface.Logger[*stumpy.Event] writing structured
// entries through the real stumpy JSON backend.
//
// Every call site logs under a category field: "alarm", "reset", "probe",
// "homing", "arc", "planner".
type gatewayLogger struct {
	l *logiface.Logger[*stumpy.Event]
}

// newDefaultLogger builds a gatewayLogger writing newline-delimited JSON to
// w at the given minimum level, using stumpy as the writer backend.
func newDefaultLogger(w io.Writer, level logiface.Level) *gatewayLogger {
	if w == nil {
		w = os.Stderr
	}
	return &gatewayLogger{
		l: logiface.New[*stumpy.Event](
			stumpy.WithStumpy(stumpy.WithWriter(w)),
			logiface.WithLevel[*stumpy.Event](level),
		),
	}
}

func (g *gatewayLogger) alarm(code AlarmCode, detail string) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Warning().Str("category", "alarm").Str("code", code.String()).Logf("alarm raised: %s", detail)
}

func (g *gatewayLogger) reset(idempotent bool) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Info().Str("category", "reset").Interface("idempotent", idempotent).Log("reset observed")
}

func (g *gatewayLogger) probe(msg string, succeeded bool) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Info().Str("category", "probe").Interface("succeeded", succeeded).Log(msg)
}

func (g *gatewayLogger) homing(msg string) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Info().Str("category", "homing").Log(msg)
}

func (g *gatewayLogger) arc(segments int) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Debug().Str("category", "arc").Int("segments", segments).Log("arc decomposed")
}

func (g *gatewayLogger) planner(msg string) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Debug().Str("category", "planner").Log(msg)
}
