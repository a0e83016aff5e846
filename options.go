package motion

import (
	"io"

	"github.com/joeycumines/logiface"
)

// systemOptions holds the optional, non-Settings configuration applied at
// construction, following a loopOptions/LoopOption functional-options
// pattern.
type systemOptions struct {
	logWriter io.Writer
	logLevel  logiface.Level
	planner   Planner
}

// Option configures a System at construction.
type Option interface {
	applySystem(*systemOptions)
}

type optionImpl struct {
	fn func(*systemOptions)
}

func (o *optionImpl) applySystem(opts *systemOptions) { o.fn(opts) }

// WithLogWriter sets the destination for structured log output. Defaults
// to os.Stderr.
func WithLogWriter(w io.Writer) Option {
	return &optionImpl{func(opts *systemOptions) { opts.logWriter = w }}
}

// WithLogLevel sets the minimum level the structured logger emits.
func WithLogLevel(level logiface.Level) Option {
	return &optionImpl{func(opts *systemOptions) { opts.logLevel = level }}
}

// WithPlanner overrides the default RingPlanner built from
// Settings.PlannerCapacity, for callers supplying a production planner.
// Equivalent to setting Collaborators.Planner directly; provided as an
// Option for symmetry with the rest of construction.
func WithPlanner(p Planner) Option {
	return &optionImpl{func(opts *systemOptions) { opts.planner = p }}
}

func resolveSystemOptions(opts []Option) *systemOptions {
	cfg := &systemOptions{
		logLevel: logiface.LevelInformational,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applySystem(cfg)
	}
	return cfg
}
