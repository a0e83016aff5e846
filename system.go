package motion

// New constructs a System from settings and collaborators, with explicit
// initialization rather than package-level globals. If
// collaborators.Planner is nil and no WithPlanner option is given, a
// RingPlanner sized by settings.PlannerCapacity is created.
func New(settings Settings, collaborators Collaborators, opts ...Option) (*System, error) {
	if settings.AxisCount <= 0 || settings.AxisCount > MaxAxes {
		return nil, ErrInvalidAxisCount
	}

	cfg := resolveSystemOptions(opts)

	if collaborators.Planner == nil {
		if cfg.planner != nil {
			collaborators.Planner = cfg.planner
		} else {
			cap := settings.PlannerCapacity
			if cap <= 0 {
				cap = 16
			}
			collaborators.Planner = NewRingPlanner(cap)
		}
	}

	if err := collaborators.validate(); err != nil {
		return nil, err
	}

	s := &System{
		settings: settings,
		collab:   collaborators,
		log:      newDefaultLogger(cfg.logWriter, cfg.logLevel),
		metrics:  &Metrics{},
		state:    newFastMachineState(StateIdle),
		position: make(Position, settings.AxisCount),
	}

	if settings.StatusReportMinInterval > 0 {
		s.statusReportLimit = NewStatusReportLimiter(settings.StatusReportMinInterval)
	}

	collaborators.Limits.Init()

	return s, nil
}
