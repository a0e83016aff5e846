package motion

import "math"

// vec2 is a 2-D point in the arc's selected plane.
type vec2 struct{ x, y float32 }

// Arc replaces one circular/helical arc with a sequence of linear
// submissions through Line such that the chord-to-arc deviation of every
// segment is <= settings.ArcTolerance.
//
//   - position is the current machine position (not mutated).
//   - offset is the 2-D vector from position to the arc centre in the plane
//     (axis0, axis1).
//   - axisLinear is the helical axis.
func (s *System) Arc(target Position, line PlanLine, position Position, offset [2]float32, radius float32, axis0, axis1, axisLinear int, clockwise bool) error {
	centre0 := position[axis0] + offset[0]
	centre1 := position[axis1] + offset[1]

	r := vec2{x: -offset[0], y: -offset[1]}
	rt := vec2{x: target[axis0] - centre0, y: target[axis1] - centre1}

	cross := float64(r.x)*float64(rt.y) - float64(r.y)*float64(rt.x)
	dot := float64(r.x)*float64(rt.x) + float64(r.y)*float64(rt.y)
	travel := float32(math.Atan2(cross, dot))

	eps := s.settings.ArcAngularTravelEpsilon
	switch {
	case clockwise && travel >= -eps:
		travel -= 2 * math.Pi
	case !clockwise && travel <= eps:
		travel += 2 * math.Pi
	}

	tol := s.settings.ArcTolerance
	segments := int(math.Floor(math.Abs(float64(0.5*travel*radius)) / math.Sqrt(float64(tol*(2*radius-tol)))))

	segmentsForFeed := segments
	if segmentsForFeed < 1 {
		segmentsForFeed = 1
	}
	adjusted := line.withoutInverseTime(segmentsForFeed)

	linearTotal := target[axisLinear] - position[axisLinear]

	local := position.Clone()

	if segments > 0 {
		theta := travel / float32(segments)

		// cos_T = 2 - theta^2; sin_T = theta * (1/6) * (cos_T + 4); cos_T /=2
		// is algebraically cos_T = 1 - theta^2/2, sin_T = theta - theta^3/6,
		// but only if computed in exactly this order: halving cos_T after
		// computing sin_T from the un-halved value. Do not reorder these
		// three lines.
		cosT := 2 - theta*theta
		sinT := theta * 0.16666667 * (cosT + 4)
		cosT = cosT * 0.5

		r0 := r
		correctionCount := 0
		nCorrection := s.settings.NArcCorrection
		if nCorrection <= 0 {
			nCorrection = 1
		}

		for i := 1; i < segments; i++ {
			if correctionCount < nCorrection {
				nx := r.x*cosT - r.y*sinT
				ny := r.x*sinT + r.y*cosT
				r.x, r.y = nx, ny
				correctionCount++
			} else {
				angle := float64(i) * float64(theta)
				c := float32(math.Cos(angle))
				sn := float32(math.Sin(angle))
				r.x = r0.x*c - r0.y*sn
				r.y = r0.x*sn + r0.y*c
				correctionCount = 0
			}

			local[axis0] = centre0 + r.x
			local[axis1] = centre1 + r.y
			local[axisLinear] += linearTotal / float32(segments)

			if err := s.Line(local.Clone(), adjusted); err != nil {
				return err
			}
			if s.Abort() {
				s.log.arc(i)
				return nil
			}
		}
	}

	s.metrics.arcsDecomposed.Add(1)
	s.log.arc(segments)

	// Final submission is to target exactly, so rounding error never leaks
	// into the endpoint.
	return s.Line(target, adjusted)
}
