package spatial

// Triangle is an exact, collinearity-checked triangle closest-point solver.
// Unlike spatialmath.Triangle in the corpus this carries no cached normal:
// the solver needs only the parameterization coefficients, recomputed per
// query so the type stays a plain value with no construction step.
type Triangle struct {
	v0, v1, v2 Point
}

// NewTriangle returns a Triangle over the three given vertices. Collinearity
// is not checked here; it surfaces as ErrDegenerateTriangle from
// ClosestPoint, matching the rest of the package's fail-at-use policy.
func NewTriangle(v0, v1, v2 Point) Triangle {
	return Triangle{v0: v0, v1: v1, v2: v2}
}

// ClosestPoint returns the point on the closed triangle closest to q and the
// squared distance to it. It implements the method described in "Distance
// Between Point and Triangle in 3D" (Eberly): the triangle is parameterized
// as v0 + s*e0 + t*e1, the unconstrained minimum of ‖q - (v0+s*e0+t*e1)‖² is
// found analytically, and the (s, t) pair is then clamped into the unit
// triangle by a seven-region case analysis.
//
// Returns ErrDegenerateTriangle if the three vertices are collinear.
func (t Triangle) ClosestPoint(q Point) (Point, float32, error) {
	e0 := t.v1.Sub(t.v0)
	e1 := t.v2.Sub(t.v0)
	v := t.v0.Sub(q)

	a := e0.Dot(e0)
	b := e0.Dot(e1)
	c := e1.Dot(e1)
	d := e0.Dot(v)
	e := e1.Dot(v)

	det := a*c - b*b
	if det == 0 {
		return Point{}, 0, ErrDegenerateTriangle
	}

	s := b*e - c*d
	ss := s
	tt := b*d - a*e

	if s+tt <= det {
		switch {
		case s < 0:
			if tt < 0 {
				// Region 4.
				if d < 0 {
					tt = 0
					if -d >= a {
						ss = 1
					} else {
						ss = -d / a
					}
				} else {
					ss = 0
					switch {
					case e >= 0:
						tt = 0
					case -e >= c:
						tt = 1
					default:
						tt = -e / c
					}
				}
			} else {
				// Region 3: edge v0-v2.
				ss = 0
				switch {
				case e >= 0:
					tt = 0
				case -e >= c:
					tt = 1
				default:
					tt = -e / c
				}
			}
		case tt < 0:
			// Region 5: edge v0-v1.
			tt = 0
			switch {
			case d >= 0:
				ss = 0
			case -d >= a:
				ss = 1
			default:
				ss = -d / a
			}
		default:
			// Region 0: interior.
			invDet := 1 / det
			ss *= invDet
			tt *= invDet
		}
	} else {
		switch {
		case s < 0:
			// Region 2: vertex v2 or edge v1-v2.
			tmp0 := b + d
			tmp1 := c + e
			if tmp1 > tmp0 {
				num := tmp1 - tmp0
				denom := a - 2*b + c
				if num >= denom {
					ss = 1
				} else {
					ss = num / denom
				}
				tt = 1 - ss
			} else {
				ss = 0
				switch {
				case tmp1 <= 0:
					tt = 1
				case e >= 0:
					tt = 0
				default:
					tt = -e / c
				}
			}
		case tt < 0:
			// Region 6: vertex v1 or edge v1-v2.
			tmp0 := b + e
			tmp1 := a + d
			if tmp1 > tmp0 {
				num := tmp1 - tmp0
				denom := a - 2*b + c
				if num >= denom {
					tt = 1
				} else {
					tt = num / denom
				}
				ss = 1 - tt
			} else {
				tt = 0
				switch {
				case tmp1 <= 0:
					ss = 1
				case d >= 0:
					ss = 0
				default:
					ss = -d / a
				}
			}
		default:
			// Region 1: edge v1-v2.
			num := c + e - b - d
			if num <= 0 {
				ss = 0
			} else {
				denom := a - 2*b + c
				if num >= denom {
					ss = 1
				} else {
					ss = num / denom
				}
			}
			tt = 1 - ss
		}
	}

	closest := t.v0.Add(e0.Mul(ss)).Add(e1.Mul(tt))
	sqrDist := SqrDist(q, closest)
	return closest, sqrDist, nil
}
