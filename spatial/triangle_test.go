package spatial

import (
	"testing"

	"go.viam.com/test"
)

// TestTriangleClosestPointRegions exercises all seven regions of the (s, t)
// parameter plane against the single right triangle A=(0,0,0), B=(1,0,0),
// C=(0,1,0).
func TestTriangleClosestPointRegions(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{1, 0, 0}
	c := Point{0, 1, 0}
	tri := NewTriangle(a, b, c)

	cases := []struct {
		name string
		q    Point
		want Point
	}{
		{"region 0 interior", Point{0.25, 0.25, 0}, Point{0.25, 0.25, 0}},
		{"region 1 hypotenuse", Point{1, 1, 0}, Point{0.5, 0.5, 0}},
		{"region 3 edge AC", Point{-1, 0.5, 0}, Point{0, 0.5, 0}},
		{"region 5 edge AB", Point{0.5, -1, 0}, Point{0.5, 0, 0}},
		{"region 2 vertex C", Point{-0.5, 2, 0}, Point{0, 1, 0}},
		{"region 4 vertex A", Point{-0.5, -0.5, 0}, Point{0, 0, 0}},
		{"region 6 vertex B", Point{2, -0.5, 0}, Point{1, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, sqrDist, err := tri.ClosestPoint(tc.q)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, FuzzyEqual(got, tc.want, 1e-4), test.ShouldBeTrue)
			test.That(t, sqrDist, test.ShouldAlmostEqual, float32(SqrDist(tc.q, tc.want)), 1e-3)
		})
	}
}

func TestTriangleClosestPointDegenerate(t *testing.T) {
	tri := NewTriangle(Point{0, 0, 0}, Point{1, 0, 0}, Point{2, 0, 0})
	_, _, err := tri.ClosestPoint(Point{0, 5, 0})
	test.That(t, err, test.ShouldEqual, ErrDegenerateTriangle)
}

func TestTriangleClosestPointSharedEdge(t *testing.T) {
	// Two triangles sharing edge B-C, with apex D above the plane.
	b := Point{1, 0, 0}
	c := Point{0, 1, 0}
	d := Point{0.5, 0.5, 1}
	tri := NewTriangle(b, c, d)

	got, _, err := tri.ClosestPoint(Point{1, 1, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, FuzzyEqual(got, Point{0.5, 0.5, 0}, 1e-4), test.ShouldBeTrue)
}
