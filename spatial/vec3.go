// Package spatial holds the float32 geometric kernel used to find the point
// on a triangle or quadrilateral face closest to a query point.
package spatial

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Point is a 3-component coordinate in single precision. The external
// interfaces of this package are 32-bit throughout, matching the precision
// of the closest-point kernel.
type Point = mgl32.Vec3

// NaNPoint is the sentinel returned by a query that found no face within the
// search radius. All three components are NaN.
func NaNPoint() Point {
	n := math32.NaN()
	return Point{n, n, n}
}

// IsNaNPoint reports whether p is the NaN sentinel, i.e. any component is NaN.
func IsNaNPoint(p Point) bool {
	return math32.IsNaN(p[0]) || math32.IsNaN(p[1]) || math32.IsNaN(p[2])
}

// AbsVec3 returns the componentwise absolute value of v.
func AbsVec3(v Point) Point {
	return Point{math32.Abs(v[0]), math32.Abs(v[1]), math32.Abs(v[2])}
}

// MaxComponent returns the largest of the three components of v.
func MaxComponent(v Point) float32 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}

// MinVec3 returns the componentwise minimum of a and b.
func MinVec3(a, b Point) Point {
	return Point{math32.Min(a[0], b[0]), math32.Min(a[1], b[1]), math32.Min(a[2], b[2])}
}

// MaxVec3 returns the componentwise maximum of a and b.
func MaxVec3(a, b Point) Point {
	return Point{math32.Max(a[0], b[0]), math32.Max(a[1], b[1]), math32.Max(a[2], b[2])}
}

// FuzzyEqual reports whether a and b are within tol of each other under the
// Euclidean norm. Used by tests that compare against a computed closest
// point, where exact equality would be brittle under floating point
// rounding.
func FuzzyEqual(a, b Point, tol float32) bool {
	d := a.Sub(b)
	return d.Dot(d) <= tol*tol
}

// SqrDist returns the squared Euclidean distance between a and b.
func SqrDist(a, b Point) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}
