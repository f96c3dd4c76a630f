package spatial

import (
	"testing"

	"go.viam.com/test"
)

func TestClosestPointOnFaceTriangle(t *testing.T) {
	vertices := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	face := Face{VertexIDs: []int{0, 1, 2}}

	got, _, err := ClosestPointOnFace(vertices, face, Point{1, 1, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, FuzzyEqual(got, Point{0.5, 0.5, 0}, 1e-4), test.ShouldBeTrue)
}

func TestClosestPointOnFaceQuadIsTwoTriangles(t *testing.T) {
	// Unit square in the xy-plane, split along diagonal v0-v2.
	vertices := []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	face := Face{VertexIDs: []int{0, 1, 2, 3}}

	q := Point{2, 0.5, 1}
	quadPt, quadSqrDist, err := ClosestPointOnFace(vertices, face, q)
	test.That(t, err, test.ShouldBeNil)

	firstPt, firstSqrDist, err := NewTriangle(vertices[0], vertices[1], vertices[2]).ClosestPoint(q)
	test.That(t, err, test.ShouldBeNil)
	secondPt, secondSqrDist, err := NewTriangle(vertices[2], vertices[3], vertices[0]).ClosestPoint(q)
	test.That(t, err, test.ShouldBeNil)

	wantPt, wantSqrDist := firstPt, firstSqrDist
	if secondSqrDist < firstSqrDist {
		wantPt, wantSqrDist = secondPt, secondSqrDist
	}
	test.That(t, FuzzyEqual(quadPt, wantPt, 1e-4), test.ShouldBeTrue)
	test.That(t, quadSqrDist, test.ShouldAlmostEqual, wantSqrDist, 1e-3)
}

func TestClosestPointOnFaceUnsupportedArity(t *testing.T) {
	vertices := []Point{{0, 0, 0}, {1, 0, 0}}
	face := Face{VertexIDs: []int{0, 1}}

	_, _, err := ClosestPointOnFace(vertices, face, Point{0, 0, 0})
	test.That(t, err, test.ShouldEqual, ErrUnsupportedArity)
}

func TestClosestPointOnFaceIndexOutOfRange(t *testing.T) {
	vertices := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	face := Face{VertexIDs: []int{0, 1, 5}}

	_, _, err := ClosestPointOnFace(vertices, face, Point{0, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestClosestPointOnFaceDegenerateQuadFirstHalf(t *testing.T) {
	// All four vertices collinear: the first triangle (v0,v1,v2) is
	// degenerate, so the error surfaces even though (v2,v3,v0) is also
	// degenerate here - this mesh has no valid half at all, by design.
	vertices := []Point{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	face := Face{VertexIDs: []int{0, 1, 2, 3}}

	_, _, err := ClosestPointOnFace(vertices, face, Point{0, 5, 0})
	test.That(t, err, test.ShouldEqual, ErrDegenerateTriangle)
}
