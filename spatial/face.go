package spatial

import "github.com/pkg/errors"

// Face is an ordered tuple of 3 or 4 indices into a mesh's vertex array.
// Winding order carries no meaning to the solver below; it is orientation-
// agnostic.
type Face struct {
	VertexIDs []int
}

// ClosestPointOnFace returns the point on face closest to q and its squared
// distance, dispatching to the triangle solver directly for a 3-vertex face
// or twice (against the diagonal v0-v2) for a 4-vertex face, keeping the
// closer of the two triangles.
//
// Returns ErrUnsupportedArity if face does not have exactly 3 or 4 vertices,
// or an index out of range error if a vertex id falls outside vertices.
// Returns ErrDegenerateTriangle if either constituent triangle is collinear;
// for a quadrilateral this is evaluated against the first triangle
// (v0, v1, v2) before the second is attempted, so a degenerate first half
// fails even when the second half would have been valid.
func ClosestPointOnFace(vertices []Point, face Face, q Point) (Point, float32, error) {
	n := len(face.VertexIDs)
	if n != 3 && n != 4 {
		return Point{}, 0, ErrUnsupportedArity
	}
	for _, id := range face.VertexIDs {
		if id < 0 || id >= len(vertices) {
			return Point{}, 0, errors.Errorf("vertex id %d out of range for %d vertices", id, len(vertices))
		}
	}

	v0 := vertices[face.VertexIDs[0]]
	v1 := vertices[face.VertexIDs[1]]
	v2 := vertices[face.VertexIDs[2]]

	firstPt, firstSqrDist, err := NewTriangle(v0, v1, v2).ClosestPoint(q)
	if err != nil {
		return Point{}, 0, err
	}
	if n == 3 {
		return firstPt, firstSqrDist, nil
	}

	v3 := vertices[face.VertexIDs[3]]
	secondPt, secondSqrDist, err := NewTriangle(v2, v3, v0).ClosestPoint(q)
	if err != nil {
		return Point{}, 0, err
	}
	if secondSqrDist < firstSqrDist {
		return secondPt, secondSqrDist, nil
	}
	return firstPt, firstSqrDist, nil
}
