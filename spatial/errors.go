package spatial

import "github.com/pkg/errors"

// ErrDegenerateTriangle is returned by the triangle solver when the three
// supplied vertices are collinear (the parameterization's determinant is
// zero), so no plane, and therefore no unique closest point, is defined.
var ErrDegenerateTriangle = errors.New("degenerate triangle: vertices are collinear")

// ErrUnsupportedArity is returned by the face solver when a face does not
// have exactly 3 or 4 vertex indices.
var ErrUnsupportedArity = errors.New("unsupported face arity: only triangles and quadrilaterals are supported")
