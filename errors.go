package cpom

import "github.com/pkg/errors"

// ErrEmptyMesh is returned by Construct when the mesh provider yields zero
// vertices: there is no surface for any query to find.
var ErrEmptyMesh = errors.New("cpom: mesh has no vertices")
