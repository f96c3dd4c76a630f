// Package octree implements a generic recursive bounding-cube partition of
// 3-D space, parameterized over an element type and a caller-supplied
// intersection predicate. It is the spatial index used by cpom to prune the
// closest-point search; it carries no knowledge of meshes, faces, or
// triangles itself.
package octree

import "github.com/vdedun/cpom/spatial"

// AABCube is an axis-aligned bounding cube: a center and a single scalar
// half-width. Octree node bounds are always cubes, so that subdivision
// produces eight uniform children.
type AABCube struct {
	Center    spatial.Point
	HalfWidth float32
}

// AABBox is an axis-aligned bounding box: a center and a per-axis
// half-width. Used for element (face) bounds, which are not generally
// cubic.
type AABBox struct {
	Center    spatial.Point
	HalfWidth spatial.Point
}

// Intersects reports whether box and cube overlap: for each axis,
// |cube.Center - box.Center| <= cube.HalfWidth + box.HalfWidth.
func Intersects(cube AABCube, box AABBox) bool {
	d := spatial.AbsVec3(cube.Center.Sub(box.Center))
	sum := box.HalfWidth.Add(spatial.Point{cube.HalfWidth, cube.HalfWidth, cube.HalfWidth})
	return d[0] <= sum[0] && d[1] <= sum[1] && d[2] <= sum[2]
}

// SqrDistanceToBounds returns the squared distance from q to the closest
// point of cube, 0 if q is inside cube. This is the lower bound that makes
// best-first search over the octree correct: no point inside cube can be
// closer to q than this value.
func SqrDistanceToBounds(q spatial.Point, cube AABCube) float32 {
	d := spatial.AbsVec3(q.Sub(cube.Center))
	var acc float32
	for axis := 0; axis < 3; axis++ {
		v := d[axis] - cube.HalfWidth
		if v < 0 {
			v = 0
		}
		acc += v * v
	}
	return acc
}

// childBounds computes the bounds of the index-th child (0-7) of a node with
// the given bounds. Bit 0 of index selects the x sign, bit 1 the y sign, bit
// 2 the z sign, relative to the parent's center.
func childBounds(parent AABCube, index int) AABCube {
	half := parent.HalfWidth * 0.5
	center := parent.Center
	if index&1 != 0 {
		center[0] += half
	} else {
		center[0] -= half
	}
	if index&2 != 0 {
		center[1] += half
	} else {
		center[1] -= half
	}
	if index&4 != 0 {
		center[2] += half
	} else {
		center[2] -= half
	}
	return AABCube{Center: center, HalfWidth: half}
}
