// Package mesh defines the external mesh-provider interface cpom consumes,
// and builds the spatial index over a provider's faces.
package mesh

import (
	"github.com/golang/geo/r3"

	"github.com/vdedun/cpom/spatial"
)

// VertexSource yields the ordered sequence of vertices of a mesh, indexed
// from 0. cpom calls this only during construction, never afterwards.
type VertexSource interface {
	Vertices() []spatial.Point
}

// FaceSource yields the ordered sequence of faces of a mesh. cpom calls this
// once, at construction.
type FaceSource interface {
	Faces() []spatial.Face
}

// Provider is the full external mesh-provider capability: any type yielding
// both vertices and faces. The engine never calls it again after
// construction, and holds no back-reference to it.
type Provider interface {
	VertexSource
	FaceSource
}

// staticProvider is a Provider built from in-memory slices, returned by
// FromPoints and FromR3Vectors.
type staticProvider struct {
	vertices []spatial.Point
	faces    []spatial.Face
}

func (p *staticProvider) Vertices() []spatial.Point { return p.vertices }
func (p *staticProvider) Faces() []spatial.Face     { return p.faces }

// FromPoints builds a Provider directly from float32 vertices and index
// tuples, one []int per face (length 3 or 4). Arity is not validated here;
// it surfaces as spatial.ErrUnsupportedArity when a query traverses the
// offending face.
func FromPoints(vertices []spatial.Point, faceIndices [][]int) Provider {
	faces := make([]spatial.Face, len(faceIndices))
	for i, ids := range faceIndices {
		faces[i] = spatial.Face{VertexIDs: ids}
	}
	return &staticProvider{vertices: vertices, faces: faces}
}

// FromR3Vectors builds a Provider from the float64 r3.Vector representation
// used pervasively across the Go geometry ecosystem (golang/geo, and the
// spatialmath package it underpins). The float64-to-float32 narrowing
// happens once here, at construction, before the kernel - which is pinned
// to float32 by the numeric policy of the closest-point solver - ever runs.
func FromR3Vectors(vertices []r3.Vector, faceIndices [][]int) Provider {
	pts := make([]spatial.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = spatial.Point{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	return FromPoints(pts, faceIndices)
}
