// Package cpom finds the point on a triangle/quadrilateral mesh closest to
// a query point, within a caller-supplied search radius. Construct once per
// mesh, then call Query as many times as needed; construction is the only
// place the mesh provider is consulted.
package cpom

import (
	"container/heap"

	"github.com/chewxy/math32"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/vdedun/cpom/mesh"
	"github.com/vdedun/cpom/octree"
	"github.com/vdedun/cpom/spatial"
)

// Engine is a constructed query engine over a single, fixed mesh snapshot.
// It holds only read-only state after Construct returns, so concurrent
// Query calls against the same Engine are safe provided each call's own
// heap and running-best state stay local - which they do, since Query
// allocates neither on the Engine.
type Engine struct {
	vertices []spatial.Point
	faces    []spatial.Face
	tree     *octree.Tree[mesh.FaceElement]
	logger   golog.Logger
}

// Construct snapshots provider's vertices and faces and builds the spatial
// index used by Query, applying any options. Returns ErrEmptyMesh if the
// provider yields zero vertices. Collinear or malformed faces are not
// checked here; they surface from Query instead (spatial.ErrDegenerateTriangle,
// spatial.ErrUnsupportedArity).
func Construct(provider mesh.Provider, opts ...Option) (*Engine, error) {
	params := mesh.DefaultParams()
	for _, opt := range opts {
		opt(&params)
	}

	if len(provider.Vertices()) == 0 {
		return nil, ErrEmptyMesh
	}

	idx, err := mesh.Build(provider, params)
	if err != nil {
		return nil, err
	}

	return &Engine{vertices: idx.Vertices, faces: idx.Faces, tree: idx.Tree, logger: params.Logger}, nil
}

// Query returns the point on the mesh closest to q, provided it lies within
// maxDist of q, or the all-NaN sentinel (spatial.NaNPoint) if no such point
// exists. maxDist may be +Inf. Fails with spatial.ErrDegenerateTriangle or
// spatial.ErrUnsupportedArity if traversal reaches an offending face.
func (e *Engine) Query(q spatial.Point, maxDist float32) (spatial.Point, error) {
	limit := maxDist * maxDist

	if e.tree == nil {
		return e.queryLinear(q, limit)
	}
	return e.queryIndexed(q, limit)
}

// queryLinear is the fast path for meshes that fell below the linear-scan
// threshold at construction: a plain reduction over every face.
func (e *Engine) queryLinear(q spatial.Point, limit float32) (spatial.Point, error) {
	best := spatial.NaNPoint()
	bestSqrDist := float32(math32.Inf(1))

	for i, f := range e.faces {
		pt, sqrDist, err := spatial.ClosestPointOnFace(e.vertices, f, q)
		if err != nil {
			return spatial.Point{}, e.wrapFaceError(i, err)
		}
		if sqrDist < bestSqrDist && sqrDist < limit {
			best, bestSqrDist = pt, sqrDist
		}
	}
	return best, nil
}

// queryIndexed is the best-first search path: a min-heap over octree nodes
// keyed by squared distance from q to the node's bounds, pruned both at
// push and at pop time against the running best.
func (e *Engine) queryIndexed(q spatial.Point, limit float32) (spatial.Point, error) {
	best := spatial.NaNPoint()
	bestSqrDist := float32(math32.Inf(1))
	if limit < bestSqrDist {
		bestSqrDist = limit
	}

	root := e.tree.Root()
	h := &nodeHeap{{node: root, sqrDist: octree.SqrDistanceToBounds(q, root.Bounds())}}
	heap.Init(h)

	for h.Len() > 0 && (*h)[0].sqrDist < bestSqrDist {
		entry := heap.Pop(h).(nodeEntry)
		node := entry.node

		if node.IsLeaf() {
			var evalErr error
			node.VisitElements(func(elem mesh.FaceElement) {
				if evalErr != nil {
					return
				}
				pt, sqrDist, err := spatial.ClosestPointOnFace(e.vertices, e.faces[elem.FaceIndex], q)
				if err != nil {
					evalErr = e.wrapFaceError(elem.FaceIndex, err)
					return
				}
				if sqrDist < bestSqrDist {
					best, bestSqrDist = pt, sqrDist
				}
			})
			if evalErr != nil {
				return spatial.Point{}, evalErr
			}
			continue
		}

		node.VisitChildren(func(child *octree.Node[mesh.FaceElement]) {
			d2 := octree.SqrDistanceToBounds(q, child.Bounds())
			if d2 < bestSqrDist {
				heap.Push(h, nodeEntry{node: child, sqrDist: d2})
			}
		})
	}

	return best, nil
}

// wrapFaceError logs a single Debug breadcrumb naming the offending face
// before returning cause wrapped with that face's index - a diagnostic
// aid only, never a substitute for propagating the error.
func (e *Engine) wrapFaceError(faceIndex int, cause error) error {
	e.logger.Debugf("cpom: query failed on face %d: %v", faceIndex, cause)
	return errors.Wrapf(cause, "face %d", faceIndex)
}
