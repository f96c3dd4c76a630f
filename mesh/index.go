package mesh

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/vdedun/cpom/octree"
	"github.com/vdedun/cpom/spatial"
)

// DefaultLinearScanThreshold is the face count below which Build skips
// octree construction entirely and flags the index for linear scan instead:
// for small meshes the octree's own bookkeeping costs more than it saves.
const DefaultLinearScanThreshold = 32

// FaceElement is what gets stored in the octree: a borrowed reference to a
// face (by index into the engine's face slice) paired with the AABBox that
// was computed for it at insertion time.
type FaceElement struct {
	FaceIndex int
	Box       octree.AABBox
}

// Index is the spatial index built over a mesh's faces. A nil Tree means
// the mesh fell below the linear-scan threshold; callers should fall back
// to a linear reduction over Faces in that case.
type Index struct {
	Vertices []spatial.Point
	Faces    []spatial.Face
	Tree     *octree.Tree[FaceElement]
}

// Params bundles the octree growth policy and linear-scan threshold so
// Build's signature stays small even as tunables are added.
type Params struct {
	MaxDepth            int
	MaxFill             float32
	LinearScanThreshold int
	Logger              golog.Logger
}

// DefaultParams returns the spec's suggested defaults. The default logger
// is silent, matching the corpus convention of loggers being an explicit,
// optional collaborator rather than a global.
func DefaultParams() Params {
	return Params{
		MaxDepth:            octree.DefaultMaxDepth,
		MaxFill:             octree.DefaultMaxFill,
		LinearScanThreshold: DefaultLinearScanThreshold,
		Logger:              zap.NewNop().Sugar(),
	}
}

// Build snapshots provider's vertices and faces and, if there are enough
// faces to make it worthwhile, constructs an octree over their bounding
// boxes. Returns an error if the provider yields zero vertices.
func Build(provider Provider, params Params) (*Index, error) {
	vertices := provider.Vertices()
	faces := provider.Faces()
	if len(vertices) == 0 {
		return nil, errors.New("mesh: provider yields no vertices")
	}

	idx := &Index{Vertices: vertices, Faces: faces}

	if len(faces) < params.LinearScanThreshold {
		params.Logger.Debugf("cpom: %d faces below linear-scan threshold %d, skipping index", len(faces), params.LinearScanThreshold)
		return idx, nil
	}

	extentMin, extentMax := meshExtent(vertices)
	root := cubicBounds(extentMin, extentMax)

	tree := octree.New[FaceElement](root, faceIntersect, params.MaxDepth, params.MaxFill)
	for i, f := range faces {
		box := faceBounds(vertices, f)
		tree.Insert(FaceElement{FaceIndex: i, Box: box})
	}
	idx.Tree = tree

	params.Logger.Debugf("cpom: built octree over %d faces, root halfWidth=%v", len(faces), root.HalfWidth)
	return idx, nil
}

func faceIntersect(cube octree.AABCube, e FaceElement) bool {
	return octree.Intersects(cube, e.Box)
}

// meshExtent reduces min/max over all vertices.
func meshExtent(vertices []spatial.Point) (spatial.Point, spatial.Point) {
	extent := lo.Reduce(vertices, func(acc [2]spatial.Point, v spatial.Point, _ int) [2]spatial.Point {
		return [2]spatial.Point{spatial.MinVec3(acc[0], v), spatial.MaxVec3(acc[1], v)}
	}, [2]spatial.Point{vertices[0], vertices[0]})
	return extent[0], extent[1]
}

// cubicBounds returns the smallest axis-aligned cube containing the extent
// [min, max]: centered at the extent's midpoint, half-width equal to half of
// the extent's largest axis length.
func cubicBounds(min, max spatial.Point) octree.AABCube {
	dims := max.Sub(min)
	return octree.AABCube{
		Center:    min.Add(max).Mul(0.5),
		HalfWidth: spatial.MaxComponent(dims) * 0.5,
	}
}

// faceBounds computes the tight AABBox of a face from its vertices.
func faceBounds(vertices []spatial.Point, face spatial.Face) octree.AABBox {
	min := vertices[face.VertexIDs[0]]
	max := min
	for _, id := range face.VertexIDs[1:] {
		v := vertices[id]
		min = spatial.MinVec3(min, v)
		max = spatial.MaxVec3(max, v)
	}
	return octree.AABBox{
		Center:    min.Add(max).Mul(0.5),
		HalfWidth: max.Sub(min).Mul(0.5),
	}
}
