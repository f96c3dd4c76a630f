package cpom

import (
	"container/heap"

	"github.com/vdedun/cpom/mesh"
	"github.com/vdedun/cpom/octree"
)

// nodeEntry is one heap element: a borrowed reference to an octree node and
// the squared distance from the query point to its bounds. Entries live
// only for the duration of a single query.
type nodeEntry struct {
	node    *octree.Node[mesh.FaceElement]
	sqrDist float32
}

// nodeHeap is a min-heap over nodeEntry, ordered by sqrDist, implementing
// container/heap.Interface. There is no third-party priority-queue library
// anywhere in the retrieved corpus, so this leans on the standard library.
type nodeHeap []nodeEntry

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].sqrDist < h[j].sqrDist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeEntry)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

var _ heap.Interface = (*nodeHeap)(nil)
