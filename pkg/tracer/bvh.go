package tracer

import (
	"sort"

	"github.com/samber/lo"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// LeafThreshold: nodes with fewer objects than this are stored as leaves
	LeafThreshold = 20
	// MaxBVHDepth caps the subdivision; nodes at this depth are always leaves
	MaxBVHDepth = 10
)

// Node is an octree node. Leaves hold objects, interior nodes hold up to
// eight non-empty octant children. An object is referenced by every octant
// its bounding box overlaps.
type Node struct {
	Box      core.AABB
	Objects  []*scene.Object // Leaf objects (nil for interior nodes)
	Children []*Node         // Octant children (nil for leaves)
}

// IsLeaf reports whether the node stores objects directly
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// BVH is an octree over the bounded objects of a scene
type BVH struct {
	Root *Node
}

// BVHStats describes the shape of a built BVH
type BVHStats struct {
	Nodes      int // Total nodes, leaves included
	Leaves     int // Leaf nodes
	MaxDepth   int // Depth of the deepest leaf (root = 0)
	Objects    int // Distinct objects indexed
	ObjectRefs int // Object references across all leaves
	MaxLeaf    int // Largest leaf object count
}

// BuildBVH builds an octree over the objects that have a bounding box.
// Unbounded objects are ignored; the tracer tests them separately.
func BuildBVH(objects []*scene.Object) *BVH {
	bounded := lo.Filter(objects, func(o *scene.Object, _ int) bool { return o.IsBounded() })
	if len(bounded) == 0 {
		return &BVH{Root: nil}
	}

	box := *bounded[0].Box
	for _, obj := range bounded[1:] {
		box = box.Union(*obj.Box)
	}

	return &BVH{Root: buildNode(box, bounded, 0)}
}

// buildNode recursively subdivides box into octants
func buildNode(box core.AABB, objects []*scene.Object, depth int) *Node {
	if len(objects) < LeafThreshold || depth >= MaxBVHDepth {
		return &Node{Box: box, Objects: objects}
	}

	octants := box.Subdivide()
	var parts [8][]*scene.Object
	saturated := true
	for i, octant := range octants {
		parts[i] = lo.Filter(objects, func(o *scene.Object, _ int) bool {
			return o.Box.Overlaps(octant)
		})
		if len(parts[i]) < len(objects) {
			saturated = false
		}
	}

	// Every octant would receive every object: splitting cannot separate them
	if saturated {
		return &Node{Box: box, Objects: objects}
	}

	node := &Node{Box: box, Children: make([]*Node, 0, 8)}
	for i, octant := range octants {
		if len(parts[i]) == 0 {
			continue
		}
		node.Children = append(node.Children, buildNode(octant, parts[i], depth+1))
	}
	return node
}

// Intersect returns the nearest hit among the indexed objects, skipping ignore
func (b *BVH) Intersect(ray core.Ray, in *Intersector, ignore *scene.Object) *core.RayHit {
	if b.Root == nil {
		return nil
	}
	if _, ok := b.Root.Box.Intersect(ray); !ok {
		return nil
	}
	return b.hitNode(b.Root, ray, in, ignore)
}

type childEntry struct {
	node  *Node
	entry float64
}

// hitNode visits children in order of entry distance and stops once the next
// child starts beyond the nearest hit found so far.
func (b *BVH) hitNode(node *Node, ray core.Ray, in *Intersector, ignore *scene.Object) *core.RayHit {
	if node.IsLeaf() {
		return in.nearest(ray, node.Objects, ignore)
	}

	entries := make([]childEntry, 0, len(node.Children))
	for _, child := range node.Children {
		if t, ok := child.Box.Intersect(ray); ok {
			entries = append(entries, childEntry{node: child, entry: t})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].entry < entries[j].entry
	})

	var best *core.RayHit
	for _, e := range entries {
		if best != nil && e.entry > best.Distance {
			break
		}
		best = core.Closer(best, b.hitNode(e.node, ray, in, ignore))
	}
	return best
}

// Stats walks the tree and collects its statistics
func (b *BVH) Stats() BVHStats {
	var stats BVHStats
	if b.Root == nil {
		return stats
	}

	seen := make(map[*scene.Object]struct{})
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		stats.Nodes++
		if !n.IsLeaf() {
			for _, child := range n.Children {
				walk(child, depth+1)
			}
			return
		}
		stats.Leaves++
		stats.MaxDepth = max(stats.MaxDepth, depth)
		stats.ObjectRefs += len(n.Objects)
		stats.MaxLeaf = max(stats.MaxLeaf, len(n.Objects))
		for _, obj := range n.Objects {
			seen[obj] = struct{}{}
		}
	}
	walk(b.Root, 0)

	stats.Objects = len(seen)
	return stats
}
