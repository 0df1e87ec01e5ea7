package IntervalTree

// All returns a closure acting as a single-pass forward iterator over
// every stored interval in (low, high)-ascending order: calling it is
// like calling Next() on an iterator — val, ok := f(); ok is false once
// exhausted and never turns true again afterwards. The tree must not be
// mutated while f is still live.
func (t *Tree[V, E]) All() func() (V, bool) {
	cur := t.beginNode()
	return func() (v V, ok bool) {
		if cur == t.nilNode {
			return v, false
		}
		v, ok = cur.interval, true
		cur = t.successor(cur)
		return v, ok
	}
}

// IteratorAt returns a closure like All's, but starting at h's node and
// continuing in (low, high)-ascending order through the rest of the
// tree. This is the Go equivalent of the original C++ source's
// interval_tree_iterator::from_interval: turning a handle obtained from
// Emplace back into a traversal position without re-searching the tree.
func (t *Tree[V, E]) IteratorAt(h Handle[V, E]) func() (V, bool) {
	cur := h.n
	return func() (v V, ok bool) {
		if cur == t.nilNode {
			return v, false
		}
		v, ok = cur.interval, true
		cur = t.successor(cur)
		return v, ok
	}
}

func (t *Tree[V, E]) beginNode() *node[V, E] {
	if t.root == t.nilNode {
		return t.nilNode
	}
	return t.treeMinimum(t.root)
}

// successor returns the node following x in in-order, or the sentinel if
// x is last. Conventional CLRS successor using parent pointers: descend
// into the right subtree if present, otherwise climb until arriving from
// a left child.
func (t *Tree[V, E]) successor(x *node[V, E]) *node[V, E] {
	if x.r != t.nilNode {
		return t.treeMinimum(x.r)
	}
	for x.p != t.nilNode && x == x.p.r {
		x = x.p
	}
	return x.p
}

// overlapStage is the overlap iterator's position in the four-stage
// search state machine.
type overlapStage uint8

const (
	stageLeft overlapStage = iota
	stageOverlap
	stageRight
	stageUp
)

// Find returns a closure producing every stored interval I with
// low <= high(I) && low(I) <= high, in (low, high)-ascending order. It is
// a lazy, single-pass, restartable state machine: LEFT descends while the
// left subtree's max can still satisfy the query; OVERLAP tests and emits
// the current node; RIGHT descends into the right subtree under the same
// condition, plus the BST-ordering prune that a right subtree starting
// past the query's high end cannot overlap either; UP climbs back up,
// re-entering OVERLAP at any ancestor reached by climbing out of its left
// subtree. Producing each match costs amortised O(log n + k) for k
// matches across the full traversal.
func (t *Tree[V, E]) Find(low, high E) func() (V, bool) {
	cur := t.root
	stage := stageLeft
	return func() (v V, ok bool) {
		for {
			switch stage {
			case stageLeft:
				if cur == t.nilNode {
					return v, false
				}
				if cur.l != t.nilNode && cur.l.max >= low {
					cur = cur.l
					continue
				}
				stage = stageOverlap
			case stageOverlap:
				stage = stageRight
				if t.low(cur.interval) <= high && low <= t.high(cur.interval) {
					return cur.interval, true
				}
			case stageRight:
				if cur.r != t.nilNode && cur.r.max >= low && t.low(cur.interval) <= high {
					cur = cur.r
					stage = stageLeft
					continue
				}
				stage = stageUp
			case stageUp:
				if cur == t.nilNode {
					return v, false
				}
				wasLeft := cur.p != t.nilNode && cur.p.l == cur
				cur = cur.p
				if cur != t.nilNode && wasLeft {
					stage = stageOverlap
				}
			}
		}
	}
}
