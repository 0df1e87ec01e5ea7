// Package IntervalTree implements an augmented red-black tree storing a
// multiset of closed intervals [low, high], supporting logarithmic
// insertion, deletion by handle, and enumeration of all stored intervals
// overlapping a query interval.
//
// The tree is based on the red-black tree of Cormen, Leiserson, Rivest and
// Stein, Introduction to Algorithms, 3rd ed., §13, augmented with the
// subtree-maximum field of §14.3.
package IntervalTree

import "golang.org/x/exp/constraints"

// Tree stores a multiset of V, each contributing a closed interval
// [low(v), high(v)] over the ordered endpoint type E. low and high are
// supplied once at construction time and never change: they are the
// "interval payload trait" of the contract.
type Tree[V any, E constraints.Ordered] struct {
	root, nilNode *node[V, E]
	low, high     func(V) E
	size          int
}

// New returns an empty Tree. low and high must return low(v) <= high(v)
// for every v the caller emplaces; the tree does not normalise this, and
// Emplace reports a violation through Assert.
func New[V any, E constraints.Ordered](low, high func(V) E) *Tree[V, E] {
	nilNode := &node[V, E]{c: black}
	nilNode.l, nilNode.r, nilNode.p = nilNode, nilNode, nilNode
	return &Tree[V, E]{root: nilNode, nilNode: nilNode, low: low, high: high}
}

// Size returns the number of intervals currently stored.
func (t *Tree[V, E]) Size() int {
	return t.size
}

// Handle is a stable reference to a node returned by Emplace. It remains
// valid across any mutation of the tree except the erasure of this
// specific node; using it after that erasure, or after Clear, is a
// contract violation.
type Handle[V any, E constraints.Ordered] struct {
	n *node[V, E]
}

// Interval returns the value stored at this handle's node.
func (h Handle[V, E]) Interval() V {
	return h.n.interval
}

// less orders two payloads by (low, high) lexicographically, the
// multiset's total order.
func (t *Tree[V, E]) less(a, b V) bool {
	la, lb := t.low(a), t.low(b)
	if la != lb {
		return la < lb
	}
	return t.high(a) < t.high(b)
}

// Emplace inserts v and returns a handle to its node. Precondition:
// low(v) <= high(v); violating it is a caller contract violation
// and is checked via Assert rather than left as silent
// undefined behaviour. Average and worst-case complexity O(log n).
func (t *Tree[V, E]) Emplace(v V) Handle[V, E] {
	if t.high(v) < t.low(v) {
		Assert(AssertionFailure{"low(v) must not exceed high(v)"})
	}
	z := &node[V, E]{interval: v, l: t.nilNode, r: t.nilNode, c: red, max: t.high(v)}
	t.rbInsert(z)
	t.size++
	return Handle[V, E]{z}
}

// rbInsert performs the standard BST descent keyed by (low, high), then
// restores red-black invariants. m_max is raised monotonically along the
// descent (insertion can only grow subtree maxima), then fully
// recomputed once at the insertion point's parent.
func (t *Tree[V, E]) rbInsert(z *node[V, E]) {
	y := t.nilNode
	x := t.root
	var which direction
	for x != t.nilNode {
		y = x
		if t.less(z.interval, x.interval) {
			which = left
		} else {
			which = right
		}
		if y.max < z.max {
			y.max = z.max
		}
		x = x.child(which)
	}
	z.p = y
	if y == t.nilNode {
		t.root = z
	} else {
		y.setChild(which, z)
		t.updateMaxOne(y)
	}
	t.rbInsertFixup(z)
}

// rbInsertFixup restores red-black invariants after inserting red node z,
// using the classical three-case schema on the uncle's colour.
func (t *Tree[V, E]) rbInsertFixup(z *node[V, E]) {
	for z.p.c == red {
		which := z.p.whichChild()
		y := z.p.p.child(which.opposite())
		if y.c == red {
			// Case 1: z's uncle is red. Recolour and move up.
			z.p.c = black
			y.c = black
			z.p.p.c = red
			z = z.p.p
		} else {
			if z.whichChild() == which.opposite() {
				// Case 2: z is a right child of a left-child parent (or
				// mirror). Rotate to turn this into case 3.
				z = z.p
				t.rotate(z, which)
			}
			// Case 3: z is a left child of a left-child parent (or mirror).
			z.p.c = black
			z.p.p.c = red
			t.rotate(z.p.p, which.opposite())
		}
	}
	t.root.c = black
}

// rotate performs a rotation of x about its child y = x.child(where.opposite()).
// y takes x's place in its parent; x becomes y's where-child; y's former
// where-child becomes x's opposite(where)-child. m_max is recomputed on x
// then on y, since y ends up above x.
func (t *Tree[V, E]) rotate(x *node[V, E], where direction) {
	y := x.child(where.opposite())
	x.setChild(where.opposite(), y.child(where))
	if y.child(where) != t.nilNode {
		y.child(where).p = x
	}
	t.transplant(x, y)
	y.setChild(where, x)
	x.p = y
	t.updateMaxOne(x)
	t.updateMaxOne(y)
}

// transplant links v in place of u in u's parent (or as the new root).
func (t *Tree[V, E]) transplant(u, v *node[V, E]) {
	if u.p == t.nilNode {
		t.root = v
	} else {
		u.p.setChild(u.whichChild(), v)
	}
	v.p = u.p
}

// updateMaxOne recomputes x's max from its own high endpoint and its
// children's max fields. O(1).
func (t *Tree[V, E]) updateMaxOne(x *node[V, E]) {
	m := t.high(x.interval)
	if x.l != t.nilNode && x.l.max > m {
		m = x.l.max
	}
	if x.r != t.nilNode && x.r.max > m {
		m = x.r.max
	}
	x.max = m
}

// updateMax walks from x up to the root, recomputing max at every
// ancestor. Required after deletion, which can shrink subtree maxima;
// insertion never needs this because it can only grow them.
func (t *Tree[V, E]) updateMax(x *node[V, E]) {
	for x != t.nilNode {
		t.updateMaxOne(x)
		x = x.p
	}
}

// treeMinimum returns the leftmost node of the subtree rooted at x. x must
// not be the sentinel.
func (t *Tree[V, E]) treeMinimum(x *node[V, E]) *node[V, E] {
	for x.l != t.nilNode {
		x = x.l
	}
	return x
}

// Erase removes the node h refers to. Precondition: h was returned by
// Emplace on this tree and has not already been erased. After return,
// only h is invalidated; every other handle remains valid. The closures
// returned by All, IteratorAt and Find are not handles: they hold a
// position in the tree's structure, and advancing one after a mutation
// can skip intervals. O(log n).
func (t *Tree[V, E]) Erase(h Handle[V, E]) {
	t.rbDelete(h.n)
	t.size--
}

// rbDelete removes z using the standard transplant-based deletion: the
// spliced node is z itself when it has fewer than two children, otherwise
// z's in-order successor (which then takes z's position, colour and
// children).
func (t *Tree[V, E]) rbDelete(z *node[V, E]) {
	y := z
	yOriginalColor := y.c
	var x *node[V, E]
	switch {
	case z.l == t.nilNode:
		x = z.r
		t.transplant(z, z.r)
		t.updateMax(z.p)
	case z.r == t.nilNode:
		x = z.l
		t.transplant(z, z.l)
		t.updateMax(z.p)
	default:
		y = t.treeMinimum(z.r)
		yOriginalColor = y.c
		x = y.r
		var m *node[V, E]
		if y.p == z {
			x.p = y // x may be the sentinel.
			m = y
		} else {
			m = y.p
			t.transplant(y, x)
			y.r = z.r
			y.r.p = y
		}
		t.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.c = z.c
		// The lowest touched position is m's: y's original parent, or y
		// itself when y was z's direct right child.
		t.updateMax(m)
	}
	if yOriginalColor == black {
		t.rbDeleteFixup(x)
	}
}

// rbDeleteFixup restores red-black invariants after removing a black
// node, x being the node that replaced it (possibly the sentinel), via
// the classical four-case schema on the sibling's colour.
func (t *Tree[V, E]) rbDeleteFixup(x *node[V, E]) {
	for x != t.root && x.c == black {
		which := x.whichChild()
		w := x.p.child(which.opposite())
		if w.c == red {
			// Case 1: x's sibling is red.
			w.c = black
			x.p.c = red
			t.rotate(x.p, which)
			w = x.p.child(which.opposite())
		}
		if w.l.c == black && w.r.c == black {
			// Case 2: sibling is black with two black children.
			w.c = red
			x = x.p
		} else {
			if w.child(which.opposite()).c == black {
				// Case 3: sibling is black, its near child is red.
				w.child(which).c = black
				w.c = red
				t.rotate(w, which.opposite())
				w = x.p.child(which.opposite())
			}
			// Case 4: sibling is black, its far child is red.
			w.c = x.p.c
			x.p.c = black
			w.child(which.opposite()).c = black
			t.rotate(x.p, which)
			x = t.root
		}
	}
	x.c = black
}

// Clear removes all intervals, invalidating every handle. Go's collector
// reclaims the detached nodes; there is no manual free step.
func (t *Tree[V, E]) Clear() {
	t.root = t.nilNode
	t.size = 0
}
