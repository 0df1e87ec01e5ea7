package IntervalTree

import (
	"fmt"
	"io"

	colorlib "github.com/fatih/color"
)

// AssertionFailure is the typed panic value raised when a caller-contract
// violation is detected, panicking with a typed value rather than a bare
// string.
type AssertionFailure struct {
	Msg string
}

func (e AssertionFailure) Error() string { return e.Msg }

// InvariantViolation is the typed panic value raised by Check when an
// an internal invariant does not hold. This indicates a defect
// in the tree itself, never a caller error.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string { return e.Msg }

// Assert is the "host-supplied abort-on-false facility."
// It is a package variable so an embedding process can replace it with
// its own abort/trap/exception mechanism; the default panics with the
// typed value it was given.
var Assert = func(fail error) {
	panic(fail)
}

var (
	blackLabel = colorlib.New(colorlib.FgWhite).SprintFunc()
	redLabel   = colorlib.New(colorlib.FgRed, colorlib.Bold).SprintFunc()
)

// Print writes a pre-order listing of the tree to w, one node per line,
// two columns of indentation per depth, the node's colour letter, its
// interval, and its max after a pipe. It then runs Check, the invariant
// checker that is the test suite's primary oracle; a violation invokes
// Assert. The exact textual format is informational, not part of the
// stable contract.
func (t *Tree[V, E]) Print(w io.Writer) {
	if t.root == t.nilNode {
		fmt.Fprintln(w, "(nil)")
	} else {
		t.printNode(w, t.root, 0, "")
	}
	t.Check()
}

func (t *Tree[V, E]) printNode(w io.Writer, x *node[V, E], indent int, prefix string) {
	label := blackLabel("B")
	if x.c == red {
		label = redLabel("R")
	}
	for i := 0; i < indent; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, "%s%s [%v, %v] | %v\n", prefix, label, t.low(x.interval), t.high(x.interval), x.max)
	if x.l != t.nilNode {
		t.printNode(w, x.l, indent+1, "L")
	}
	if x.r != t.nilNode {
		t.printNode(w, x.r, indent+1, "R")
	}
}

// Check walks the whole tree and asserts, for every node: the root is
// black; a red node has only black children; low <= high; the BST
// ordering on (low, high) holds against both subtrees; max equals the
// recomputed subtree maximum; and black-height is equal across every
// root-to-leaf path. A violation calls Assert with an InvariantViolation.
func (t *Tree[V, E]) Check() {
	if t.root == t.nilNode {
		return
	}
	if t.root.p != t.nilNode {
		Assert(InvariantViolation{"root's parent must be absent"})
	}
	blackHeight := -1
	t.check(t.root, 0, &blackHeight)
	// check compares each node only with its direct children; an in-order
	// walk covers the ordering against whole subtrees.
	prev := t.beginNode()
	for cur := t.successor(prev); cur != t.nilNode; prev, cur = cur, t.successor(cur) {
		if t.less(cur.interval, prev.interval) {
			Assert(InvariantViolation{"in-order keys must be non-decreasing"})
		}
	}
}

func (t *Tree[V, E]) check(x *node[V, E], curBlackHeight int, blackHeight *int) {
	if x == t.root && x.c != black {
		Assert(InvariantViolation{"root must be black"})
	}
	if x.c == red && (x.l.c != black || x.r.c != black) {
		Assert(InvariantViolation{"red node must have black children"})
	}
	if t.high(x.interval) < t.low(x.interval) {
		Assert(InvariantViolation{"low must not exceed high"})
	}
	if x.l == t.nilNode || x.r == t.nilNode {
		if *blackHeight < 0 {
			*blackHeight = curBlackHeight
		} else if *blackHeight != curBlackHeight {
			Assert(InvariantViolation{"black-height must be equal on every root-to-leaf path"})
		}
	}

	max := t.high(x.interval)

	if x.l != t.nilNode {
		if x.l.p != x {
			Assert(InvariantViolation{"left child's parent pointer must point back to its parent"})
		}
		if t.less(x.interval, x.l.interval) {
			Assert(InvariantViolation{"left subtree's keys must not exceed this node's key"})
		}
		if x.l.max > max {
			max = x.l.max
		}
		delta := 0
		if x.l.c == black {
			delta = 1
		}
		t.check(x.l, curBlackHeight+delta, blackHeight)
	}
	if x.r != t.nilNode {
		if x.r.p != x {
			Assert(InvariantViolation{"right child's parent pointer must point back to its parent"})
		}
		if t.less(x.r.interval, x.interval) {
			Assert(InvariantViolation{"right subtree's keys must not be less than this node's key"})
		}
		if x.r.max > max {
			max = x.r.max
		}
		delta := 0
		if x.r.c == black {
			delta = 1
		}
		t.check(x.r, curBlackHeight+delta, blackHeight)
	}

	if x.max != max {
		Assert(InvariantViolation{"max must equal the recomputed subtree maximum"})
	}
}
