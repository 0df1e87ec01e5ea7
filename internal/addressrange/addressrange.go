// Package addressrange models the debugger-tooling payload IntervalTree
// is meant for: loaded code regions, memory maps, and watched address
// ranges.
package addressrange

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/twostay-labs/ivtree/IntervalTree"
)

// AddressRange is a named, closed range of addresses [Low, High].
type AddressRange struct {
	Low, High uint64
	Name      string
}

// Low returns r.Low. Used as IntervalTree.New's low accessor.
func Low(r AddressRange) uint64 { return r.Low }

// High returns r.High. Used as IntervalTree.New's high accessor.
func High(r AddressRange) uint64 { return r.High }

// Size is the number of addresses the range covers, high-low+1.
func (r AddressRange) Size() uint64 { return r.High - r.Low + 1 }

// String renders a range like "[0x1000, 0x2000] loader (4.1 kB)".
func (r AddressRange) String() string {
	return fmt.Sprintf("[0x%x, 0x%x] %s (%s)", r.Low, r.High, r.Name, humanize.Bytes(r.Size()))
}

// Tree is a Tree[AddressRange, uint64], the concrete instantiation
// cmd/ivtreedemo embeds.
type Tree = IntervalTree.Tree[AddressRange, uint64]

// Handle is a Handle[AddressRange, uint64].
type Handle = IntervalTree.Handle[AddressRange, uint64]

// NewTree returns an empty address-range tree.
func NewTree() *Tree {
	return IntervalTree.New[AddressRange, uint64](Low, High)
}
