package costfield

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridmap"
)

// PathTo follows the predecessors recorded by the last improvement of each
// label from target back to the start and returns the cells in forward order,
// start exclusive, target inclusive. Every prefix of the result is itself a
// least-cost path. Returns ErrOutOfBounds or ErrUnreachable for an unusable target.
//
// Complexity: O(L), L = path length.
func (f *Field) PathTo(target gridmap.Coord) ([]gridmap.Coord, error) {
	if !f.inBounds(target) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, target)
	}
	if !f.Reachable(target) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	var rev []gridmap.Coord
	for at := f.index(target); at != f.index(f.Start); at = f.prev[at] {
		rev = append(rev, gridmap.Coord{Row: at / f.Width, Col: at % f.Width})
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}
	return rev, nil
}

// Predecessor returns the neighbour through which c received its label.
// ok is false for the start and for unreachable cells.
func (f *Field) Predecessor(c gridmap.Coord) (p gridmap.Coord, ok bool) {
	if !f.inBounds(c) {
		return gridmap.Coord{}, false
	}
	at := f.prev[f.index(c)]
	if at < 0 {
		return gridmap.Coord{}, false
	}
	return gridmap.Coord{Row: at / f.Width, Col: at % f.Width}, true
}

func (f *Field) index(c gridmap.Coord) int {
	return c.Row*f.Width + c.Col
}
