// Package gridmap defines core types and sentinel errors for the
// occupancy grid consumed by the search packages of github.com/katalvlaran/gridnav.
package gridmap

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or only empty rows.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrStartCount indicates the source map does not hold exactly one start marker.
	ErrStartCount = errors.New("gridmap: map must have exactly one start")
	// ErrGoalCount indicates the source map does not hold exactly one goal marker.
	ErrGoalCount = errors.New("gridmap: map must have exactly one goal")
)

// Map markers understood by FromRows.
const (
	MarkStart = 'A' // start cell, open
	MarkGoal  = 'B' // goal cell, open
	MarkOpen  = ' ' // open cell
	MarkWall  = '#' // canonical wall; any other rune is also a wall
)

// Coord addresses a cell by row (top to bottom) and column (left to right).
type Coord struct {
	Row, Col int
}

// Action is the direction taken to move between two orthogonal neighbours.
type Action int8

const (
	// None marks the root of a search tree.
	None Action = iota
	Up
	Down
	Left
	Right
)

// String returns the lower-case direction name; None renders as "".
func (a Action) String() string {
	switch a {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return ""
	}
}

// Step is one neighbour candidate: the action taken and the cell reached.
type Step struct {
	Action Action
	To     Coord
}

// moves lists the neighbour offsets in the fixed expansion order up, down, left, right.
var moves = [4]struct {
	action   Action
	dRow, dC int
}{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
}

// GridMap is an immutable rectangular occupancy grid with a single start and goal.
// Height and Width are positive; blocked is stored row-major.
// A GridMap may be shared read-only by any number of concurrent searches.
type GridMap struct {
	Height, Width int
	Start, Goal   Coord
	blocked       []bool
}
