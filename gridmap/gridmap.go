// Package gridmap turns rows of map text into an immutable occupancy grid
// and answers the neighbourhood queries the search packages rely on.
//
// Cells with rune ' ' are open, 'A' marks the start and 'B' the goal (both open);
// every other rune is a wall. Rows shorter than the widest row are padded as open.
package gridmap

import (
	"fmt"
	"strings"
)

// FromRows builds a GridMap from text rows.
// Returns ErrEmptyGrid if there is nothing to build, ErrStartCount or ErrGoalCount
// (wrapped with the number of markers found) unless exactly one of each exists.
// Complexity: O(H×W) time and memory.
func FromRows(rows []string) (*GridMap, error) {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	if h == 0 || w == 0 {
		return nil, ErrEmptyGrid
	}

	m := &GridMap{
		Height:  h,
		Width:   w,
		blocked: make([]bool, h*w),
	}
	var starts, goals int
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			switch ch {
			case MarkStart:
				starts++
				m.Start = Coord{r, c}
			case MarkGoal:
				goals++
				m.Goal = Coord{r, c}
			case MarkOpen:
			default:
				m.blocked[m.Index(Coord{r, c})] = true
			}
			c++
		}
		// cells past the end of a short row stay open
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGoalCount, goals)
	}

	return m, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (m *GridMap) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.Height && c.Col >= 0 && c.Col < m.Width
}

// Blocked reports whether c is a wall. Out-of-bounds cells count as blocked.
func (m *GridMap) Blocked(c Coord) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.blocked[m.Index(c)]
}

// Open reports whether c is in bounds and traversable.
func (m *GridMap) Open(c Coord) bool {
	return !m.Blocked(c)
}

// Neighbors returns the open orthogonal neighbours of c in the fixed order
// up, down, left, right. Step costs are the cost model's business.
// Complexity: O(1).
func (m *GridMap) Neighbors(c Coord) []Step {
	out := make([]Step, 0, len(moves))
	for _, mv := range moves {
		next := Coord{c.Row + mv.dRow, c.Col + mv.dC}
		if m.Open(next) {
			out = append(out, Step{Action: mv.action, To: next})
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Width + Col.
func (m *GridMap) Index(c Coord) int {
	return c.Row*m.Width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (m *GridMap) Coordinate(idx int) Coord {
	return Coord{Row: idx / m.Width, Col: idx % m.Width}
}

// Cells returns the total number of cells, Height×Width.
func (m *GridMap) Cells() int {
	return m.Height * m.Width
}

// Rows renders the map back to text using MarkWall for every wall.
// FromRows(m.Rows()) yields an equal map.
func (m *GridMap) Rows() []string {
	out := make([]string, m.Height)
	var sb strings.Builder
	for r := 0; r < m.Height; r++ {
		sb.Reset()
		for c := 0; c < m.Width; c++ {
			cur := Coord{r, c}
			switch {
			case cur == m.Start:
				sb.WriteRune(MarkStart)
			case cur == m.Goal:
				sb.WriteRune(MarkGoal)
			case m.blocked[m.Index(cur)]:
				sb.WriteRune(MarkWall)
			default:
				sb.WriteRune(MarkOpen)
			}
		}
		out[r] = sb.String()
	}
	return out
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
