package cost

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridmap"
)

// Terrain charges a fixed per-cell label for entering a cell and supplies no
// heuristic, which reduces best-first search to plain cost ordering.
// Labels are validated on construction and never change afterwards.
type Terrain struct {
	height, width int
	labels        []float64 // row-major
}

// NewTerrain labels every wall High and every open cell Low.
func NewTerrain(m *gridmap.GridMap) (*Terrain, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	t := newTerrain(m)
	for i := range t.labels {
		if m.Blocked(m.Coordinate(i)) {
			t.labels[i] = High
		} else {
			t.labels[i] = Low
		}
	}
	return t, nil
}

// NewTerrainLabels copies an explicit label grid.
// Returns ErrShape if labels is not m.Height×m.Width, ErrBadCost for any
// negative, NaN or infinite label.
func NewTerrainLabels(m *gridmap.GridMap, labels [][]float64) (*Terrain, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if len(labels) != m.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrShape, len(labels), m.Height)
	}
	t := newTerrain(m)
	for r, row := range labels {
		if len(row) != m.Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, r, len(row), m.Width)
		}
		for c, v := range row {
			if err := Validate(v); err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			t.labels[r*m.Width+c] = v
		}
	}
	return t, nil
}

// ParseTerrain reads one rune per cell: '0'..'9' give that cost, ' ', '.',
// 'A' and 'B' give Low, '#' gives High. Missing rows and short rows pad with Low.
// Any other rune is ErrBadCost; more rows or columns than the map is ErrShape.
func ParseTerrain(m *gridmap.GridMap, rows []string) (*Terrain, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if len(rows) > m.Height {
		return nil, fmt.Errorf("%w: %d rows, want at most %d", ErrShape, len(rows), m.Height)
	}
	t := newTerrain(m)
	for i := range t.labels {
		t.labels[i] = Low
	}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= m.Width {
				return nil, fmt.Errorf("%w: row %d wider than %d", ErrShape, r, m.Width)
			}
			var v float64
			switch {
			case ch >= '0' && ch <= '9':
				v = float64(ch - '0')
			case ch == ' ' || ch == '.' || ch == gridmap.MarkStart || ch == gridmap.MarkGoal:
				v = Low
			case ch == gridmap.MarkWall:
				v = High
			default:
				return nil, fmt.Errorf("%w: unknown terrain rune %q at (%d,%d)", ErrBadCost, ch, r, c)
			}
			t.labels[r*m.Width+c] = v
			c++
		}
	}
	return t, nil
}

func newTerrain(m *gridmap.GridMap) *Terrain {
	return &Terrain{
		height: m.Height,
		width:  m.Width,
		labels: make([]float64, m.Height*m.Width),
	}
}

// EdgeCost returns the label of the destination cell.
func (t *Terrain) EdgeCost(_, to gridmap.Coord) float64 {
	return t.Label(to)
}

// Heuristic is always 0.
func (t *Terrain) Heuristic(gridmap.Coord) float64 { return 0 }

// Label returns the static entry cost of c.
func (t *Terrain) Label(c gridmap.Coord) float64 {
	return t.labels[c.Row*t.width+c.Col]
}

// Labels returns a copy of the label grid, one slice per row.
func (t *Terrain) Labels() [][]float64 {
	out := make([][]float64, t.height)
	for r := range out {
		out[r] = make([]float64, t.width)
		copy(out[r], t.labels[r*t.width:(r+1)*t.width])
	}
	return out
}
