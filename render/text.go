package render

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/gridmap"
)

// Glyphs written by Text.
const (
	GlyphWall  = "██"
	GlyphStart = "A"
	GlyphGoal  = "B"
	GlyphPath  = "*"
	GlyphOpen  = " "
)

// Text writes m one row per line, marking the cells of path with GlyphPath.
// path may be nil. Write errors are returned.
func Text(w io.Writer, m *gridmap.GridMap, path []gridmap.Coord) error {
	if m == nil {
		return ErrNilMap
	}
	l := layer{path: cellSet(path)}

	bw := bufio.NewWriter(w)
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			bw.WriteString(glyph(l.classify(m, gridmap.Coord{Row: r, Col: c})))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(k kind) string {
	switch k {
	case kindWall:
		return GlyphWall
	case kindStart:
		return GlyphStart
	case kindGoal:
		return GlyphGoal
	case kindPath:
		return GlyphPath
	default:
		return GlyphOpen
	}
}

// FieldText writes the labels of f, space separated, one row per line.
// Unreachable cells are written as "inf".
func FieldText(w io.Writer, f *costfield.Field) error {
	if f == nil {
		return ErrNilInput
	}
	return writeMatrix(w, f.Rows())
}

// LabelsText writes the static terrain labels of t in the same layout as FieldText.
func LabelsText(w io.Writer, t *cost.Terrain) error {
	if t == nil {
		return ErrNilInput
	}
	return writeMatrix(w, t.Labels())
}

func writeMatrix(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(formatCost(v))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatCost(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
