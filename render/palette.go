package render

import (
	"errors"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridnav/gridmap"
	"github.com/katalvlaran/gridnav/pathsearch"
)

// Sentinel errors for render functions.
var (
	// ErrNilMap is returned when a nil *gridmap.GridMap is passed.
	ErrNilMap = errors.New("render: map is nil")
	// ErrNilInput is returned when a nil terrain, field or screen is passed.
	ErrNilInput = errors.New("render: input is nil")
	// ErrOptionViolation is returned when an invalid PNGOption is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Palette shared by Screen and the PNG renderers.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorWall       = color.RGBA{40, 40, 40, 255}
	ColorStart      = color.RGBA{255, 0, 0, 255}
	ColorGoal       = color.RGBA{0, 171, 28, 255}
	ColorPath       = color.RGBA{220, 235, 113, 255}
	ColorExplored   = color.RGBA{212, 97, 85, 255}
	ColorOpen       = color.RGBA{237, 240, 252, 255}
	ColorHighCost   = color.RGBA{255, 0, 0, 255}
	ColorLowCost    = color.RGBA{0, 255, 0, 255}
)

// kind classifies a cell for painting.
type kind uint8

const (
	kindOpen kind = iota
	kindWall
	kindStart
	kindGoal
	kindPath
	kindExplored
)

func (k kind) color() color.RGBA {
	switch k {
	case kindWall:
		return ColorWall
	case kindStart:
		return ColorStart
	case kindGoal:
		return ColorGoal
	case kindPath:
		return ColorPath
	case kindExplored:
		return ColorExplored
	default:
		return ColorOpen
	}
}

// layer holds the per-cell overlays of one result.
type layer struct {
	path     map[gridmap.Coord]struct{}
	explored map[gridmap.Coord]struct{}
}

func newLayer(res *pathsearch.Result, withExplored bool) layer {
	var l layer
	if res == nil {
		return l
	}
	l.path = cellSet(res.Cells)
	if withExplored {
		l.explored = cellSet(res.Explored)
	}
	return l
}

// classify picks the kind of c. Walls, start and goal win over overlays,
// and the path wins over the explored set.
func (l layer) classify(m *gridmap.GridMap, c gridmap.Coord) kind {
	switch {
	case m.Blocked(c):
		return kindWall
	case c == m.Start:
		return kindStart
	case c == m.Goal:
		return kindGoal
	}
	if _, ok := l.path[c]; ok {
		return kindPath
	}
	if _, ok := l.explored[c]; ok {
		return kindExplored
	}
	return kindOpen
}

func cellSet(cells []gridmap.Coord) map[gridmap.Coord]struct{} {
	set := make(map[gridmap.Coord]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
