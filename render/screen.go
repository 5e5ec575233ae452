package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridnav/gridmap"
	"github.com/katalvlaran/gridnav/pathsearch"
)

// ScreenCellWidth is the number of terminal columns a grid cell occupies.
const ScreenCellWidth = 2

// Screen draws m on s with the path and explored cells of res shaded.
// res may be nil to draw the bare maze. Cells beyond the screen size are
// clipped by tcell. Screen clears s first and calls Show when done.
func Screen(s tcell.Screen, m *gridmap.GridMap, res *pathsearch.Result) error {
	if s == nil {
		return ErrNilInput
	}
	if m == nil {
		return ErrNilMap
	}
	l := newLayer(res, true)

	s.Clear()
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			k := l.classify(m, gridmap.Coord{Row: r, Col: c})
			st := screenStyle(k)
			x := c * ScreenCellWidth
			s.SetContent(x, r, screenRune(k), nil, st)
			s.SetContent(x+1, r, ' ', nil, st)
		}
	}
	s.Show()

	return nil
}

func screenStyle(k kind) tcell.Style {
	st := tcell.StyleDefault.Background(tcellColor(k.color()))
	if k == kindStart || k == kindGoal {
		st = st.Foreground(tcell.ColorWhite).Bold(true)
	}
	return st
}

func screenRune(k kind) rune {
	switch k {
	case kindStart:
		return 'A'
	case kindGoal:
		return 'B'
	default:
		return ' '
	}
}
