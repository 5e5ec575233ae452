package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/gridmap"
	"github.com/katalvlaran/gridnav/pathsearch"
)

// PNGOption configures the PNG renderers via functional arguments.
type PNGOption func(*PNGOptions)

// PNGOptions holds the raster layout.
type PNGOptions struct {
	// CellSize is the side of one cell in pixels.
	CellSize int
	// Border is the gap in pixels left on every side of a cell.
	Border int
	// ShowExplored shades the explored set in SolutionPNG.
	ShowExplored bool

	err error
}

// DefaultPNGOptions returns 50px cells with a 2px border and explored shading on.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 50, Border: 2, ShowExplored: true}
}

// WithCellSize sets the cell side; n must be positive.
func WithCellSize(n int) PNGOption {
	return func(o *PNGOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: CellSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.CellSize = n
	}
}

// WithBorder sets the cell border; n must be non-negative.
func WithBorder(n int) PNGOption {
	return func(o *PNGOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Border cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Border = n
	}
}

// WithoutExplored paints explored cells as open ones.
func WithoutExplored() PNGOption {
	return func(o *PNGOptions) {
		o.ShowExplored = false
	}
}

func pngOptions(opts []PNGOption) (PNGOptions, error) {
	cfg := DefaultPNGOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if 2*cfg.Border >= cfg.CellSize {
		return cfg, fmt.Errorf("%w: Border %d leaves no room in a %dpx cell", ErrOptionViolation, cfg.Border, cfg.CellSize)
	}
	return cfg, nil
}

// canvas is a gg context laid out as a height×width grid of cells.
type canvas struct {
	dc  *gg.Context
	cfg PNGOptions
}

func newCanvas(height, width int, cfg PNGOptions) *canvas {
	dc := gg.NewContext(width*cfg.CellSize, height*cfg.CellSize)
	dc.SetColor(ColorBackground)
	dc.Clear()
	return &canvas{dc: dc, cfg: cfg}
}

func (cv *canvas) fill(r, c int, col color.Color) {
	size, b := cv.cfg.CellSize, cv.cfg.Border
	cv.dc.SetColor(col)
	cv.dc.DrawRectangle(
		float64(c*size+b), float64(r*size+b),
		float64(size-2*b), float64(size-2*b),
	)
	cv.dc.Fill()
}

// SolutionPNG encodes m as a PNG with the path and, unless disabled, the
// explored cells of res. res may be nil to paint the bare maze.
func SolutionPNG(w io.Writer, m *gridmap.GridMap, res *pathsearch.Result, opts ...PNGOption) error {
	if m == nil {
		return ErrNilMap
	}
	cfg, err := pngOptions(opts)
	if err != nil {
		return err
	}
	l := newLayer(res, cfg.ShowExplored)

	cv := newCanvas(m.Height, m.Width, cfg)
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			cv.fill(r, c, l.classify(m, gridmap.Coord{Row: r, Col: c}).color())
		}
	}
	return cv.dc.EncodePNG(w)
}

// CostPNG encodes the terrain labels of t: ColorHighCost for cells labelled
// cost.High, ColorLowCost for every other cell.
func CostPNG(w io.Writer, t *cost.Terrain, opts ...PNGOption) error {
	if t == nil {
		return ErrNilInput
	}
	cfg, err := pngOptions(opts)
	if err != nil {
		return err
	}
	labels := t.Labels()

	cv := newCanvas(len(labels), len(labels[0]), cfg)
	for r, row := range labels {
		for c, v := range row {
			col := ColorLowCost
			if v == cost.High {
				col = ColorHighCost
			}
			cv.fill(r, c, col)
		}
	}
	return cv.dc.EncodePNG(w)
}

// FieldPNG encodes f shaded from ColorLowCost (0) to ColorHighCost (f.Max()).
// Unreachable cells are painted ColorWall.
func FieldPNG(w io.Writer, f *costfield.Field, opts ...PNGOption) error {
	if f == nil {
		return ErrNilInput
	}
	cfg, err := pngOptions(opts)
	if err != nil {
		return err
	}

	max := f.Max()
	cv := newCanvas(f.Height, f.Width, cfg)
	for r, row := range f.Rows() {
		for c, v := range row {
			cv.fill(r, c, shade(v, max))
		}
	}
	return cv.dc.EncodePNG(w)
}

// shade maps v in [0,max] onto the low→high ramp in HCL space.
func shade(v, max float64) color.Color {
	if math.IsInf(v, 1) {
		return ColorWall
	}
	t := 0.0
	if max > 0 {
		t = v / max
	}
	low, _ := colorful.MakeColor(ColorLowCost)
	high, _ := colorful.MakeColor(ColorHighCost)
	return low.BlendHcl(high, t).Clamped()
}
