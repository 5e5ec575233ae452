package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/pathsearch"
	"github.com/katalvlaran/gridnav/render"
)

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	require.NoError(t, err)
	return img
}

// centre returns the colour in the middle of cell (r, c) for 50px cells.
func centre(img image.Image, r, c int) color.RGBA {
	return color.RGBAModel.Convert(img.At(c*50+25, r*50+25)).(color.RGBA)
}

// TestSolutionPNG checks size, palette and the black cell border.
func TestSolutionPNG(t *testing.T) {
	m := mustMap(t, "A  ", " # ", "  B")
	res, err := pathsearch.Run(m, cost.NewUniform(m))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.SolutionPNG(&buf, m, res))
	img := decode(t, &buf)

	require.Equal(t, image.Rect(0, 0, 150, 150), img.Bounds())
	assert.Equal(t, render.ColorStart, centre(img, 0, 0))
	assert.Equal(t, render.ColorGoal, centre(img, 2, 2))
	assert.Equal(t, render.ColorWall, centre(img, 1, 1))
	assert.Equal(t, render.ColorPath, centre(img, 1, 0))
	assert.Equal(t, render.ColorExplored, centre(img, 0, 2))
	assert.Equal(t, render.ColorBackground, color.RGBAModel.Convert(img.At(0, 0)))
}

// TestSolutionPNG_Options covers custom sizes, hidden exploration and bad options.
func TestSolutionPNG_Options(t *testing.T) {
	m := mustMap(t, "A  ", " # ", "  B")
	res, err := pathsearch.Run(m, cost.NewUniform(m))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.SolutionPNG(&buf, m, res, render.WithCellSize(10), render.WithBorder(0), render.WithoutExplored()))
	img := decode(t, &buf)
	require.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())
	assert.Equal(t, render.ColorOpen, color.RGBAModel.Convert(img.At(25, 5)))

	for name, opt := range map[string]render.PNGOption{
		"ZeroCell":       render.WithCellSize(0),
		"NegativeBorder": render.WithBorder(-1),
		"BorderTooWide":  render.WithBorder(25),
	} {
		t.Run(name, func(t *testing.T) {
			err := render.SolutionPNG(&bytes.Buffer{}, m, res, opt)
			require.ErrorIs(t, err, render.ErrOptionViolation)
		})
	}
	require.ErrorIs(t, render.SolutionPNG(&buf, nil, nil), render.ErrNilMap)
}

// TestCostPNG paints High labels red and everything else green.
func TestCostPNG(t *testing.T) {
	m := mustMap(t, "A#B")
	tr, err := cost.NewTerrain(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.CostPNG(&buf, tr))
	img := decode(t, &buf)

	require.Equal(t, image.Rect(0, 0, 150, 50), img.Bounds())
	assert.Equal(t, render.ColorLowCost, centre(img, 0, 0))
	assert.Equal(t, render.ColorHighCost, centre(img, 0, 1))
	assert.Equal(t, render.ColorLowCost, centre(img, 0, 2))
	require.ErrorIs(t, render.CostPNG(&buf, nil), render.ErrNilInput)
}

// TestFieldPNG shades reachable cells and paints unreachable ones as walls.
func TestFieldPNG(t *testing.T) {
	m := mustMap(t, "A  #B")
	f, err := costfield.Compute(m, cost.NewUniform(m))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.FieldPNG(&buf, f))
	img := decode(t, &buf)

	require.Equal(t, image.Rect(0, 0, 250, 50), img.Bounds())
	assert.Equal(t, render.ColorWall, centre(img, 0, 3))
	assert.Equal(t, render.ColorWall, centre(img, 0, 4))
	assert.NotEqual(t, centre(img, 0, 0), centre(img, 0, 2), "cheap and expensive cells differ")
	require.ErrorIs(t, render.FieldPNG(&buf, nil), render.ErrNilInput)
}

// TestSolutionPNG_Nil paints the bare maze when no result is given.
func TestSolutionPNG_Nil(t *testing.T) {
	m := mustMap(t, "A B")
	var buf bytes.Buffer
	require.NoError(t, render.SolutionPNG(&buf, m, nil))
	assert.Equal(t, render.ColorOpen, centre(decode(t, &buf), 0, 1))
}
