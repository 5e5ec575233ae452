package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/gridmap"
	"github.com/katalvlaran/gridnav/render"
)

func mustMap(t *testing.T, rows ...string) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.FromRows(rows)
	require.NoError(t, err)
	return m
}

// TestText_Glyphs checks every glyph, including start and goal winning over the path.
func TestText_Glyphs(t *testing.T) {
	m := mustMap(t, "A  ", " # ", "  B")
	path := []gridmap.Coord{{Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}

	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, m, path))
	assert.Equal(t, "A  \n*██ \n**B\n", buf.String())
}

// TestText_NoPath renders the bare maze.
func TestText_NoPath(t *testing.T) {
	m := mustMap(t, "A#B")
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, m, nil))
	assert.Equal(t, "A██B\n", buf.String())

	require.ErrorIs(t, render.Text(&buf, nil, nil), render.ErrNilMap)
}

// TestFieldText prints finite labels and "inf" for cells no path reaches.
func TestFieldText(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want string
	}{
		{"Open3x3", []string{"A  ", "   ", "  B"}, "0 1 2\n1 2 3\n2 3 4\n"},
		{"WallBetween", []string{"A#B"}, "0 inf inf\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustMap(t, tc.rows...)
			f, err := costfield.Compute(m, cost.NewUniform(m))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, render.FieldText(&buf, f))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

// TestLabelsText prints static terrain labels, distinct from the computed field.
func TestLabelsText(t *testing.T) {
	m := mustMap(t, "A#B")
	tr, err := cost.NewTerrain(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.LabelsText(&buf, tr))
	assert.Equal(t, "1 5 1\n", buf.String())

	require.ErrorIs(t, render.LabelsText(&buf, nil), render.ErrNilInput)
	require.ErrorIs(t, render.FieldText(&buf, nil), render.ErrNilInput)
}
