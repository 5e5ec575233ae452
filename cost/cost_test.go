package cost_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/gridmap"
)

func mustMap(t *testing.T, rows ...string) *gridmap.GridMap {
	t.Helper()
	m, err := gridmap.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestValidate(t *testing.T) {
	for _, v := range []float64{0, 1, 5, 1e9} {
		assert.NoError(t, cost.Validate(v), "%v", v)
	}
	for _, v := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, cost.Validate(v), cost.ErrBadCost, "%v", v)
	}
}

// TestUniform checks unit edges and the Manhattan heuristic toward the goal.
func TestUniform(t *testing.T) {
	m := mustMap(t,
		"A   ",
		"    ",
		"   B",
	)
	u := cost.NewUniform(m)

	assert.Equal(t, 1.0, u.EdgeCost(gridmap.Coord{}, gridmap.Coord{Row: 0, Col: 1}))
	assert.Equal(t, 5.0, u.Heuristic(m.Start))
	assert.Equal(t, 0.0, u.Heuristic(m.Goal))
	assert.Equal(t, 2.0, u.Heuristic(gridmap.Coord{Row: 1, Col: 2}))
}

// TestNewTerrain checks the wall→High, open→Low labelling.
func TestNewTerrain(t *testing.T) {
	m := mustMap(t,
		"A#",
		" B",
	)
	tr, err := cost.NewTerrain(m)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{cost.Low, cost.High}, {cost.Low, cost.Low}}, tr.Labels())
	assert.Equal(t, cost.High, tr.EdgeCost(m.Start, gridmap.Coord{Row: 0, Col: 1}))
	assert.Equal(t, 0.0, tr.Heuristic(m.Start))

	_, err = cost.NewTerrain(nil)
	assert.ErrorIs(t, err, cost.ErrNilMap)
}

// TestNewTerrainLabels covers shape and value validation.
func TestNewTerrainLabels(t *testing.T) {
	m := mustMap(t, "A B")

	tr, err := cost.NewTerrainLabels(m, [][]float64{{0, 5, 2}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, tr.Label(gridmap.Coord{Row: 0, Col: 1}))

	cases := []struct {
		name   string
		labels [][]float64
		err    error
	}{
		{"TooFewRows", nil, cost.ErrShape},
		{"TooManyRows", [][]float64{{1, 1, 1}, {1, 1, 1}}, cost.ErrShape},
		{"ShortRow", [][]float64{{1, 1}}, cost.ErrShape},
		{"Negative", [][]float64{{1, -2, 1}}, cost.ErrBadCost},
		{"NaN", [][]float64{{1, math.NaN(), 1}}, cost.ErrBadCost},
		{"Inf", [][]float64{{math.Inf(1), 1, 1}}, cost.ErrBadCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cost.NewTerrainLabels(m, tc.labels)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewTerrainLabels error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewTerrainLabels_Copies ensures later edits to the input do not leak in.
func TestNewTerrainLabels_Copies(t *testing.T) {
	m := mustMap(t, "AB")
	in := [][]float64{{1, 2}}
	tr, err := cost.NewTerrainLabels(m, in)
	require.NoError(t, err)

	in[0][1] = 9
	assert.Equal(t, 2.0, tr.Label(gridmap.Coord{Row: 0, Col: 1}))

	out := tr.Labels()
	out[0][0] = 7
	assert.Equal(t, 1.0, tr.Label(gridmap.Coord{}))
}

// TestParseTerrain covers digits, markers, padding and rejection.
func TestParseTerrain(t *testing.T) {
	m := mustMap(t,
		"A   ",
		"   B",
		"    ",
	)
	tr, err := cost.ParseTerrain(m, []string{
		"A.9#",
		"03",
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{cost.Low, cost.Low, 9, cost.High},
		{0, 3, cost.Low, cost.Low},
		{cost.Low, cost.Low, cost.Low, cost.Low},
	}, tr.Labels())

	_, err = cost.ParseTerrain(m, []string{"x"})
	assert.ErrorIs(t, err, cost.ErrBadCost)
	_, err = cost.ParseTerrain(m, []string{"11111"})
	assert.ErrorIs(t, err, cost.ErrShape)
	_, err = cost.ParseTerrain(m, []string{"", "", "", ""})
	assert.ErrorIs(t, err, cost.ErrShape)
}
