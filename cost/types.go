// Package cost defines the traversal-cost policies shared by pathsearch and costfield.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/gridmap"
)

// Sentinel errors for cost policies.
var (
	// ErrBadCost indicates a negative, NaN or infinite cost or heuristic value.
	ErrBadCost = errors.New("cost: cost must be finite and non-negative")
	// ErrShape indicates a label grid whose dimensions differ from the map.
	ErrShape = errors.New("cost: label grid does not match map dimensions")
	// ErrNilMap indicates a nil *gridmap.GridMap was passed to a constructor.
	ErrNilMap = errors.New("cost: map is nil")
)

// Terrain labels assigned by NewTerrain and ParseTerrain.
const (
	Low    = 1.0
	Medium = 3.0
	High   = 5.0
)

// Model supplies the price of moving between orthogonal neighbours and an
// estimate of the remaining cost to the goal.
//
// EdgeCost(from, to) must be finite and non-negative. Heuristic(c) must be
// finite and non-negative and should not overestimate the true remaining cost.
type Model interface {
	EdgeCost(from, to gridmap.Coord) float64
	Heuristic(c gridmap.Coord) float64
}

// Validate returns ErrBadCost (wrapped with the value) unless v is finite and ≥ 0.
func Validate(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: got %v", ErrBadCost, v)
	}
	return nil
}

// Uniform charges 1 for every move and estimates the remainder by Manhattan
// distance, which is admissible and consistent on a 4-connected unit grid.
type Uniform struct {
	goal gridmap.Coord
}

// NewUniform returns the unit-step model aimed at m.Goal.
func NewUniform(m *gridmap.GridMap) *Uniform {
	return &Uniform{goal: m.Goal}
}

// EdgeCost always returns 1.
func (u *Uniform) EdgeCost(_, _ gridmap.Coord) float64 { return 1 }

// Heuristic returns the Manhattan distance from c to the goal.
func (u *Uniform) Heuristic(c gridmap.Coord) float64 {
	return float64(gridmap.Manhattan(c, u.goal))
}

var (
	_ Model = (*Uniform)(nil)
	_ Model = (*Terrain)(nil)
)
