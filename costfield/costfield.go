// Package costfield labels every cell of a grid with its least accumulated
// cost from the start.
//
// Compute is a single-source relaxation: the field starts at +Inf everywhere
// except the start (0); popping a node relaxes each open neighbour and
// re-queues it only on strict improvement. There is no explored set, so a
// cell may be popped more than once if a cheaper route turns up later; the
// strict-improvement test bounds the work because every relaxation lowers a
// non-negative value.
//
// Complexity:
//
//   - Time:  O(E log E) with E ≤ 4·V relaxations under non-negative costs.
//   - Space: O(V + E) for the field and the frontier.
package costfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/frontier"
	"github.com/katalvlaran/gridnav/gridmap"
)

// Sentinel errors for field computation and path extraction.
var (
	// ErrNilMap is returned when a nil *gridmap.GridMap is passed.
	ErrNilMap = errors.New("costfield: map is nil")
	// ErrNilModel is returned when a nil cost.Model is passed.
	ErrNilModel = errors.New("costfield: cost model is nil")
	// ErrUnreachable is returned by PathTo for a cell whose label is +Inf.
	ErrUnreachable = errors.New("costfield: cell is unreachable from start")
	// ErrOutOfBounds is returned by PathTo for a cell outside the grid.
	ErrOutOfBounds = errors.New("costfield: cell is out of bounds")
)

// Unreachable is the label of a cell no path reaches.
var Unreachable = math.Inf(1)

// Option configures Compute.
type Option func(*Options)

// Options holds callbacks for one computation.
type Options struct {
	// OnRelax is called whenever a cell's label strictly decreases.
	OnRelax func(c gridmap.Coord, value float64)
}

// DefaultOptions returns Options with a no-op OnRelax.
func DefaultOptions() Options {
	return Options{OnRelax: func(gridmap.Coord, float64) {}}
}

// WithOnRelax registers a callback run for every strict improvement.
func WithOnRelax(fn func(c gridmap.Coord, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Field is a Height×Width matrix of least costs from Start.
type Field struct {
	Height, Width int
	Start         gridmap.Coord
	// Pops counts frontier pops, stale entries included.
	Pops int
	// Relaxations counts strict improvements, the start's initial 0 excluded.
	Relaxations int

	values []float64 // row-major
	prev   []int     // row-major index of the predecessor, -1 if none
}

// Compute relaxes the whole grid from m.Start under model.
// The model's heuristic is not consulted. Returns cost.ErrBadCost (wrapped)
// if the model yields a negative, NaN or infinite edge cost.
func Compute(m *gridmap.GridMap, model cost.Model, opts ...Option) (*Field, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if model == nil {
		return nil, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field{
		Height: m.Height,
		Width:  m.Width,
		Start:  m.Start,
		values: make([]float64, m.Cells()),
		prev:   make([]int, m.Cells()),
	}
	for i := range f.values {
		f.values[i] = Unreachable
		f.prev[i] = -1
	}
	f.values[m.Index(m.Start)] = 0

	arena := frontier.NewArena(m.Cells())
	pq := frontier.New()
	root := frontier.Node{State: m.Start, Parent: frontier.Root}
	pq.Insert(arena.Add(root), root)

	for !pq.IsEmpty() {
		i, err := pq.PopMin()
		if err != nil {
			return nil, err
		}
		f.Pops++
		node := arena.At(i)

		for _, st := range m.Neighbors(node.State) {
			step := model.EdgeCost(node.State, st.To)
			if err = cost.Validate(step); err != nil {
				return nil, fmt.Errorf("costfield: edge %v→%v: %w", node.State, st.To, err)
			}
			total := node.Cost + step
			idx := m.Index(st.To)
			if total >= f.values[idx] {
				continue
			}
			f.values[idx] = total
			f.prev[idx] = m.Index(node.State)
			f.Relaxations++
			cfg.OnRelax(st.To, total)

			child := frontier.Node{State: st.To, Parent: i, Action: st.Action, Cost: total, Key: total}
			pq.Insert(arena.Add(child), child)
		}
	}

	return f, nil
}

// At returns the label of c, Unreachable for cells outside the grid.
func (f *Field) At(c gridmap.Coord) float64 {
	if !f.inBounds(c) {
		return Unreachable
	}
	return f.values[c.Row*f.Width+c.Col]
}

// Reachable reports whether c has a finite label.
func (f *Field) Reachable(c gridmap.Coord) bool {
	return !math.IsInf(f.At(c), 1)
}

// Rows returns a copy of the labels, one slice per row.
func (f *Field) Rows() [][]float64 {
	out := make([][]float64, f.Height)
	for r := range out {
		out[r] = make([]float64, f.Width)
		copy(out[r], f.values[r*f.Width:(r+1)*f.Width])
	}
	return out
}

// Max returns the largest finite label (0 if only the start is reachable).
func (f *Field) Max() float64 {
	max := 0.0
	for _, v := range f.values {
		if !math.IsInf(v, 1) && v > max {
			max = v
		}
	}
	return max
}

func (f *Field) inBounds(c gridmap.Coord) bool {
	return c.Row >= 0 && c.Row < f.Height && c.Col >= 0 && c.Col < f.Width
}
