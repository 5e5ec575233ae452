// Package pathsearch provides options, results and sentinel errors for
// goal-directed best-first search over a gridmap.GridMap.
package pathsearch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/gridmap"
)

// Sentinel errors returned by Run and Searcher.
var (
	// ErrNoPath is returned when the frontier drains before the goal is popped.
	// It is an expected outcome, not a malfunction.
	ErrNoPath = errors.New("pathsearch: no path to goal")

	// ErrNilMap is returned when a nil *gridmap.GridMap is passed.
	ErrNilMap = errors.New("pathsearch: map is nil")

	// ErrNilModel is returned when a nil cost.Model is passed.
	ErrNilModel = errors.New("pathsearch: cost model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions pops happen without reaching the goal.
	ErrExpansionLimit = errors.New("pathsearch: expansion limit reached")
)

// Status is the state of a Searcher.
type Status int

const (
	// Running means the goal has not been popped and the frontier is non-empty.
	Running Status = iota
	// Succeeded means the goal was popped and Result is available.
	Succeeded
	// Failed means the search stopped without a path; Err tells why.
	Failed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures Run and NewSearcher via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds tunables and callbacks for one search.
type Options struct {
	// OnExpand is called when a state is finalised, with its accumulated cost.
	OnExpand func(c gridmap.Coord, cost float64)

	// OnEnqueue is called when a child node is inserted, with its priority key.
	OnEnqueue func(c gridmap.Coord, key float64)

	// MaxExpansions, if > 0, fails the search with ErrExpansionLimit after
	// that many pops. 0 disables the limit.
	MaxExpansions int

	// UseHeuristic adds the model's heuristic to every priority key.
	// Disabled, the keys are accumulated costs only (uniform-cost ordering).
	UseHeuristic bool

	err error
}

// DefaultOptions returns Options with no-op hooks, no expansion limit and
// heuristic-inclusive keys.
func DefaultOptions() Options {
	return Options{
		OnExpand:     func(gridmap.Coord, float64) {},
		OnEnqueue:    func(gridmap.Coord, float64) {},
		UseHeuristic: true,
	}
}

// WithOnExpand registers a callback run for every finalised state.
func WithOnExpand(fn func(c gridmap.Coord, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run for every inserted child.
func WithOnEnqueue(fn func(c gridmap.Coord, key float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxExpansions caps the number of pops.
//
//	n > 0:  limit to n pops
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithoutHeuristic orders the frontier by accumulated cost alone.
func WithoutHeuristic() Option {
	return func(o *Options) {
		o.UseHeuristic = false
	}
}

// Result is a found path.
//
//   - Actions and Cells run from the start (exclusive) to the goal (inclusive).
//   - Cost is the accumulated cost of the goal node.
//   - Expanded counts pops, stale ones included.
//   - Explored lists finalised states in the order they were finalised.
type Result struct {
	Actions  []gridmap.Action
	Cells    []gridmap.Coord
	Cost     float64
	Expanded int
	Explored []gridmap.Coord
}

// Len returns the number of moves in the path.
func (r *Result) Len() int { return len(r.Actions) }
