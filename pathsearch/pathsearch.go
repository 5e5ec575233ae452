// Package pathsearch implements goal-directed best-first search on an
// occupancy grid.
//
// The search expands each state at most once: a neighbour is queued only if
// it is neither finalised nor already waiting in the frontier, and a queued
// entry is never re-prioritised. A cheaper route to a state discovered after
// that state was first queued is ignored, so the returned path is always
// valid but not always cheapest. Ordering by cost alone (WithoutHeuristic)
// under a model whose edge cost depends only on the destination cell
// returns least-cost paths. Use costfield for exact least-cost labels.
//
// Complexity:
//
//   - Time:  O(V log V), V = open cells; each state is queued at most once.
//   - Space: O(V) for the arena, frontier and explored set.
package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/frontier"
	"github.com/katalvlaran/gridnav/gridmap"
)

// Run searches m from Start to Goal under model and returns the path.
// Returns ErrNoPath if the goal is unreachable; any other error is a
// configuration problem (nil inputs, bad options, invalid costs).
func Run(m *gridmap.GridMap, model cost.Model, opts ...Option) (*Result, error) {
	s, err := NewSearcher(m, model, opts...)
	if err != nil {
		return nil, err
	}
	for s.Status() == Running {
		if _, err = s.Step(); err != nil {
			return nil, err
		}
	}
	return s.Result(), nil
}

// Searcher is a single search run that can be advanced one pop at a time.
// It owns its arena, frontier and explored set; it is not safe for concurrent use.
type Searcher struct {
	m        *gridmap.GridMap
	model    cost.Model
	opts     Options
	arena    *frontier.Arena
	frontier *frontier.Frontier
	explored map[gridmap.Coord]struct{}
	order    []gridmap.Coord
	expanded int
	status   Status
	result   *Result
	err      error
}

// NewSearcher validates inputs and queues the start node with key Heuristic(start).
func NewSearcher(m *gridmap.GridMap, model cost.Model, opts ...Option) (*Searcher, error) {
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
	if cfg.err != nil {
		return nil, cfg.err
	}

	s := &Searcher{
		m:        m,
		model:    model,
		opts:     cfg,
		arena:    frontier.NewArena(m.Cells()),
		frontier: frontier.New(),
		explored: make(map[gridmap.Coord]struct{}, m.Cells()),
		status:   Running,
	}

	root := frontier.Node{State: m.Start, Parent: frontier.Root, Action: gridmap.None}
	if cfg.UseHeuristic {
		h, err := s.heuristic(m.Start)
		if err != nil {
			return nil, err
		}
		root.Key = h
	}
	s.frontier.Insert(s.arena.Add(root), root)

	return s, nil
}

// Status returns the current state of the run.
func (s *Searcher) Status() Status { return s.status }

// Err returns why a Failed run stopped, nil otherwise.
func (s *Searcher) Err() error { return s.err }

// Result returns the path once the run has Succeeded, nil otherwise.
func (s *Searcher) Result() *Result { return s.result }

// Step pops one node and advances the state machine.
// Once the run has left Running, Step returns the final status and error again.
func (s *Searcher) Step() (Status, error) {
	if s.status != Running {
		return s.status, s.err
	}
	if s.frontier.IsEmpty() {
		return s.fail(ErrNoPath)
	}
	if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
		return s.fail(fmt.Errorf("%w: %d pops", ErrExpansionLimit, s.expanded))
	}

	i, err := s.frontier.PopMin()
	if err != nil {
		return s.fail(err)
	}
	s.expanded++
	node := s.arena.At(i)

	if node.State == s.m.Goal {
		actions, cells := s.arena.Trace(i)
		s.result = &Result{
			Actions:  actions,
			Cells:    cells,
			Cost:     node.Cost,
			Expanded: s.expanded,
			Explored: s.order,
		}
		s.status = Succeeded
		return s.status, nil
	}

	if _, done := s.explored[node.State]; done {
		return s.status, nil // stale entry
	}
	s.explored[node.State] = struct{}{}
	s.order = append(s.order, node.State)
	s.opts.OnExpand(node.State, node.Cost)

	for _, st := range s.m.Neighbors(node.State) {
		if _, done := s.explored[st.To]; done || s.frontier.Contains(st.To) {
			continue
		}
		step := s.model.EdgeCost(node.State, st.To)
		if err = cost.Validate(step); err != nil {
			return s.fail(fmt.Errorf("pathsearch: edge %v→%v: %w", node.State, st.To, err))
		}
		child := frontier.Node{
			State:  st.To,
			Parent: i,
			Action: st.Action,
			Cost:   node.Cost + step,
		}
		child.Key = child.Cost
		if s.opts.UseHeuristic {
			h, err := s.heuristic(st.To)
			if err != nil {
				return s.fail(err)
			}
			child.Key += h
		}
		s.frontier.Insert(s.arena.Add(child), child)
		s.opts.OnEnqueue(child.State, child.Key)
	}

	return s.status, nil
}

func (s *Searcher) heuristic(c gridmap.Coord) (float64, error) {
	h := s.model.Heuristic(c)
	if err := cost.Validate(h); err != nil {
		return 0, fmt.Errorf("pathsearch: heuristic at %v: %w", c, err)
	}
	return h, nil
}

func (s *Searcher) fail(err error) (Status, error) {
	s.status = Failed
	s.err = err
	return s.status, err
}
