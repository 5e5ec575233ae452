// Package frontier holds the search-node arena and the min-priority frontier
// shared by pathsearch and costfield.
//
// Nodes are appended to an Arena and addressed by index; a node's parent is
// another index, so a search tree is a slice with back-references and never
// a pointer graph. The Frontier is a binary heap of (key, seq, index) entries:
// seq is a per-frontier insertion counter, so entries with equal keys pop in
// first-in-first-out order and results are deterministic.
//
// Complexity:
//
//   - Insert, PopMin: O(log N).
//   - Contains, IsEmpty, Len: O(1).
package frontier

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/gridnav/gridmap"
)

// ErrEmptyFrontier is returned by PopMin on an empty frontier.
// Callers are expected to check IsEmpty first; seeing this error is a contract violation.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Root is the Parent value of a tree root.
const Root = -1

// Node is one search-tree vertex.
type Node struct {
	State  gridmap.Coord  // cell this node reaches
	Parent int            // arena index of the generating node, Root for the start
	Action gridmap.Action // move taken from the parent, None for the start
	Cost   float64        // accumulated edge cost from the start
	Key    float64        // frontier priority
}

// Arena owns every node created by one search run.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena with room for hint nodes.
func NewArena(hint int) *Arena {
	return &Arena{nodes: make([]Node, 0, hint)}
}

// Add stores n and returns its index.
func (a *Arena) Add(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// At returns the node stored at index i.
func (a *Arena) At(i int) Node { return a.nodes[i] }

// Len returns the number of stored nodes.
func (a *Arena) Len() int { return len(a.nodes) }

// Trace walks parent links from node i up to the root and returns the actions
// and cells in forward order. The root itself is excluded, so the first cell is
// one step away from the start and the last cell is node i's state.
func (a *Arena) Trace(i int) ([]gridmap.Action, []gridmap.Coord) {
	var actions []gridmap.Action
	var cells []gridmap.Coord
	for n := a.nodes[i]; n.Parent != Root; n = a.nodes[n.Parent] {
		actions = append(actions, n.Action)
		cells = append(cells, n.State)
	}
	for l, r := 0, len(cells)-1; l < r; l, r = l+1, r-1 {
		actions[l], actions[r] = actions[r], actions[l]
		cells[l], cells[r] = cells[r], cells[l]
	}
	return actions, cells
}

// entry is one heap element.
type entry struct {
	key   float64
	seq   uint64
	index int
	state gridmap.Coord
}

// entryPQ is a min-heap ordered by (key, seq).
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Frontier is a min-priority multiset of arena indices keyed by Node.Key.
// It is not safe for concurrent use.
type Frontier struct {
	pq      entryPQ
	seq     uint64
	byState map[gridmap.Coord]int // number of queued entries per state
}

// New returns an empty frontier.
func New() *Frontier {
	return &Frontier{byState: make(map[gridmap.Coord]int)}
}

// Insert queues arena index i, whose node is n, under n.Key.
func (f *Frontier) Insert(i int, n Node) {
	heap.Push(&f.pq, entry{key: n.Key, seq: f.seq, index: i, state: n.State})
	f.seq++
	f.byState[n.State]++
}

// IsEmpty reports whether no entries are queued.
func (f *Frontier) IsEmpty() bool { return len(f.pq) == 0 }

// Len returns the number of queued entries, duplicates included.
func (f *Frontier) Len() int { return len(f.pq) }

// Contains reports whether any queued entry is for state c.
func (f *Frontier) Contains(c gridmap.Coord) bool {
	return f.byState[c] > 0
}

// PopMin removes and returns the arena index with the smallest key; among equal
// keys the earliest inserted wins. Returns ErrEmptyFrontier if nothing is queued.
func (f *Frontier) PopMin() (int, error) {
	if f.IsEmpty() {
		return 0, ErrEmptyFrontier
	}
	e := heap.Pop(&f.pq).(entry)
	if f.byState[e.state]--; f.byState[e.state] == 0 {
		delete(f.byState, e.state)
	}
	return e.index, nil
}
