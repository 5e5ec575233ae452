// Package gridmap models a rectangular occupancy grid read from a text map.
//
// What:
//
//   - GridMap holds Height×Width blocked flags plus a single Start and Goal.
//   - FromRows/Load/LoadFile parse 'A' (start), 'B' (goal), ' ' (open); any other rune is a wall.
//   - Neighbors enumerates open orthogonal moves in the fixed order up, down, left, right.
//   - Reachable flood-fills the open region around a cell.
//
// Why:
//
//   - Search algorithms need deterministic neighbour order for reproducible tie-breaks.
//   - The map is immutable, so one GridMap can feed many searches concurrently.
//
// Complexity:
//
//   - FromRows:  O(H×W), Memory: O(H×W).
//   - Neighbors: O(1).
//   - Reachable: O(H×W), Memory: O(H×W).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrStartCount: not exactly one 'A'.
//   - ErrGoalCount: not exactly one 'B'.
package gridmap
