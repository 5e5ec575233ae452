package gridmap

// Reachable returns every open cell connected to from by orthogonal moves,
// in breadth-first discovery order (neighbour order up, down, left, right).
// Returns nil if from is blocked or out of bounds.
//
// Time:   O(H×W).
// Memory: O(H×W) for visited flags and output.
func (m *GridMap) Reachable(from Coord) []Coord {
	if !m.Open(from) {
		return nil
	}
	seen := make([]bool, m.Cells())
	seen[m.Index(from)] = true
	queue := []Coord{from}

	for qi := 0; qi < len(queue); qi++ {
		for _, st := range m.Neighbors(queue[qi]) {
			i := m.Index(st.To)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, st.To)
			}
		}
	}
	return queue
}

// Connected reports whether the goal can be reached from the start at all,
// ignoring costs.
func (m *GridMap) Connected() bool {
	for _, c := range m.Reachable(m.Start) {
		if c == m.Goal {
			return true
		}
	}
	return false
}
