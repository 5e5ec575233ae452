// Package gridnav finds routes across 2-D occupancy grids: mazes of walls and
// open cells with one start 'A' and one goal 'B'.
//
// 🚀 What is gridnav?
//
//	A small, single-threaded library plus a command that brings together:
//		• Grid maps: parse, bounds, 4-neighbourhood in up/down/left/right order
//		• Cost models: unit steps with a Manhattan heuristic, or terrain labels
//		• Best-first search: expand-once A* with a step-by-step Searcher
//		• Cost fields: least accumulated cost from the start to every cell
//		• Rendering: text, tcell terminal screens and PNG images
//
// Under the hood, everything is organized under these subpackages:
//
//	gridmap/     GridMap, Coord, Action and the maze file format
//	cost/        the Model interface with Uniform and Terrain
//	frontier/    node arena and min-heap frontier with FIFO tie-break
//	pathsearch/  goal-directed search with Running/Succeeded/Failed states
//	costfield/   full-grid relaxation and least-cost path extraction
//	render/      text, terminal and image output
//	cmd/gridnav/ the command-line solver
//
// Quick example, a maze file and the solution as render.Text prints it:
//
//	A #        A ██
//	           ** 
//	# B        ██*B
//
// The search never re-queues a state it has already queued, so with terrain
// costs or heuristic ties the path it returns may cost more than the optimum;
// costfield.Compute gives exact labels.
//
//	go install github.com/katalvlaran/gridnav/cmd/gridnav@latest
package gridnav
