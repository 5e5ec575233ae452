// Package render draws grid maps, search results and cost grids.
//
// Three surfaces are supported:
//
//   - Text: the maze as characters (walls "██", start "A", goal "B",
//     path "*"), plus numeric dumps of terrain labels and cost fields.
//   - Screen: the same picture on a tcell.Screen, two terminal columns per
//     cell, with explored cells shaded.
//   - PNG: raster images through fogleman/gg. SolutionPNG paints the maze
//     with its path and explored set, CostPNG paints terrain labels
//     (High in red, everything else in green) and FieldPNG shades a
//     computed cost field from cheap to expensive.
//
// All surfaces share one palette. Render functions never modify their inputs.
package render
