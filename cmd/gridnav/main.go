// Command gridnav solves a maze file and prints or draws the result.
//
// Usage:
//
//	gridnav [flags] maze.txt
//
// The maze uses 'A' for the start, 'B' for the goal, ' ' for open cells and
// anything else for walls. Search uses the unit-step model with the Manhattan
// heuristic unless -model terrain is given, in which case walls carry cost
// High and open cells Low, or the digit labels of the -terrain file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridnav/cost"
	"github.com/katalvlaran/gridnav/costfield"
	"github.com/katalvlaran/gridnav/gridmap"
	"github.com/katalvlaran/gridnav/pathsearch"
	"github.com/katalvlaran/gridnav/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridnav: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	mazePath      string
	model         string
	terrainPath   string
	dijkstra      bool
	field         bool
	maxExpansions int
	pngPath       string
	costPNGPath   string
	fieldPNGPath  string
	tui           bool
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.model, "model", "uniform", "cost model: uniform or terrain")
	fs.StringVar(&cfg.terrainPath, "terrain", "", "digit label file for -model terrain")
	fs.BoolVar(&cfg.dijkstra, "dijkstra", false, "order the frontier by cost only")
	fs.BoolVar(&cfg.field, "field", false, "print terrain labels and the cost field")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "give up after this many pops (0 = no limit)")
	fs.StringVar(&cfg.pngPath, "png", "", "write the solution image to this file")
	fs.StringVar(&cfg.costPNGPath, "cost-png", "", "write the terrain label image to this file")
	fs.StringVar(&cfg.fieldPNGPath, "field-png", "", "write the cost field image to this file")
	fs.BoolVar(&cfg.tui, "tui", false, "show the solution in the terminal until a key is pressed")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: gridnav [flags] maze.txt")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, flag.ErrHelp
	}
	cfg.mazePath = fs.Arg(0)

	switch cfg.model {
	case "uniform":
		if cfg.terrainPath != "" {
			return cfg, errors.New("-terrain requires -model terrain")
		}
	case "terrain":
	default:
		return cfg, fmt.Errorf("unknown -model %q (want uniform or terrain)", cfg.model)
	}
	return cfg, nil
}

func run(args []string, out io.Writer) error {
	cfg, err := parseFlags(args, out)
	if err != nil {
		return err
	}

	m, err := gridmap.LoadFile(cfg.mazePath)
	if err != nil {
		return err
	}
	model, terrain, err := buildModel(cfg, m)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Maze:")
	if err = render.Text(out, m, nil); err != nil {
		return err
	}
	fmt.Fprintln(out, "Solving...")

	opts := []pathsearch.Option{pathsearch.WithMaxExpansions(cfg.maxExpansions)}
	if cfg.dijkstra {
		opts = append(opts, pathsearch.WithoutHeuristic())
	}
	res, err := pathsearch.Run(m, model, opts...)
	switch {
	case errors.Is(err, pathsearch.ErrNoPath):
		fmt.Fprintf(out, "No solution. %d cells reachable from start.\n", len(m.Reachable(m.Start)))
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "States Explored: %d\n", len(res.Explored))
		fmt.Fprintln(out, "Solution:")
		if err = render.Text(out, m, res.Cells); err != nil {
			return err
		}
		fmt.Fprintf(out, "Steps: %d  Cost: %g\n", res.Len(), res.Cost)
	}

	var field *costfield.Field
	if cfg.field || cfg.fieldPNGPath != "" {
		if field, err = costfield.Compute(m, model); err != nil {
			return err
		}
	}
	if cfg.field {
		if terrain != nil {
			fmt.Fprintln(out, "Terrain labels:")
			if err = render.LabelsText(out, terrain); err != nil {
				return err
			}
		}
		fmt.Fprintln(out, "Cost field:")
		if err = render.FieldText(out, field); err != nil {
			return err
		}
	}

	if err = writeImages(cfg, m, res, terrain, field); err != nil {
		return err
	}
	if cfg.tui {
		return showScreen(m, res)
	}
	return nil
}

// buildModel returns the search model and, for -model terrain, the terrain
// it wraps so labels can be printed and drawn.
func buildModel(cfg config, m *gridmap.GridMap) (cost.Model, *cost.Terrain, error) {
	if cfg.model == "uniform" {
		return cost.NewUniform(m), nil, nil
	}
	if cfg.terrainPath == "" {
		t, err := cost.NewTerrain(m)
		return t, t, err
	}
	rows, err := readLines(cfg.terrainPath)
	if err != nil {
		return nil, nil, err
	}
	t, err := cost.ParseTerrain(m, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", cfg.terrainPath, err)
	}
	return t, t, nil
}

func writeImages(cfg config, m *gridmap.GridMap, res *pathsearch.Result, terrain *cost.Terrain, field *costfield.Field) error {
	if cfg.pngPath != "" {
		if err := writeFile(cfg.pngPath, func(w io.Writer) error {
			return render.SolutionPNG(w, m, res)
		}); err != nil {
			return err
		}
	}
	if cfg.costPNGPath != "" {
		if terrain == nil {
			t, err := cost.NewTerrain(m)
			if err != nil {
				return err
			}
			terrain = t
		}
		if err := writeFile(cfg.costPNGPath, func(w io.Writer) error {
			return render.CostPNG(w, terrain)
		}); err != nil {
			return err
		}
	}
	if cfg.fieldPNGPath != "" {
		if err := writeFile(cfg.fieldPNGPath, func(w io.Writer) error {
			return render.FieldPNG(w, field)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gridmap.ReadRows(f)
}

func showScreen(m *gridmap.GridMap, res *pathsearch.Result) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	if err = render.Screen(s, m, res); err != nil {
		return err
	}
	for {
		switch s.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.Sync()
		}
	}
}
