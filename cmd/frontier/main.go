// Command frontier runs one of the search engines over an ASCII grid
// map and prints the resulting path and expansion statistics.
//
// Maps use '.' (and 'G') for walkable cells and any other glyph for
// obstacles. With no --map flag a small built-in demo map is used.
//
//	frontier --algo sfbds --mode 2 --start 0,4 --goal 7,0 -v
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tovenja/frontier/delaystar"
	"github.com/tovenja/frontier/gridworld"
	"github.com/tovenja/frontier/search"
	"github.com/tovenja/frontier/sfbds"
)

var (
	algo     string
	mode     int
	mapPath  string
	startArg string
	goalArg  string
	diagonal bool
	verbose  bool
)

var demoMap = []string{
	"........",
	".@@@@@..",
	"....@...",
	".@..@.@.",
	".@......",
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "frontier",
		Short:        "Run a heuristic best-first search over an ASCII grid map.",
		RunE:         run,
		SilenceUsage: true,
	}
	addFlags(rootCmd.Flags())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&algo, "algo", "a", "delay", "search engine: delay or sfbds")
	fs.IntVarP(&mode, "mode", "m", 2, "sfbds expansion-side mode (0..5)")
	fs.StringVarP(&mapPath, "map", "f", "", "path to an ASCII map file (default: built-in demo)")
	fs.StringVar(&startArg, "start", "0,4", "start cell as x,y")
	fs.StringVar(&goalArg, "goal", "7,0", "goal cell as x,y")
	fs.BoolVarP(&diagonal, "diagonal", "8", false, "allow diagonal moves (octile metric)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "trace every expansion")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	rows := demoMap
	if mapPath != "" {
		data, err := os.ReadFile(mapPath)
		if err != nil {
			return err
		}
		rows = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	opts := gridworld.DefaultOptions()
	if diagonal {
		opts.Conn = gridworld.Conn8
	}
	world, err := gridworld.New(rows, opts)
	if err != nil {
		return err
	}

	start, err := parseCell(startArg)
	if err != nil {
		return err
	}
	goal, err := parseCell(goalArg)
	if err != nil {
		return err
	}
	if !world.Walkable(start) || !world.Walkable(goal) {
		return fmt.Errorf("start %v and goal %v must be walkable cells", start, goal)
	}

	switch algo {
	case "delay":
		return runDelay(world, start, goal)
	case "sfbds":
		return runSFBDS(world, start, goal)
	default:
		return fmt.Errorf("unknown engine %q (want delay or sfbds)", algo)
	}
}

func runDelay(world *gridworld.World, start, goal gridworld.Cell) error {
	eng, err := delaystar.New[gridworld.Cell](world, delaystar.WithLogger(log.StandardLogger()))
	if err != nil {
		return err
	}
	path, st, err := eng.SearchAll(start, goal)
	if err != nil {
		return err
	}
	printPath(path, st, eng.Cost())
	stats := eng.Stats()
	fmt.Printf("expanded=%d touched=%d reopened=%d\n",
		stats.NodesExpanded, stats.NodesTouched, stats.NodesReopened)

	return nil
}

func runSFBDS(world *gridworld.World, start, goal gridworld.Cell) error {
	if mode < int(sfbds.SideStart) || mode > int(sfbds.SideJumpOnDegreeTwo) {
		return fmt.Errorf("mode %d out of range 0..5", mode)
	}
	eng, err := sfbds.New[gridworld.Cell](world,
		sfbds.WithSideMode(sfbds.SideMode(mode)),
		sfbds.WithLogger(log.StandardLogger()))
	if err != nil {
		return err
	}
	path, st, err := eng.SearchAll(start, goal)
	if err != nil {
		return err
	}
	printPath(path, st, eng.Cost())
	stats := eng.Stats()
	fmt.Printf("expanded=%d popped=%d touched=%d closedPrunes=%d bpmx=%d jumps=%d jumpsInSolution=%d\n",
		stats.NodesExpanded, stats.NodesPopped, stats.SuccessorsTouched,
		stats.ClosedPrunes, stats.BPMXUpdates, stats.Jumps, stats.JumpsInSolution)

	return nil
}

func printPath(path []gridworld.Cell, st search.Status, cost float64) {
	fmt.Printf("status=%s cost=%.3f\n", st, cost)
	if len(path) == 0 {
		return
	}
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	fmt.Println(strings.Join(parts, " → "))
}

func parseCell(arg string) (gridworld.Cell, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return gridworld.Invalid, fmt.Errorf("cell %q must be x,y", arg)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridworld.Invalid, fmt.Errorf("cell %q: %w", arg, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridworld.Invalid, fmt.Errorf("cell %q: %w", arg, err)
	}

	return gridworld.Cell{X: x, Y: y}, nil
}
