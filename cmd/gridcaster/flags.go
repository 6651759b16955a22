package main

import "flag"

// Command-line flags. Settings not exposed here come from the config file.
var (
	// backendFlag selects where frames are drawn.
	backendFlag = flag.String("backend", "window", "render backend: window, terminal or png")

	// configFlag points at the YAML settings file. A missing file means defaults.
	configFlag = flag.String("config", "gridcaster.yaml", "path to the YAML config file")

	// levelFlag overrides the level named in the config.
	levelFlag = flag.String("level", "", "path to a YAML level file")

	headingFlag = flag.Float64("heading", 0, "initial heading in degrees (overrides the level)")

	// outFlag is the snapshot path for the png backend.
	outFlag = flag.String("out", "frame.png", "output file for -backend png")

	// imageFlag shows a still PNG instead of the raycast view.
	imageFlag = flag.String("image", "", "PNG to draw in place of the raycast view")

	// topDownFlag starts with the minimap overlay visible.
	topDownFlag = flag.Bool("topdown", false, "draw the top-down debug view over the first-person view")

	// rollFlag rolls one die with the given number of sides and exits.
	rollFlag = flag.Float64("roll", 0, "roll one die with this many sides and exit")

	// listLevelsFlag prints the levels found in a directory and exits.
	listLevelsFlag = flag.String("list-levels", "", "list the level files in a directory and exit")

	// diceFlag rolls a dice expression such as 2d6+1 and exits.
	diceFlag = flag.String("dice", "", "roll a dice expression (e.g. 3d6+2) and exit")
)

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
