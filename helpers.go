package main

import (
	"flag"
	"fmt"
	"strings"

	"FractalRenderer/fractal"
	"FractalRenderer/misc"
	"FractalRenderer/palette"
)

func parseArguments() {
	flag.StringVar(&settingsFile, "settings", "settings.yaml", "JSON or YAML file describing the render")
	flag.StringVar(&verbosity, "verbosity", "normal", "Logging verbosity: minimal, normal or all")
	flag.BoolVar(&listFormulas, "formulas", false, "List the built-in formulas and exit")
	flag.BoolVar(&listPresets, "presets", false, "List the built-in color schemes and exit")

	flag.Parse()

	logger := misc.NewLogger("Arguments")
	if !misc.SetVerbosity(verbosity) {
		logger.Warningf("Unknown verbosity %q, using normal", verbosity)
	}
	logger = misc.NewLogger("Arguments")
	logger.Debugf("Settings File: %s", settingsFile)
	logger.Debugf("Verbosity: %s", verbosity)
}

func printLists() {
	if listFormulas {
		fmt.Printf("Formulas: %s\n", strings.Join(fractal.Formulas(), ", "))
	}
	if listPresets {
		fmt.Printf("Presets: %s\n", strings.Join(palette.Presets(), ", "))
	}
}
