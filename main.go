package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FractalRenderer/coordinator"
	"FractalRenderer/misc"
)

/**
 * TODO
 *
 * todo: smooth (fractional) escape counts so linear coloring stops banding at low iteration caps
 */

var (
	settingsFile, verbosity   string
	listFormulas, listPresets bool
)

func main() {
	parseArguments()
	logger := misc.NewLogger("Main")

	if listFormulas || listPresets {
		printLists()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := coordinator.NewCoordinator(settingsFile)
	misc.CheckError(err, logger, misc.Fatal)

	err = c.Run(ctx)
	misc.CheckError(c.Close(), logger, misc.Warning)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Info("Shutting down")
}
