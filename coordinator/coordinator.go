// Package coordinator runs one render job described by a settings file: a still image or an animated
// sweep, written into its own run directory together with a copy of the settings and a log.
package coordinator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"FractalRenderer/animation"
	"FractalRenderer/fractal"
	"FractalRenderer/manifest"
	"FractalRenderer/misc"
	"FractalRenderer/output"
	"FractalRenderer/palette"
	"FractalRenderer/progress"
	"FractalRenderer/rasterizer"

	"github.com/BrugadaSyndrome/bslogger"
)

const heartBeat = 30 * time.Second

type Coordinator struct {
	evaluator  fractal.Evaluator
	logFile    *os.File
	logger     bslogger.Logger
	rasterizer *rasterizer.Rasterizer
	reporter   *progress.Reporter
	runPath    string
	scheduler  *animation.Scheduler
	scheme     *palette.ColorScheme
	settings   settings
	viewport   fractal.Viewport
}

func NewCoordinator(settingsFile string) (*Coordinator, error) {
	settings, err := NewSettings(settingsFile)
	if err != nil {
		return nil, err
	}

	coordinator := &Coordinator{
		logger:   misc.NewLogger("Coordinator"),
		runPath:  filepath.Join(settings.SavePath, settings.RunName),
		settings: settings,
	}
	if coordinator.viewport, err = settings.Fractal.Viewport(); err != nil {
		return nil, err
	}
	if coordinator.evaluator, err = settings.Fractal.Evaluator(); err != nil {
		return nil, err
	}
	if coordinator.scheme, err = settings.Palette.ColorScheme(); err != nil {
		return nil, err
	}

	// Create directory to store files for this run
	if err = misc.EnsureDirectory(coordinator.runPath); err != nil {
		return nil, err
	}

	// Copy the settings to the directory so the run can be duplicated in the future
	backup, err := settings.marshal(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to encode settings - %w", err)
	}
	bytesWritten, err := misc.WriteFile(filepath.Join(coordinator.runPath, filepath.Base(settingsFile)), backup)
	if err != nil {
		return nil, fmt.Errorf("unable to make a backup copy of %s - %w", settingsFile, err)
	}
	if bytesWritten == 0 {
		return nil, fmt.Errorf("backup copy of %s is empty", settingsFile)
	}

	// Create a log file to record the run
	logFile, err := os.Create(filepath.Join(coordinator.runPath, "coordinator.log"))
	if !misc.CheckError(err, coordinator.logger, misc.Warning) {
		coordinator.logFile = logFile
		misc.LogFile = logFile
		coordinator.logger = misc.NewLogger("Coordinator")
	}

	coordinator.reporter = progress.NewReporter(misc.NewLogger("Progress"), heartBeat)
	coordinator.rasterizer = rasterizer.New(settings.Workers, coordinator.reporter)
	coordinator.scheduler = animation.NewScheduler(coordinator.rasterizer, coordinator.reporter)
	coordinator.logger.Debug(settings.String())

	return coordinator, nil
}

func (c *Coordinator) RunPath() string {
	return c.runPath
}

// Run renders what the settings describe. Frames already written stay on disk when a later one fails.
func (c *Coordinator) Run(ctx context.Context) error {
	c.reporter.Start()
	defer c.reporter.Stop()

	startTime := time.Now()
	var err error
	if c.settings.Animation.Frames == 0 {
		err = c.renderStill(ctx)
	} else {
		err = c.renderAnimation(ctx)
	}
	if err != nil {
		return err
	}
	c.logger.Infof("Run %s finished in %s", c.settings.RunName, time.Since(startTime))
	return nil
}

func (c *Coordinator) renderStill(ctx context.Context) error {
	c.reporter.Expect(uint64(c.viewport.Height), 0)

	img, err := c.rasterizer.Render(ctx, c.viewport, c.scheme, c.evaluator, c.settings.Fractal.Time)
	if err != nil {
		return err
	}
	path := filepath.Join(c.runPath, c.settings.Output)
	if err = output.Save(path, img); err != nil {
		return err
	}
	c.logger.Infof("Saved image to %s", path)
	return nil
}

func (c *Coordinator) renderAnimation(ctx context.Context) error {
	as := c.settings.Animation
	c.reporter.Expect(uint64(as.Frames*c.viewport.Height), uint64(as.Frames))

	frames, err := c.scheduler.Schedule(ctx, as.mode, c.viewport, c.evaluator, as.Frames)
	if err != nil {
		return err
	}
	positions, err := c.scheduler.Positions(ctx, frames, as.coloring)
	if err != nil {
		return err
	}

	directory := filepath.Join(c.runPath, as.Directory)
	if err = misc.EnsureDirectory(directory); err != nil {
		return err
	}

	var frameManifest *manifest.Manifest
	if as.Manifest {
		if frameManifest, err = c.openManifest(ctx); err != nil {
			return err
		}
		defer func() {
			misc.CheckError(frameManifest.Close(), c.logger, misc.Warning)
		}()
	}

	records := make([]output.FrameRecord, 0, len(frames))
	for i := range frames {
		if err = ctx.Err(); err != nil {
			return err
		}
		img := c.rasterizer.Colorize(frames[i].Grid, positions[i], c.scheme)
		record := output.FrameRecord{
			Index: frames[i].Index,
			Path:  output.FramePath(directory, frames[i].Index, as.encoder),
			T:     frames[i].T,
		}
		if err = output.SaveAs(record.Path, img, as.encoder); err != nil {
			return err
		}
		if frameManifest != nil {
			if err = frameManifest.Record(ctx, record); err != nil {
				return err
			}
		}
		records = append(records, record)
		// The grid is no longer needed once its frame is on disk
		frames[i].Grid = nil
		c.logger.Debugf("Saved frame %d (t=%f) to %s", record.Index, record.T, record.Path)
	}
	c.logger.Infof("Saved %d frames to %s", len(records), directory)

	concat := filepath.Join(directory, "frames.ffconcat")
	if err = output.WriteConcat(concat, records, as.Duration); err != nil {
		return err
	}
	if as.GenerateMovie {
		movie := filepath.Join(c.runPath, as.Movie)
		if err = output.EncodeMovie(concat, movie); err != nil {
			return err
		}
		c.logger.Infof("Saved movie to %s", movie)
	}
	return nil
}

func (c *Coordinator) openManifest(ctx context.Context) (*manifest.Manifest, error) {
	frameManifest, err := manifest.Open(filepath.Join(c.runPath, "frames.db"))
	if err != nil {
		return nil, err
	}
	meta := map[string]string{
		"coloring": c.settings.Animation.coloring.String(),
		"formula":  c.settings.Fractal.Formula.Name,
		"frames":   strconv.Itoa(c.settings.Animation.Frames),
		"mode":     c.settings.Animation.mode.String(),
		"viewport": c.viewport.String(),
	}
	for key, value := range meta {
		if err = frameManifest.SetMeta(ctx, key, value); err != nil {
			frameManifest.Close()
			return nil, err
		}
	}
	return frameManifest, nil
}

// Close releases the run's log file.
func (c *Coordinator) Close() error {
	if c.logFile == nil {
		return nil
	}
	if misc.LogFile == c.logFile {
		misc.LogFile = nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}
