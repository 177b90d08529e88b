package coordinator

import (
	"fmt"

	"FractalRenderer/animation"
	"FractalRenderer/output"

	"github.com/BrugadaSyndrome/bslogger"
)

// animationSettings describe a time sweep. Frames of zero renders a single still image instead.
type animationSettings struct {
	coloring animation.Coloring
	encoder  output.Encoder
	mode     animation.Mode

	Coloring      string  `yaml:"Coloring"`
	Directory     string  `yaml:"Directory"`
	Duration      float64 `yaml:"Duration"`
	Format        string  `yaml:"Format"`
	Frames        int     `yaml:"Frames"`
	GenerateMovie bool    `yaml:"GenerateMovie"`
	Manifest      bool    `yaml:"Manifest"`
	Mode          string  `yaml:"Mode"`
	Movie         string  `yaml:"Movie"`
}

func (as *animationSettings) String() string {
	if as.Frames == 0 {
		return "Animation: none\n"
	}
	return fmt.Sprintf("Animation: %d %s frames colored %s over %gs\n", as.Frames, as.Mode, as.Coloring, as.Duration)
}

func (as *animationSettings) Verify(logger bslogger.Logger) error {
	if as.Frames < 0 {
		return fmt.Errorf("frame count %d is negative", as.Frames)
	}
	if as.Coloring == "" {
		as.Coloring = animation.ColorShared.String()
	}
	if as.Directory == "" {
		as.Directory = "frames"
	}
	if as.Duration <= 0 {
		as.Duration = 10
	}
	if as.Format == "" {
		as.Format = "png"
	}
	if as.Mode == "" {
		as.Mode = animation.Uniform.String()
	}
	if as.Movie == "" {
		as.Movie = "movie.mp4"
	}

	var err error
	if as.coloring, err = animation.ParseColoring(as.Coloring); err != nil {
		return err
	}
	if as.mode, err = animation.ParseMode(as.Mode); err != nil {
		return err
	}
	if as.encoder, err = output.EncoderFor(as.Format); err != nil {
		return err
	}

	// If generate movie is set to true, verify ffmpeg is setup
	if as.Frames > 0 && as.GenerateMovie && !output.FfmpegAvailable() {
		as.GenerateMovie = false
		logger.Info("Ffmpeg is not installed. Disabling GenerateMovie.")
	}
	return nil
}
