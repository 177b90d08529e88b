package output

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"FractalRenderer/misc"
)

// FrameRecord describes one written frame of a sequence.
type FrameRecord struct {
	Index int
	Path  string
	T     float64
}

// FrameDurations converts the time of every frame into how long it stays on screen in a movie lasting
// seconds. A frame lasts until the next one starts; the last frame lasts until the cycle closes at the
// first frame's time plus one. Frames must be sorted by T.
func FrameDurations(frames []FrameRecord, seconds float64) []float64 {
	durations := make([]float64, len(frames))
	for i := range frames {
		next := 1.0
		if i+1 < len(frames) {
			next = frames[i+1].T
		} else if len(frames) > 0 {
			next = frames[0].T + 1
		}
		durations[i] = (next - frames[i].T) * seconds
	}
	return durations
}

// WriteConcat writes an ffmpeg concat list that plays the frames with their own durations, which is what
// keeps an adaptively sampled sweep running at an even pace.
func WriteConcat(path string, frames []FrameRecord, seconds float64) error {
	if len(frames) == 0 {
		return errors.New("no frames to list")
	}
	durations := FrameDurations(frames, seconds)

	var list strings.Builder
	list.WriteString("ffconcat version 1.0\n")
	for i, frame := range frames {
		fmt.Fprintf(&list, "file '%s'\n", filepath.Base(frame.Path))
		fmt.Fprintf(&list, "duration %.6f\n", durations[i])
	}
	// The concat demuxer ignores the duration of the final entry unless the file is listed again
	fmt.Fprintf(&list, "file '%s'\n", filepath.Base(frames[len(frames)-1].Path))

	_, err := misc.WriteFile(path, []byte(list.String()))
	return err
}

// FfmpegAvailable reports whether an ffmpeg binary can be run.
func FfmpegAvailable() bool {
	cmd := exec.Command("ffmpeg", "-version")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return false
	}
	return bytes.Contains(stdout.Bytes(), []byte(`ffmpeg version`))
}

// EncodeMovie runs ffmpeg over a concat list written by WriteConcat.
func EncodeMovie(concatPath string, moviePath string) error {
	cmd := exec.Command("ffmpeg", "-y", "-loglevel", "error",
		"-f", "concat", "-safe", "0", "-i", concatPath,
		"-fps_mode", "vfr", "-pix_fmt", "yuv420p", moviePath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed - %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
