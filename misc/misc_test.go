package misc

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/BrugadaSyndrome/bslogger"
)

func TestLerpEndPoints(t *testing.T) {
	tests := []struct {
		v1, v2, fraction, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{0.1, 0.7, 1, 0.7},
	}
	for _, test := range tests {
		if got := LerpFloat64(test.v1, test.v2, test.fraction); got != test.want {
			t.Errorf("LerpFloat64(%g, %g, %g) = %g, want %g", test.v1, test.v2, test.fraction, got, test.want)
		}
	}
}

func TestLinearInterpolationRGB(t *testing.T) {
	black := color.RGBA{A: 0}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 0}
	got := LinearInterpolationRGB(black, white, 0.5)
	if got != (color.RGBA{R: 127, G: 127, B: 127, A: 255}) {
		t.Errorf("midpoint = %v", got)
	}
}

func TestSetVerbosity(t *testing.T) {
	defer func() { Verbosity = bslogger.Normal }()

	if !SetVerbosity("all") || Verbosity != bslogger.All {
		t.Error("all was not applied")
	}
	if SetVerbosity("loud") || Verbosity != bslogger.All {
		t.Error("an unknown value changed the verbosity")
	}
}

func TestCheckError(t *testing.T) {
	logger := NewLogger("Test")
	if CheckError(nil, logger, Warning) {
		t.Error("nil reported as an error")
	}
	if !CheckError(errors.New("boom"), logger, Debug) {
		t.Error("error not reported")
	}
}

func TestFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDirectory(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("existing directory: %v", err)
	}

	path := filepath.Join(dir, "settings.json")
	if n, err := WriteFile(path, []byte("{}")); err != nil || n != 2 {
		t.Fatalf("WriteFile = %d, %v", n, err)
	}
	contents, err := ReadFile(path)
	if err != nil || string(contents) != "{}" {
		t.Errorf("ReadFile = %q, %v", contents, err)
	}
	if _, err = ReadFile(""); err == nil {
		t.Error("empty file name accepted")
	}
	if _, err = ReadFile(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}
