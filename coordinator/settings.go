package coordinator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FractalRenderer/fractal"
	"FractalRenderer/misc"
	"FractalRenderer/output"
	"FractalRenderer/palette"

	"github.com/BrugadaSyndrome/bslogger"
	"gopkg.in/yaml.v3"
)

type settings struct {
	logger bslogger.Logger

	Animation animationSettings `yaml:"Animation"`
	Fractal   fractal.Settings  `yaml:"Fractal"`
	Output    string            `yaml:"Output"`
	Palette   palette.Settings  `yaml:"Palette"`
	RunName   string            `yaml:"RunName"`
	SavePath  string            `yaml:"SavePath"`
	Workers   int               `yaml:"Workers"`
}

// NewSettings loads a settings file. Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func NewSettings(settingsFile string) (settings, error) {
	s := settings{
		logger: misc.NewLogger("CoordinatorSettings"),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if isYAML(settingsFile) {
		err = yaml.Unmarshal(fileBytes, &s)
	} else {
		err = json.Unmarshal(fileBytes, &s)
	}
	if err != nil {
		return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
	}
	if err = s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func isYAML(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// marshal encodes the verified settings in the same format the file name implies.
func (s *settings) marshal(fileName string) ([]byte, error) {
	if isYAML(fileName) {
		return yaml.Marshal(s)
	}
	return json.MarshalIndent(s, "", "  ")
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Run: %s\n", filepath.Join(s.SavePath, s.RunName))
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	output += s.Fractal.String()
	output += s.Animation.String()
	return output
}

func (s *settings) Verify() error {
	if err := s.Fractal.Verify(); err != nil {
		return err
	}
	if err := s.Palette.Verify(); err != nil {
		return err
	}
	if err := s.Animation.Verify(s.logger); err != nil {
		return err
	}
	if s.Output == "" {
		s.Output = "fractal.png"
	}
	if _, err := output.EncoderFor(filepath.Ext(s.Output)); err != nil {
		return err
	}
	if s.RunName == "" {
		s.RunName = "run_" + time.Now().Format("2006_01_02-03_04_05")
	}
	if s.SavePath == "" {
		s.SavePath, _ = os.Getwd()
	}
	// Zero or less lets the rasterizer use one worker per CPU
	if s.Workers < 0 {
		s.Workers = 0
	}
	return nil
}
