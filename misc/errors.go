package misc

import (
	"os"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	return []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}[s]
}

// Verbosity and LogFile are applied to every logger made by NewLogger. The entry point sets them once
// before any component is constructed.
var (
	Verbosity = bslogger.Normal
	LogFile   *os.File
)

func NewLogger(name string) bslogger.Logger {
	return bslogger.NewLogger(name, Verbosity, LogFile)
}

// SetVerbosity maps a command line value onto a bslogger verbosity. Unknown values leave it unchanged.
func SetVerbosity(value string) bool {
	switch value {
	case "minimal":
		Verbosity = bslogger.Minimal
	case "normal":
		Verbosity = bslogger.Normal
	case "all":
		Verbosity = bslogger.All
	default:
		return false
	}
	return true
}

// CheckError reports err at the given severity and returns true when there was an error to report.
// A Fatal severity does not return.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}
	switch severity {
	case Fatal:
		logger.Fatal(err.Error())
	case Error:
		logger.Error(err.Error())
	case Warning:
		logger.Warning(err.Error())
	case Info:
		logger.Info(err.Error())
	case Debug:
		logger.Debug(err.Error())
	default:
		logger.Fatal(err.Error())
	}
	return true
}
