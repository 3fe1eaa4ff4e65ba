package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Alpha regime label constants.
const (
	SteepValue     = "Steep"      // Alpha >= 3: degree frequency decays fast
	ScaleFreeValue = "Scale-free" // 2 <= alpha < 3: classic power-law regime
	ShallowValue   = "Shallow"    // 1 <= alpha < 2: heavy tail
	FlatValue      = "Flat"       // Alpha < 1: barely decaying
)

// Color variables for console output.
var (
	SteepColor     = color.New(color.FgCyan)                // informational
	ScaleFreeColor = color.New(color.FgGreen, color.Bold)   // the regime of interest
	ShallowColor   = color.New(color.FgYellow)              // caution, check the window
	FlatColor      = color.New(color.FgMagenta, color.Bold) // likely not a power law
)

// GetPlainLabel returns a plain text label classifying the fitted exponent.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(alpha float64) string {
	switch {
	case alpha >= 3:
		return SteepValue
	case alpha >= 2:
		return ScaleFreeValue
	case alpha >= 1:
		return ShallowValue
	default:
		return FlatValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(alpha float64) string {
	text := GetPlainLabel(alpha)

	switch text {
	case SteepValue:
		return SteepColor.Sprint(text)
	case ScaleFreeValue:
		return ScaleFreeColor.Sprint(text)
	case ShallowValue:
		return ShallowColor.Sprint(text)
	default: // "Flat"
		return FlatColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
