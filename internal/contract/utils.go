package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Stellar-stage label groups for console output.
const (
	RemnantValue  = "Remnant"  // compact remnants (WD, NS, BH, MR)
	StrippedValue = "Stripped" // helium stars
	EvolvedValue  = "Evolved"  // post-main-sequence
	MainSeqValue  = "MainSeq"  // main sequence
)

// Color variables for console output.
var (
	RemnantColor  = color.New(color.FgRed, color.Bold) // end states
	StrippedColor = color.New(color.FgMagenta)         // envelope-stripped stars
	EvolvedColor  = color.New(color.FgYellow)          // giants and beyond
	MainSeqColor  = color.New(color.FgCyan)            // hydrogen burning
)

// GetPlainStageLabel returns a plain text label grouping a raw stellar type
// code into a broad evolutionary stage. This is the core logic used for CSV,
// JSON, and table printing.
func GetPlainStageLabel(code int) string {
	switch {
	case code >= 10:
		return RemnantValue
	case code >= 7:
		return StrippedValue
	case code >= 2:
		return EvolvedValue
	default:
		return MainSeqValue
	}
}

// GetColorStageLabel returns a colored stage label for console output (table).
// It uses GetPlainStageLabel to determine the string, and then applies the
// appropriate color.
func GetColorStageLabel(code int) string {
	text := GetPlainStageLabel(code)

	switch text {
	case RemnantValue:
		return RemnantColor.Sprint(text)
	case StrippedValue:
		return StrippedColor.Sprint(text)
	case EvolvedValue:
		return EvolvedColor.Sprint(text)
	default: // "MainSeq"
		return MainSeqColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
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
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
