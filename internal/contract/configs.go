package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orbitlab/binplot/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 4
	DefaultDPI       = 150
	MinDPI           = 36
	MaxDPI           = 1200

	// Figure dimensions in inches, chosen for aesthetics in print.
	DefaultFigWidth  = 10.0
	DefaultFigHeight = 6.0
)

// Config holds the runtime configuration for a run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath  string
	OutputDir  string
	Format     schema.ImageFormat
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	Color      bool

	FigWidth  float64 // inches
	FigHeight float64 // inches
	DPI       int

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	InputPathStr string  // positional argument, not a flag
	OutputDir    string  `mapstructure:"output-dir"`
	Format       string  `mapstructure:"format"`
	Output       string  `mapstructure:"output"`
	OutputFile   string  `mapstructure:"output-file"`
	Precision    int     `mapstructure:"precision"`
	Width        int     `mapstructure:"width"`
	Color        string  `mapstructure:"color"`
	FigWidth     float64 `mapstructure:"fig-width"`
	FigHeight    float64 `mapstructure:"fig-height"`
	DPI          int     `mapstructure:"dpi"`

	RunsBackend   string `mapstructure:"runs-backend"`
	RunsDBConnect string `mapstructure:"runs-db-connect"`
}

// ProcessAndValidate converts the raw input into the final validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr
	if cfg.InputPath == "" {
		cfg.InputPath = schema.DefaultInputPath
	}

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	format := schema.ImageFormat(strings.ToLower(input.Format))
	if _, ok := schema.ValidImageFormats[format]; !ok {
		return fmt.Errorf("invalid image format %q (valid: png, eps, both)", input.Format)
	}
	cfg.Format = format

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (valid: text, csv, json, parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 12 {
		return fmt.Errorf("precision %d outside [0, 12]", input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	colorOn, err := parseBoolish(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting %q: %w", input.Color, err)
	}
	cfg.Color = colorOn

	if input.FigWidth <= 0 || input.FigHeight <= 0 {
		return fmt.Errorf("figure dimensions must be positive, got %gx%g", input.FigWidth, input.FigHeight)
	}
	cfg.FigWidth = input.FigWidth
	cfg.FigHeight = input.FigHeight

	if input.DPI < MinDPI || input.DPI > MaxDPI {
		return fmt.Errorf("dpi %d outside [%d, %d]", input.DPI, MinDPI, MaxDPI)
	}
	cfg.DPI = input.DPI

	backend := schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if _, ok := schema.ValidRunBackends[backend]; !ok {
		return fmt.Errorf("invalid runs backend %q (valid: sqlite, none)", input.RunsBackend)
	}
	cfg.RunsBackend = backend
	cfg.RunsDBConnect = input.RunsDBConnect

	return nil
}

// parseBoolish accepts the yes/no style values used by the color flag.
func parseBoolish(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected yes/no/true/false/1/0")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run history.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".binplot_runs.db"
	}
	return filepath.Join(homeDir, ".binplot_runs.db")
}
