package contract

import (
	"testing"

	"github.com/orbitlab/binplot/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to break
// one field at a time.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		OutputDir:   "figures",
		Format:      "both",
		Output:      "text",
		Precision:   DefaultPrecision,
		Color:       "yes",
		FigWidth:    DefaultFigWidth,
		FigHeight:   DefaultFigHeight,
		DPI:         DefaultDPI,
		RunsBackend: "sqlite",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	// No positional argument means the fixed COMPAS path
	assert.Equal(t, schema.DefaultInputPath, cfg.InputPath)
	assert.Equal(t, "figures", cfg.OutputDir)
	assert.Equal(t, schema.BothFormat, cfg.Format)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.Color)
	assert.Equal(t, schema.SQLiteBackend, cfg.RunsBackend)
}

func TestProcessAndValidateInputPath(t *testing.T) {
	input := validInput()
	input.InputPathStr = "run42.csv"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "run42.csv", cfg.InputPath)
}

func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"bad format", func(in *ConfigRawInput) { in.Format = "svg" }},
		{"bad output mode", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"negative precision", func(in *ConfigRawInput) { in.Precision = -1 }},
		{"huge precision", func(in *ConfigRawInput) { in.Precision = 13 }},
		{"negative width", func(in *ConfigRawInput) { in.Width = -5 }},
		{"bad color", func(in *ConfigRawInput) { in.Color = "maybe" }},
		{"zero figure width", func(in *ConfigRawInput) { in.FigWidth = 0 }},
		{"negative figure height", func(in *ConfigRawInput) { in.FigHeight = -2 }},
		{"dpi too low", func(in *ConfigRawInput) { in.DPI = 10 }},
		{"dpi too high", func(in *ConfigRawInput) { in.DPI = 5000 }},
		{"bad backend", func(in *ConfigRawInput) { in.RunsBackend = "mysql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestParseBoolish(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
		{"", true, false}, // empty means default-on
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{" off ", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseBoolish(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStageLabels(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, MainSeqValue},  // low-mass MS
		{1, MainSeqValue},  // MS
		{2, EvolvedValue},  // HG
		{6, EvolvedValue},  // TPAGB
		{7, StrippedValue}, // HeMS
		{9, StrippedValue}, // HeGB
		{10, RemnantValue}, // HeWD
		{14, RemnantValue}, // BH
		{15, RemnantValue}, // MR
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainStageLabel(tt.code), "code %d", tt.code)
	}
}
