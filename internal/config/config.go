// Package config loads and validates indicator pipeline configuration files.
package config

import (
	"bytes"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/indicator"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how pipeline rows are written.
type OutputFormat string

const (
	OutputFormatCSV       OutputFormat = "csv"
	OutputFormatJSONLines OutputFormat = "jsonl"
)

// Config describes one pipeline run: a bar stream for a single symbol and the
// ordered list of indicators applied to it.
type Config struct {
	Version    string            `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version the config was written for (e.g. 1.0.0),required" validate:"required"`
	Symbol     string            `yaml:"symbol" json:"symbol" jsonschema:"title=Symbol,description=Only bars for this symbol are processed; empty accepts every bar"`
	LogLevel   string            `yaml:"log_level" json:"log_level" jsonschema:"title=Log Level,enum=debug,enum=info,enum=warn,enum=error,default=info" validate:"omitempty,oneof=debug info warn error"`
	Output     Output            `yaml:"output" json:"output" jsonschema:"title=Output,required" validate:"required"`
	Indicators []IndicatorConfig `yaml:"indicators" json:"indicators" jsonschema:"title=Indicators,description=Indicators in output column order,minItems=1,required" validate:"required,min=1,unique=Name,dive"`
}

// Output selects the row format and destination.
type Output struct {
	Format OutputFormat `yaml:"format" json:"format" jsonschema:"title=Format,enum=csv,enum=jsonl,default=csv" validate:"required,oneof=csv jsonl"`
	Path   string       `yaml:"path" json:"path" jsonschema:"title=Path,description=Output file; empty writes to stdout"`
}

// IndicatorConfig declares one named indicator. Zero parameters fall back to the
// indicator's default.
type IndicatorConfig struct {
	Name      string         `yaml:"name" json:"name" jsonschema:"title=Name,description=Column name in the output,required" validate:"required"`
	Type      indicator.Type `yaml:"type" json:"type" jsonschema:"title=Type,enum=sma,enum=ema,enum=rma,enum=tr,enum=atr,enum=dmi,enum=pivot_points,required" validate:"required,oneof=sma ema rma tr atr dmi pivot_points"`
	Period    int            `yaml:"period,omitempty" json:"period,omitempty" jsonschema:"title=Period,minimum=0" validate:"gte=0"`
	Lookback  int            `yaml:"lookback,omitempty" json:"lookback,omitempty" jsonschema:"title=Lookback,description=Pivot points only,minimum=0" validate:"gte=0"`
	NumPivots int            `yaml:"num_pivots,omitempty" json:"num_pivots,omitempty" jsonschema:"title=Number of Pivots,description=Pivot points only,minimum=0" validate:"gte=0"`
}

// Params converts the declaration into registry build parameters.
func (c IndicatorConfig) Params() indicator.Params {
	return indicator.Params{
		Period:    c.Period,
		Lookback:  c.Lookback,
		NumPivots: c.NumPivots,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config %s", path)
	}

	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var config Config

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse YAML config", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Output.Format == "" {
		c.Output.Format = OutputFormatCSV
	}
}

// Validate checks struct constraints and that the engine can run a config written
// for c.Version.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return version.CheckConfigCompatibility(version.GetVersion(), c.Version)
}
