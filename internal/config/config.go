package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/beaninit/internal/logging"
)

// Environment variables consulted by FromEnv.
const (
	EnvLogLevel   = "BEANINIT_LOG_LEVEL"
	EnvLogFormat  = "BEANINIT_LOG_FORMAT"
	EnvMetricsOut = "BEANINIT_METRICS_OUT"
	EnvParams     = "BEANINIT_PARAMS"
)

// Config holds the settings shared by the beaninit subcommands.
// Flags override the values FromEnv reads.
type Config struct {
	LogLevel   string
	LogFormat  string
	MetricsOut string
	ParamsFile string
}

// FromEnv returns the defaults, overridden by BEANINIT_* variables.
func FromEnv() Config {
	return Config{
		LogLevel:   getenv(EnvLogLevel, "info"),
		LogFormat:  getenv(EnvLogFormat, logging.FormatText),
		MetricsOut: getenv(EnvMetricsOut, ""),
		ParamsFile: getenv(EnvParams, ""),
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config: %s must be text or json, got %q", EnvLogFormat, c.LogFormat)
	}
	if c.MetricsOut != "" && !strings.HasSuffix(c.MetricsOut, ".prom") {
		return fmt.Errorf("config: %s must end in .prom, got %q", EnvMetricsOut, c.MetricsOut)
	}
	return nil
}

// LoadParams decodes the YAML file at path into out, which must be a pointer.
//
// Fields are matched through their mapstructure tags; unknown keys are errors
// and scalar types are converted leniently ("640" fills an int). Keys absent
// from the file keep the values already in out, while lists and maps given in
// the file replace them.
func LoadParams(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read params: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: parse params %s: %w", path, err)
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("config: params decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("config: decode params %s: %w", path, err)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
