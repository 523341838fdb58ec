package uuid4

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/uuid4/service/meta"
	"github.com/viant/uuid4/service/requestid"
	"github.com/viant/uuid4/service/validator"
)

// Config is a serialisable representation of the service configuration. The
// zero value of a nested section inherits DefaultConfig values when loaded
// through LoadConfig.
type Config struct {
	Generator  GeneratorConfig  `json:"generator" yaml:"generator"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	RequestID  RequestIDConfig  `json:"requestId" yaml:"requestId"`
	Tracing    TracingConfig    `json:"tracing" yaml:"tracing"`
	Log        LogConfig        `json:"log" yaml:"log"`
}

type GeneratorConfig struct {
	MaxBatch int `json:"maxBatch" yaml:"maxBatch"`
}

type ValidationConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"`
}

type RequestIDConfig struct {
	Headers        []string `json:"headers" yaml:"headers"`
	ResponseHeader string   `json:"responseHeader" yaml:"responseHeader"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	OutputFile     string `json:"outputFile" yaml:"outputFile"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator:  GeneratorConfig{MaxBatch: 1000},
		Validation: ValidationConfig{Strategy: validator.StrategyPositional},
		RequestID: RequestIDConfig{
			Headers:        []string{requestid.HeaderRequestID, requestid.HeaderCorrelationID},
			ResponseHeader: requestid.HeaderRequestID,
		},
		Tracing: TracingConfig{ServiceName: "uuid4", ServiceVersion: "0.1.0"},
		Log:     LogConfig{Level: logrus.WarnLevel.String()},
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Generator.MaxBatch <= 0 {
		return fmt.Errorf("generator.maxBatch must be > 0")
	}
	if _, err := validator.NewMatcher(c.Validation.Strategy); err != nil {
		return fmt.Errorf("validation.strategy: %w", err)
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName must be set when tracing is enabled")
	}
	return nil
}

// LoadConfig reads a YAML configuration from URL (file://, mem://, embed://
// and any other afs scheme) on top of DefaultConfig and validates it.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	cfg := DefaultConfig()
	if err := meta.New(afs.New(), options...).Load(ctx, URL, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return cfg, nil
}
