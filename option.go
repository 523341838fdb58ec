package uuid4

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/viant/uuid4/service/validator"
	"github.com/viant/uuid4/stats"
	"github.com/viant/uuid4/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps DefaultConfig.
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithReader sets the entropy source used by the service generator.
func WithReader(reader io.Reader) Option {
	return func(s *Service) { s.reader = reader }
}

// WithMatcher overrides the validation strategy selected in the config.
func WithMatcher(matcher validator.Matcher) Option {
	return func(s *Service) { s.matcher = matcher }
}

// WithLogger sets the logger; its level is left untouched.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithStatsListener registers a callback invoked after every counter update.
func WithStatsListener(fn func(stats.Snapshot)) Option {
	return func(s *Service) { s.stats.OnChange(fn) }
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter, or a
// file exporter when outputFile is set. The first successful initialisation
// wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
		s.tracingSet = true
	}
}

// WithTracingExporter configures OpenTelemetry tracing with a custom exporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
		s.tracingSet = true
	}
}
