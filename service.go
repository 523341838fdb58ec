package uuid4

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/viant/uuid4/model"
	"github.com/viant/uuid4/service/generator"
	"github.com/viant/uuid4/service/requestid"
	"github.com/viant/uuid4/service/validator"
	"github.com/viant/uuid4/stats"
	"github.com/viant/uuid4/tracing"
)

// Service bundles a generator, a validation strategy, counters, logging and
// tracing behind one configurable façade.
type Service struct {
	config     *Config
	reader     io.Reader
	generator  *generator.Generator
	matcher    validator.Matcher
	stats      *stats.Stats
	logger     *logrus.Logger
	tracingSet bool
	tracingErr error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.logger == nil {
		s.logger = logrus.New()
		if level, err := logrus.ParseLevel(s.config.Log.Level); err == nil {
			s.logger.SetLevel(level)
		}
	}
	s.generator = generator.New(generator.WithReader(s.reader))
	if err := s.initMatcher(); err != nil {
		return err
	}
	return s.initTracing()
}

func (s *Service) initMatcher() error {
	if s.matcher != nil {
		return nil
	}
	matcher, err := validator.NewMatcher(s.config.Validation.Strategy)
	if err != nil {
		s.matcher = validator.Positional
		return err
	}
	s.matcher = matcher
	return nil
}

func (s *Service) initTracing() error {
	if !s.tracingSet && s.config.Tracing.Enabled {
		tc := s.config.Tracing
		s.tracingErr = tracing.Init(tc.ServiceName, tc.ServiceVersion, tc.OutputFile)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to initialise tracing: %w", s.tracingErr)
	}
	return nil
}

func (s *Service) entry() *logrus.Entry {
	return s.logger.WithField("component", "uuid4")
}

// Generate returns a new identifier. Entropy failure is logged and re-raised
// as a panic.
func (s *Service) Generate() string {
	id, err := s.generator.NewIdentifier()
	if err != nil {
		s.entry().WithError(err).Error("identifier generation failed")
		panic(err)
	}
	s.stats.Update(stats.Delta{Generated: 1})
	return id.String()
}

// GenerateBatch returns n new identifiers; n must be within 1..Generator.MaxBatch.
func (s *Service) GenerateBatch(ctx context.Context, n int) (ids []string, err error) {
	_, span := tracing.StartSpan(ctx, "uuid4.GenerateBatch")
	span.WithInt("count", n)
	defer func() { tracing.EndSpan(span, err) }()

	if limit := s.config.Generator.MaxBatch; n <= 0 || n > limit {
		return nil, fmt.Errorf("batch size %d out of range 1..%d", n, limit)
	}
	ids = make([]string, n)
	for i := range ids {
		id, err := s.generator.NewIdentifier()
		if err != nil {
			s.entry().WithError(err).Error("identifier generation failed")
			panic(err)
		}
		ids[i] = id.String()
	}
	s.stats.Update(stats.Delta{Generated: n})
	s.entry().WithField("count", n).Debug("generated identifier batch")
	return ids, nil
}

// IsValid reports whether id is valid according to the configured strategy.
func (s *Service) IsValid(id string) bool {
	ok := s.matcher.Match(id)
	if ok {
		s.stats.Update(stats.Delta{Accepted: 1})
	} else {
		s.stats.Update(stats.Delta{Rejected: 1})
	}
	return ok
}

// Parse decodes id, reporting which group is malformed on failure.
func (s *Service) Parse(ctx context.Context, id string) (ret model.Identifier, err error) {
	_, span := tracing.StartSpan(ctx, "uuid4.Parse")
	defer func() { tracing.EndSpan(span, err) }()

	ret, err = validator.Parse(id)
	if err != nil {
		s.stats.Update(stats.Delta{Rejected: 1})
		return model.Nil, err
	}
	s.stats.Update(stats.Delta{Accepted: 1})
	return ret, nil
}

// Stats returns a snapshot of the service counters.
func (s *Service) Stats() stats.Snapshot {
	return s.stats.Snapshot()
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Middleware returns HTTP middleware tagging each request with an identifier
// issued and validated by this service. Options override the configured headers.
func (s *Service) Middleware(options ...requestid.Option) func(http.Handler) http.Handler {
	rc := s.config.RequestID
	base := []requestid.Option{
		requestid.WithHeaders(rc.Headers...),
		requestid.WithResponseHeader(rc.ResponseHeader),
		requestid.WithGenerator(s.Generate),
		requestid.WithValidator(s.IsValid),
		requestid.WithLogger(s.logger.WithField("component", "requestid")),
	}
	return requestid.New(append(base, options...)...)
}

// New creates a Service. Configuration problems are logged and the affected
// component falls back to its default; use NewFromConfig to surface them.
func New(options ...Option) *Service {
	ret := &Service{stats: stats.New()}
	if err := ret.init(options); err != nil {
		ret.entry().WithError(err).Warn("service initialised with defaults")
	}
	return ret
}

// NewFromConfig validates cfg and creates a Service.
func NewFromConfig(cfg *Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ret := &Service{stats: stats.New()}
	if err := ret.init(append([]Option{WithConfig(cfg)}, options...)); err != nil {
		return nil, err
	}
	ret.entry().WithField("strategy", cfg.Validation.Strategy).Info("identifier service ready")
	return ret, nil
}
