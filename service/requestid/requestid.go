// Package requestid tags HTTP requests with a version 4 identifier. A valid
// inbound id is propagated; anything else is replaced by a fresh one.
package requestid

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/viant/uuid4/internal/idgen"
	"github.com/viant/uuid4/service/validator"
)

const (
	// HeaderRequestID is the default response header.
	HeaderRequestID = "X-Request-ID"
	// HeaderCorrelationID is also inspected for inbound ids by default.
	HeaderCorrelationID = "X-Correlation-ID"
)

type contextKey struct{}

type middleware struct {
	headers        []string
	responseHeader string
	generate       func() string
	valid          func(string) bool
	logger         *logrus.Entry
}

func (m *middleware) resolve(r *http.Request) string {
	for _, header := range m.headers {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		if m.valid(value) {
			return value
		}
		m.logger.WithFields(logrus.Fields{"header": header, "value": value}).Debug("ignoring invalid inbound request id")
	}
	return m.generate()
}

// New returns middleware that stores the request id in the request context and
// echoes it in the response header.
func New(options ...Option) func(http.Handler) http.Handler {
	m := &middleware{
		headers:        []string{HeaderRequestID, HeaderCorrelationID},
		responseHeader: HeaderRequestID,
		generate:       idgen.New,
		valid:          validator.IsValid,
		logger:         logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(m)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := m.resolve(r)
			w.Header().Set(m.responseHeader, id)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
		})
	}
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request id stored in ctx.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok
}
