package requestid

import "github.com/sirupsen/logrus"

// Option customises the middleware.
type Option func(m *middleware)

// WithHeaders sets the inbound headers inspected, in order.
func WithHeaders(headers ...string) Option {
	return func(m *middleware) {
		if len(headers) > 0 {
			m.headers = headers
		}
	}
}

// WithResponseHeader sets the header the id is echoed in.
func WithResponseHeader(name string) Option {
	return func(m *middleware) {
		if name != "" {
			m.responseHeader = name
		}
	}
}

// WithGenerator sets the identifier source.
func WithGenerator(fn func() string) Option {
	return func(m *middleware) {
		if fn != nil {
			m.generate = fn
		}
	}
}

// WithValidator sets the predicate an inbound id must satisfy to be reused.
func WithValidator(fn func(string) bool) Option {
	return func(m *middleware) {
		if fn != nil {
			m.valid = fn
		}
	}
}

// WithLogger sets the logger used for rejected inbound ids.
func WithLogger(logger *logrus.Entry) Option {
	return func(m *middleware) {
		if logger != nil {
			m.logger = logger
		}
	}
}
