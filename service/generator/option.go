package generator

import "io"

// Option customises a Generator.
type Option func(g *Generator)

// WithReader sets the entropy source. A nil reader keeps crypto/rand.
func WithReader(reader io.Reader) Option {
	return func(g *Generator) {
		if reader != nil {
			g.reader = reader
			g.guarded = true
		}
	}
}
