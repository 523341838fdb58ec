package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/viant/uuid4/format"
	"github.com/viant/uuid4/model"
)

// ErrEntropy wraps any failure of the entropy source.
var ErrEntropy = errors.New("entropy source failed")

// Generator creates random version 4 identifiers. It is safe for concurrent use.
type Generator struct {
	reader io.Reader
	// guarded is set for caller supplied readers, which may not be safe for
	// concurrent use; crypto/rand.Reader is.
	guarded bool
	mux     sync.Mutex
}

// NewIdentifier reads 16 bytes of entropy and stamps the version and variant.
func (g *Generator) NewIdentifier() (model.Identifier, error) {
	var b [format.Size]byte
	if err := g.read(b[:]); err != nil {
		return model.Nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	format.Mark(&b)
	return b, nil
}

// Generate returns a new identifier in its canonical rendering. It panics when
// the entropy source fails.
func (g *Generator) Generate() string {
	id, err := g.NewIdentifier()
	if err != nil {
		panic(err)
	}
	return id.String()
}

func (g *Generator) read(b []byte) error {
	if g.guarded {
		g.mux.Lock()
		defer g.mux.Unlock()
	}
	_, err := io.ReadFull(g.reader, b)
	return err
}

// New creates a Generator.
func New(options ...Option) *Generator {
	ret := &Generator{reader: rand.Reader}
	for _, option := range options {
		option(ret)
	}
	return ret
}

var defaultGenerator = New()

// Generate returns a new identifier from the shared crypto/rand backed generator.
func Generate() string {
	return defaultGenerator.Generate()
}

// NewIdentifier returns a new identifier value from the shared generator.
func NewIdentifier() (model.Identifier, error) {
	return defaultGenerator.NewIdentifier()
}
