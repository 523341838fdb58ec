package idgen

import "github.com/viant/uuid4/service/generator"

// NewFunc produces the next identifier. Override in tests for determinism.
var NewFunc = generator.Generate

// New returns the next identifier from NewFunc.
func New() string { return NewFunc() }

// Sequence replaces NewFunc with one that cycles over ids and returns a
// function restoring the previous generator.
func Sequence(ids ...string) (restore func()) {
	previous := NewFunc
	next := 0
	NewFunc = func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
	return func() { NewFunc = previous }
}
