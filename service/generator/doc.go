// Package generator produces random (version 4) identifiers.
//
// The default source of entropy is crypto/rand; a Generator can be pointed at
// any io.Reader for fixtures. Entropy failure is treated as fatal by Generate,
// which panics with an error wrapping ErrEntropy. Callers that supply their own
// reader and want to handle failures use NewIdentifier instead.
//
//	id := generator.Generate() // "1b4e28ba-2fa1-4d2e-883f-0016d3cca427"
package generator
