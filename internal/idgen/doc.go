// Package idgen is the single seam through which the façade and the request
// middleware obtain new identifiers, so tests can substitute a fixed sequence.
package idgen
