// Package tracing wires OpenTelemetry into the identifier service. Spans are
// opened only around context-aware Service calls; the package-level Generate
// and IsValid functions are never traced.
package tracing
