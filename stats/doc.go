// Package stats keeps aggregated counters of issued and inspected identifiers
// for a Service. A Stats value is safe for concurrent use; observers can
// register a callback that receives a snapshot after every update.
package stats
