// Package meta loads YAML resources by URL through afs, expanding
// ${env.KEY} and ${env.KEY:-default} references before decoding.
package meta
