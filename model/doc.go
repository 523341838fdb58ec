// Package model contains the value type of a random (version 4) identifier
// together with its text encoding and conversions to github.com/google/uuid.
package model
