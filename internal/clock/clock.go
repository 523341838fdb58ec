package clock

import "time"

// NowFunc returns the current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns NowFunc() in UTC.
func Now() time.Time { return NowFunc().UTC() }

// Freeze pins Now to t and returns a function restoring the previous clock.
func Freeze(t time.Time) (restore func()) {
	previous := NowFunc
	NowFunc = func() time.Time { return t }
	return func() { NowFunc = previous }
}
