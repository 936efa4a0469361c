package pointer

import "sync/atomic"

// debugMotion controls whether per-waypoint logs are emitted.
var debugMotion atomic.Bool

// SetDebugLogging enables/disables verbose motion logs.
func SetDebugLogging(enabled bool) {
	debugMotion.Store(enabled)
}

// debugEnabled reports whether motion debug logs are enabled.
func debugEnabled() bool {
	return debugMotion.Load()
}
