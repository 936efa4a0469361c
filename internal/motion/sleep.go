package motion

import "time"

// Sleeper pauses the calling goroutine between waypoints.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SystemSleeper sleeps on the wall clock.
type SystemSleeper struct{}

// Sleep blocks for d.
func (SystemSleeper) Sleep(d time.Duration) {
	time.Sleep(d)
}
