// Package testutil provides fakes shared by package tests.
package testutil

import (
	"sync"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
)

// Call records a single driver operation.
type Call struct {
	Name   string
	X      int
	Y      int
	Button driver.Button
}

// FakeDriver implements driver.Driver and records calls for tests.
type FakeDriver struct {
	mu      sync.Mutex
	Calls   []Call
	X       int
	Y       int
	W       int
	H       int
	Swapped bool
	InitErr error
	MoveErr error
}

// Ensure FakeDriver implements the interfaces.
var (
	_ driver.Driver        = (*FakeDriver)(nil)
	_ driver.ButtonSwapper = (*FakeDriver)(nil)
)

// NewFakeDriver returns a 1920x1080 fake with the cursor at (x, y).
func NewFakeDriver(x, y int) *FakeDriver {
	return &FakeDriver{X: x, Y: y, W: 1920, H: 1080}
}

// Init records initialization and returns InitErr.
func (f *FakeDriver) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Init"})
	return f.InitErr
}

// Size records a screen size query.
func (f *FakeDriver) Size() (driver.Size, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Size"})
	return driver.Size{Width: f.W, Height: f.H}, nil
}

// Position records a cursor query.
func (f *FakeDriver) Position() (driver.Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Position", X: f.X, Y: f.Y})
	return driver.Point{X: f.X, Y: f.Y}, nil
}

// MoveAbs records an absolute move and updates the cursor.
func (f *FakeDriver) MoveAbs(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.MoveErr != nil {
		return f.MoveErr
	}
	f.Calls = append(f.Calls, Call{Name: "MoveAbs", X: x, Y: y})
	f.X = x
	f.Y = y
	return nil
}

// Press records a button press at the current cursor.
func (f *FakeDriver) Press(b driver.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Press", X: f.X, Y: f.Y, Button: b})
	return nil
}

// Release records a button release at the current cursor.
func (f *FakeDriver) Release(b driver.Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Name: "Release", X: f.X, Y: f.Y, Button: b})
	return nil
}

// ButtonsSwapped reports the configured swap state.
func (f *FakeDriver) ButtonsSwapped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Swapped
}

// Recorded returns a copy of the calls recorded so far.
func (f *FakeDriver) Recorded() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.Calls))
	copy(out, f.Calls)
	return out
}

// Named returns the recorded calls matching any of names, in order.
func (f *FakeDriver) Named(names ...string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		for _, n := range names {
			if c.Name == n {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// FakeSleeper records requested sleeps without blocking.
type FakeSleeper struct {
	Sleeps []time.Duration
}

// Sleep records d.
func (s *FakeSleeper) Sleep(d time.Duration) {
	s.Sleeps = append(s.Sleeps, d)
}

// Total sums all recorded sleeps.
func (s *FakeSleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Sleeps {
		total += d
	}
	return total
}
