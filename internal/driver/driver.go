// Package driver defines the adapter between pointer actions and an OS-level input backend.
package driver

import (
	"errors"
	"fmt"
)

// ErrUnsupported indicates the backend is not available on this platform or build.
var ErrUnsupported = errors.New("driver backend is not supported on this platform")

// Point is a screen coordinate with a top-left origin.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size describes the primary display in pixels.
type Size struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Contains reports whether p lies on a display of size s.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Clamp bounds p to the visible area of s.
func (s Size) Clamp(p Point) Point {
	if s.Width <= 0 || s.Height <= 0 {
		return p
	}
	p.X = clampInt(p.X, 0, s.Width-1)
	p.Y = clampInt(p.Y, 0, s.Height-1)
	return p
}

// Button identifies a mouse button.
type Button string

const (
	// Left is the physical left button.
	Left Button = "left"
	// Middle is the middle button or wheel click.
	Middle Button = "middle"
	// Right is the physical right button.
	Right Button = "right"
	// Primary is the left button unless the OS swapped buttons.
	Primary Button = "primary"
	// Secondary is the right button unless the OS swapped buttons.
	Secondary Button = "secondary"
)

// Physical reports whether b names a physical button rather than an alias.
func (b Button) Physical() bool {
	switch b {
	case Left, Middle, Right:
		return true
	default:
		return false
	}
}

// Driver performs the OS-level pointer operations.
type Driver interface {
	Init() error
	Size() (Size, error)
	Position() (Point, error)
	MoveAbs(x, y int) error
	Press(b Button) error
	Release(b Button) error
}

// ButtonSwapper is implemented by drivers that can detect left-handed button layouts.
type ButtonSwapper interface {
	ButtonsSwapped() bool
}

// DriverUnavailableError reports a backend that could not be loaded.
type DriverUnavailableError struct {
	Backend string
	Path    string
	Err     error
}

// Error implements error.
func (e *DriverUnavailableError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("driver %s unavailable (%s): %v", e.Backend, e.Path, e.Err)
	}
	return fmt.Sprintf("driver %s unavailable: %v", e.Backend, e.Err)
}

// Unwrap returns the underlying load error.
func (e *DriverUnavailableError) Unwrap() error {
	return e.Err
}

// clampInt bounds v to [lo..hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
