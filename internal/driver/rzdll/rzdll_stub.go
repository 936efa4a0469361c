//go:build !windows

package rzdll

import "github.com/frudas24/rzctl/internal/driver"

// Driver is a placeholder on non-Windows platforms.
type Driver struct{}

// Open returns a DriverUnavailableError on non-Windows platforms.
func Open(path string) (*Driver, error) {
	if path == "" {
		path = DefaultPath
	}
	return nil, &driver.DriverUnavailableError{Backend: Backend, Path: path, Err: driver.ErrUnsupported}
}

// Init returns ErrUnsupported.
func (d *Driver) Init() error {
	return driver.ErrUnsupported
}

// Size returns ErrUnsupported.
func (d *Driver) Size() (driver.Size, error) {
	return driver.Size{}, driver.ErrUnsupported
}

// Position returns ErrUnsupported.
func (d *Driver) Position() (driver.Point, error) {
	return driver.Point{}, driver.ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (d *Driver) MoveAbs(x, y int) error {
	_ = x
	_ = y
	return driver.ErrUnsupported
}

// Press returns ErrUnsupported.
func (d *Driver) Press(b driver.Button) error {
	_ = b
	return driver.ErrUnsupported
}

// Release returns ErrUnsupported.
func (d *Driver) Release(b driver.Button) error {
	_ = b
	return driver.ErrUnsupported
}

// ButtonsSwapped always reports false.
func (d *Driver) ButtonsSwapped() bool {
	return false
}
