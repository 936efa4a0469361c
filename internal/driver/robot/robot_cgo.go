//go:build cgo

package robot

import (
	"errors"
	"fmt"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/go-vgo/robotgo"
)

// toggle presses or releases a robotgo button; direction is "down" or "up".
var toggle = func(name, direction string) error {
	return robotgo.Toggle(name, direction)
}

// Driver injects pointer input through robotgo.
type Driver struct{}

// Open returns a robotgo driver.
func Open() (*Driver, error) {
	return &Driver{}, nil
}

// Init checks that robotgo can see a display.
func (d *Driver) Init() error {
	if _, err := d.Size(); err != nil {
		return err
	}
	return nil
}

// Size returns the main display size.
func (d *Driver) Size() (driver.Size, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return driver.Size{}, errors.New("robotgo: no display")
	}
	return driver.Size{Width: w, Height: h}, nil
}

// Position returns the cursor position.
func (d *Driver) Position() (driver.Point, error) {
	x, y := robotgo.Location()
	return driver.Point{X: x, Y: y}, nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (d *Driver) MoveAbs(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// Press presses a physical button.
func (d *Driver) Press(b driver.Button) error {
	name, err := buttonName(b)
	if err != nil {
		return err
	}
	if err := toggle(name, "down"); err != nil {
		return fmt.Errorf("robotgo: press %s: %w", name, err)
	}
	return nil
}

// Release releases a physical button.
func (d *Driver) Release(b driver.Button) error {
	name, err := buttonName(b)
	if err != nil {
		return err
	}
	if err := toggle(name, "up"); err != nil {
		return fmt.Errorf("robotgo: release %s: %w", name, err)
	}
	return nil
}
