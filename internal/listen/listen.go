// Package listen reports global mouse presses, used to pick coordinates.
package listen

import (
	"errors"
	"fmt"

	"github.com/frudas24/rzctl/internal/driver"
)

// ErrBusy indicates another listener is already running.
var ErrBusy = errors.New("listen: hook already running")

// Click is one observed mouse-down event.
type Click struct {
	Button driver.Button `json:"button"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Clicks int           `json:"clicks"`
}

// String formats the click for terminal output.
func (c Click) String() string {
	return fmt.Sprintf("%s x=%d y=%d clicks=%d", c.Button, c.X, c.Y, c.Clicks)
}

// buttonFromCode maps a hook button code to a physical button using names.
func buttonFromCode(code uint16, names map[string]uint16) (driver.Button, bool) {
	switch code {
	case names["left"]:
		return driver.Left, true
	case names["right"]:
		return driver.Right, true
	case names["center"]:
		return driver.Middle, true
	default:
		return "", false
	}
}
