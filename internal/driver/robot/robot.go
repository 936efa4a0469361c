// Package robot drives the pointer through robotgo.
package robot

import (
	"fmt"

	"github.com/frudas24/rzctl/internal/driver"
)

// Backend is the backend name used in configuration.
const Backend = "robotgo"

// Ensure Driver implements the interface.
var _ driver.Driver = (*Driver)(nil)

// buttonName maps a physical button to the robotgo key name.
func buttonName(b driver.Button) (string, error) {
	switch b {
	case driver.Left:
		return "left", nil
	case driver.Right:
		return "right", nil
	case driver.Middle:
		return "center", nil
	default:
		return "", fmt.Errorf("robotgo: unsupported button %q", string(b))
	}
}
