package pointer

import (
	"strings"

	"github.com/frudas24/rzctl/internal/driver"
)

// ParseButton accepts left, middle, right, primary, secondary or the numbers 1, 2 and 3.
func ParseButton(name string) (driver.Button, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "primary":
		return driver.Primary, nil
	case "secondary":
		return driver.Secondary, nil
	case "left", "1":
		return driver.Left, nil
	case "middle", "2":
		return driver.Middle, nil
	case "right", "3":
		return driver.Right, nil
	default:
		return "", invalidArg("button", "%q must be one of left, middle, right, primary, secondary, 1, 2, 3", name)
	}
}

// resolveButton maps aliases to a physical button, honoring swapped layouts.
func (c *Controller) resolveButton(b driver.Button) (driver.Button, error) {
	if b == "" {
		b = driver.Primary
	}
	if b.Physical() {
		return b, nil
	}
	swapped := false
	if s, ok := c.drv.(driver.ButtonSwapper); ok {
		swapped = s.ButtonsSwapped()
	}
	switch b {
	case driver.Primary:
		if swapped {
			return driver.Right, nil
		}
		return driver.Left, nil
	case driver.Secondary:
		if swapped {
			return driver.Left, nil
		}
		return driver.Right, nil
	default:
		return "", invalidArg("button", "%q is not a mouse button", string(b))
	}
}
