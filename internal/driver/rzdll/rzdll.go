// Package rzdll drives the pointer through the Razer rzctl driver DLL.
package rzdll

import (
	"fmt"

	"github.com/frudas24/rzctl/internal/driver"
)

// Backend is the backend name used in configuration.
const Backend = "rzctl"

// DefaultPath is the DLL name resolved through the standard library search order.
const DefaultPath = "rzctl_dll.dll"

// Event codes accepted by the DLL click export.
const (
	evLeftDown   = 1
	evLeftUp     = 2
	evRightDown  = 4
	evRightUp    = 8
	evMiddleDown = 16
	evMiddleUp   = 32
)

// absoluteRange is the span of the driver's absolute coordinate space.
const absoluteRange = 65536

// Ensure Driver implements the interfaces.
var (
	_ driver.Driver        = (*Driver)(nil)
	_ driver.ButtonSwapper = (*Driver)(nil)
)

// buttonEvents returns the press and release codes for a physical button.
func buttonEvents(b driver.Button) (down, up uint32, err error) {
	switch b {
	case driver.Left:
		return evLeftDown, evLeftUp, nil
	case driver.Right:
		return evRightDown, evRightUp, nil
	case driver.Middle:
		return evMiddleDown, evMiddleUp, nil
	default:
		return 0, 0, fmt.Errorf("rzctl: unsupported button %q", string(b))
	}
}

// toAbsolute converts a screen coordinate to the driver's absolute range.
func toAbsolute(x, y int, size driver.Size) (int32, int32) {
	w, h := size.Width, size.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	ax := int64(absoluteRange)*int64(x)/int64(w) + 1
	ay := int64(absoluteRange)*int64(y)/int64(h) + 1
	return int32(ax), int32(ay)
}
