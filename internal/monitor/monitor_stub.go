//go:build !windows

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"fmt"

	"github.com/frudas24/rzctl/internal/driver"
)

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("ListMonitors: %w", driver.ErrUnsupported)
}
