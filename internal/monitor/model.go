// Package monitor describes display geometry and enumeration.
package monitor

import "fmt"

// Monitor describes a display and its bounds in virtual-desktop coordinates.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Primary bool `json:"primary"`
}

// String formats the monitor for the CLI listing.
func (m Monitor) String() string {
	mark := ""
	if m.Primary {
		mark = " primary"
	}
	return fmt.Sprintf("#%d %dx%d at (%d,%d)%s", m.Index, m.W, m.H, m.X, m.Y, mark)
}

// Contains reports whether the virtual-desktop point lies on m.
func (m Monitor) Contains(x, y int) bool {
	return x >= m.X && y >= m.Y && x < m.X+m.W && y < m.Y+m.H
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor, falling back to the first entry.
func Primary(list []Monitor) (Monitor, bool) {
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Monitor{}, false
}
