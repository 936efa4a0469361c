//go:build windows

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"errors"
	"fmt"
	"sort"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// ListMonitors returns the available displays, primary first, with 1-based indexes.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := windows.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", windows.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, errors.New("no monitors detected")
	}
	sort.SliceStable(state.list, func(i, j int) bool {
		return state.list[i].Primary && !state.list[j].Primary
	})
	for i := range state.list {
		state.list[i].Index = i + 1
	}
	return state.list, nil
}

// enumState accumulates monitors during enumeration.
type enumState struct {
	list []Monitor
}

// enumProc records one monitor and continues enumeration.
func (s *enumState) enumProc(hMonitor win.HMONITOR, _ win.HDC, _ *win.RECT, _ uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	r := info.RcMonitor
	s.list = append(s.list, Monitor{
		X:       int(r.Left),
		Y:       int(r.Top),
		W:       int(r.Right - r.Left),
		H:       int(r.Bottom - r.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
