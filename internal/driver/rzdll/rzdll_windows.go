//go:build windows

package rzdll

import (
	"errors"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// smSwapButton is the GetSystemMetrics index reporting swapped mouse buttons.
const smSwapButton = 23

// Driver injects pointer input through the rzctl DLL.
type Driver struct {
	path      string
	procInit  *windows.LazyProc
	procMove  *windows.LazyProc
	procClick *windows.LazyProc
}

// Open loads the DLL at path and resolves its exports.
func Open(path string) (*Driver, error) {
	if path == "" {
		path = DefaultPath
	}
	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, &driver.DriverUnavailableError{Backend: Backend, Path: path, Err: err}
	}
	d := &Driver{
		path:      path,
		procInit:  dll.NewProc("init"),
		procMove:  dll.NewProc("move"),
		procClick: dll.NewProc("click"),
	}
	for _, proc := range []*windows.LazyProc{d.procInit, d.procMove, d.procClick} {
		if err := proc.Find(); err != nil {
			return nil, &driver.DriverUnavailableError{Backend: Backend, Path: path, Err: err}
		}
	}
	return d, nil
}

// Init attaches the DLL to the Razer device.
func (d *Driver) Init() error {
	ok, _, _ := d.procInit.Call()
	if ok&0xff == 0 {
		return errors.New("rzctl: init returned false (is the Razer driver running?)")
	}
	return nil
}

// Size returns the primary display size.
func (d *Driver) Size() (driver.Size, error) {
	w := win.GetSystemMetrics(win.SM_CXSCREEN)
	h := win.GetSystemMetrics(win.SM_CYSCREEN)
	if w <= 0 || h <= 0 {
		return driver.Size{}, errors.New("rzctl: GetSystemMetrics returned an empty screen")
	}
	return driver.Size{Width: int(w), Height: int(h)}, nil
}

// Position returns the cursor position.
func (d *Driver) Position() (driver.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return driver.Point{}, windows.GetLastError()
	}
	return driver.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (d *Driver) MoveAbs(x, y int) error {
	size, err := d.Size()
	if err != nil {
		return err
	}
	ax, ay := toAbsolute(x, y, size)
	d.procMove.Call(uintptr(ax), uintptr(ay), 0)
	return nil
}

// Press presses a physical button.
func (d *Driver) Press(b driver.Button) error {
	down, _, err := buttonEvents(b)
	if err != nil {
		return err
	}
	d.procClick.Call(uintptr(down))
	return nil
}

// Release releases a physical button.
func (d *Driver) Release(b driver.Button) error {
	_, up, err := buttonEvents(b)
	if err != nil {
		return err
	}
	d.procClick.Call(uintptr(up))
	return nil
}

// ButtonsSwapped reports whether the user configured a left-handed layout.
func (d *Driver) ButtonsSwapped() bool {
	return win.GetSystemMetrics(smSwapButton) != 0
}
