// Package app wires the driver backend, pointer controller and control server together.
package app

import (
	"errors"
	"fmt"

	"github.com/frudas24/rzctl/internal/config"
	"github.com/frudas24/rzctl/internal/control"
	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/driver/robot"
	"github.com/frudas24/rzctl/internal/driver/rzdll"
	"github.com/frudas24/rzctl/internal/pointer"
	"github.com/frudas24/rzctl/internal/session"
)

// Version is the rzctl release version.
const Version = "0.1.1"

// ErrInitFailed indicates the backend could not attach to the device.
var ErrInitFailed = errors.New("driver init failed")

// App coordinates the pointer controller, session state and control server.
type App struct {
	cfg     config.Config
	pointer *pointer.Controller
	session *session.Session
	control *control.Server
}

// OpenDriver opens the backend named by cfg.Backend.
func OpenDriver(cfg config.Config) (driver.Driver, error) {
	switch cfg.Backend {
	case rzdll.Backend, "":
		d, err := rzdll.Open(cfg.DLLPath)
		if err != nil {
			return nil, err
		}
		return d, nil
	case robot.Backend:
		d, err := robot.Open()
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// PointerOptions converts configuration into controller options.
func PointerOptions(cfg config.Config) pointer.Options {
	return pointer.Options{
		Steps:           cfg.Steps,
		MinimumDuration: cfg.MinDuration(),
		MinimumSleep:    cfg.MinSleep(),
		Pause:           cfg.Pause(),
		ClickSettle:     cfg.ClickSettle(),
		FailSafe:        cfg.FailSafe,
		FailSafePoints:  cfg.Points(),
	}
}

// New creates an application around drv. drv may be nil when the backend failed to open.
func New(cfg config.Config, drv driver.Driver, opts pointer.Options) *App {
	ctrl := pointer.New(drv, opts)
	sess := session.New(cfg.ControlToken)
	return &App{
		cfg:     cfg,
		pointer: ctrl,
		session: sess,
		control: control.NewServer(sess, ctrl),
	}
}

// Start initializes the driver backend.
func (a *App) Start() error {
	if !a.pointer.Init() {
		return fmt.Errorf("%s: %w", a.cfg.Backend, ErrInitFailed)
	}
	return nil
}

// Pointer returns the pointer controller.
func (a *App) Pointer() *pointer.Controller {
	return a.pointer
}

// Session returns the control session.
func (a *App) Session() *session.Session {
	return a.session
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
