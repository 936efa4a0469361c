// Package rzctl moves and clicks the mouse through the Razer rzctl driver.
//
// Open the configured backend and attach it before issuing actions:
//
//	c, ok := rzctl.Init()
//	if !ok {
//		return rzctl.ErrUninitialized
//	}
//	err := c.MoveTo(100, 200, time.Second, rzctl.WithTween(rzctl.EaseInOutQuad))
package rzctl

import (
	"log"

	"github.com/frudas24/rzctl/internal/app"
	"github.com/frudas24/rzctl/internal/config"
	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/motion"
	"github.com/frudas24/rzctl/internal/pointer"
)

// Version is the library release version.
const Version = app.Version

// Re-exported types.
type (
	Controller             = pointer.Controller
	Options                = pointer.Options
	Option                 = pointer.Option
	Axis                   = pointer.Axis
	Target                 = pointer.Target
	Driver                 = driver.Driver
	Point                  = driver.Point
	Size                   = driver.Size
	Button                 = driver.Button
	Tween                  = motion.Tween
	Config                 = config.Config
	InvalidArgumentError   = pointer.InvalidArgumentError
	DriverUnavailableError = driver.DriverUnavailableError
)

// Buttons.
const (
	Left      = driver.Left
	Middle    = driver.Middle
	Right     = driver.Right
	Primary   = driver.Primary
	Secondary = driver.Secondary
)

// Errors.
var (
	ErrUninitialized = pointer.ErrUninitialized
	ErrFailSafe      = pointer.ErrFailSafe
	ErrUnsupported   = driver.ErrUnsupported
)

// Tweens.
var (
	Linear        Tween = motion.Linear
	EaseInQuad    Tween = motion.EaseInQuad
	EaseOutQuad   Tween = motion.EaseOutQuad
	EaseInOutQuad Tween = motion.EaseInOutQuad
	EaseInOutSine Tween = motion.EaseInOutSine
)

// Option constructors.
var (
	WithTween           = pointer.WithTween
	WithButton          = pointer.WithButton
	WithClicks          = pointer.WithClicks
	WithInterval        = pointer.WithInterval
	WithDuration        = pointer.WithDuration
	WithoutPause        = pointer.WithoutPause
	WithoutButtonToggle = pointer.WithoutButtonToggle
)

// Axis and target constructors.
var (
	Unchanged = pointer.Unchanged
	Delta     = pointer.Delta
	Here      = pointer.Here
	At        = pointer.At
)

// DefaultOptions returns the stock pacing with the top-left fail-safe enabled.
func DefaultOptions() Options {
	return pointer.DefaultOptions()
}

// New returns a controller over drv; call Init before any action.
func New(drv Driver, opts Options) *Controller {
	return pointer.New(drv, opts)
}

// Open loads configuration and opens, but does not attach, the configured backend.
// The returned controller is usable even when the backend failed to open; Init then reports false.
func Open() (*Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	drv, err := app.OpenDriver(cfg)
	return pointer.New(drv, app.PointerOptions(cfg)), err
}

// Init opens the configured backend and attaches it, reporting success.
func Init() (*Controller, bool) {
	c, err := Open()
	if err != nil {
		log.Printf("init: %v", err)
	}
	if c == nil {
		c = pointer.New(nil, pointer.DefaultOptions())
	}
	return c, c.Init()
}
