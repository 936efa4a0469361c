// Package pointer exposes mouse actions on top of a driver backend.
package pointer

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/motion"
)

const (
	defaultSteps           = 100
	defaultMinimumDuration = 100 * time.Millisecond
	defaultMinimumSleep    = 10 * time.Millisecond
	defaultPause           = 100 * time.Millisecond
	defaultClickSettle     = 7 * time.Millisecond
)

// Options tunes the pacing and safety checks of a Controller.
type Options struct {
	// Steps is the number of interpolation steps of a timed move.
	Steps int
	// MinimumDuration is the longest duration still treated as an instant move.
	MinimumDuration time.Duration
	// MinimumSleep is the shortest wait allowed between two waypoints.
	MinimumSleep time.Duration
	// Pause is slept after every public action.
	Pause time.Duration
	// ClickSettle is slept between reaching a click target and pressing.
	ClickSettle time.Duration
	// FailSafe aborts actions while the cursor sits on one of FailSafePoints.
	FailSafe       bool
	FailSafePoints []driver.Point
	// Sleeper paces timed moves; nil uses the wall clock.
	Sleeper motion.Sleeper
}

// DefaultOptions returns the stock pacing with the top-left fail-safe enabled.
func DefaultOptions() Options {
	return Options{
		Steps:           defaultSteps,
		MinimumDuration: defaultMinimumDuration,
		MinimumSleep:    defaultMinimumSleep,
		Pause:           defaultPause,
		ClickSettle:     defaultClickSettle,
		FailSafe:        true,
		FailSafePoints:  []driver.Point{{X: 0, Y: 0}},
	}
}

// Controller runs synchronous mouse actions against a driver.
// Actions on one Controller must not be issued concurrently.
type Controller struct {
	drv         driver.Driver
	opts        Options
	initialized atomic.Bool
}

// New returns a controller for drv. drv may be nil, in which case Init fails.
func New(drv driver.Driver, opts Options) *Controller {
	if opts.Sleeper == nil {
		opts.Sleeper = motion.SystemSleeper{}
	}
	if opts.Steps < 1 {
		opts.Steps = defaultSteps
	}
	opts.FailSafePoints = append([]driver.Point(nil), opts.FailSafePoints...)
	return &Controller{drv: drv, opts: opts}
}

// Init attaches the driver. Failures are logged and reported as false.
func (c *Controller) Init() bool {
	if c.initialized.Load() {
		return true
	}
	if c.drv == nil {
		log.Printf("init: no driver backend available")
		return false
	}
	if err := c.drv.Init(); err != nil {
		log.Printf("init: driver init failed: %v", err)
		return false
	}
	c.initialized.Store(true)
	return true
}

// Initialized reports whether Init succeeded.
func (c *Controller) Initialized() bool {
	return c.initialized.Load()
}

// Options returns the controller settings.
func (c *Controller) Options() Options {
	opts := c.opts
	opts.FailSafePoints = append([]driver.Point(nil), c.opts.FailSafePoints...)
	return opts
}

// Size returns the primary display size.
func (c *Controller) Size() (driver.Size, error) {
	if err := c.ready(); err != nil {
		return driver.Size{}, err
	}
	return c.drv.Size()
}

// Position returns the current cursor position.
func (c *Controller) Position() (driver.Point, error) {
	if err := c.ready(); err != nil {
		return driver.Point{}, err
	}
	return c.drv.Position()
}

// OnScreen reports whether (x, y) lies on the primary display.
func (c *Controller) OnScreen(x, y int) (bool, error) {
	size, err := c.Size()
	if err != nil {
		return false, err
	}
	return size.Contains(driver.Point{X: x, Y: y}), nil
}

// ready fails when Init has not succeeded.
func (c *Controller) ready() error {
	if !c.initialized.Load() {
		return ErrUninitialized
	}
	return nil
}

// failSafeCheck aborts when the cursor sits on a fail-safe point.
func (c *Controller) failSafeCheck() error {
	if !c.opts.FailSafe || len(c.opts.FailSafePoints) == 0 {
		return nil
	}
	pos, err := c.drv.Position()
	if err != nil {
		return err
	}
	if c.isFailSafePoint(pos) {
		return ErrFailSafe
	}
	return nil
}

// isFailSafePoint reports whether p is one of the configured fail-safe points.
func (c *Controller) isFailSafePoint(p driver.Point) bool {
	for _, fp := range c.opts.FailSafePoints {
		if fp == p {
			return true
		}
	}
	return false
}

// sleep waits d on the configured sleeper.
func (c *Controller) sleep(d time.Duration) {
	if d > 0 {
		c.opts.Sleeper.Sleep(d)
	}
}
