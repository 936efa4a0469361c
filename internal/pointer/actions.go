package pointer

import (
	"log"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/motion"
)

// MoveTo moves the cursor to (x, y), clamped to the screen, over duration.
func (c *Controller) MoveTo(x, y int, duration time.Duration, opts ...Option) error {
	s := buildSettings(opts)
	if _, err := c.prepare(s, duration); err != nil {
		return err
	}
	if err := c.travel(driver.Point{X: x, Y: y}, duration, s.tween); err != nil {
		return err
	}
	c.pause(s)
	return nil
}

// Move moves the cursor relative to its current position. Two unchanged axes do nothing.
func (c *Controller) Move(dx, dy Axis, duration time.Duration, opts ...Option) error {
	s := buildSettings(opts)
	if _, err := c.prepare(s, duration); err != nil {
		return err
	}
	dest, ok, err := c.offsetTarget(dx, dy)
	if err != nil || !ok {
		return err
	}
	if err := c.travel(dest, duration, s.tween); err != nil {
		return err
	}
	c.pause(s)
	return nil
}

// DragTo holds the button down while moving to (x, y) over duration.
func (c *Controller) DragTo(x, y int, duration time.Duration, opts ...Option) error {
	s := buildSettings(opts)
	button, err := c.prepare(s, duration)
	if err != nil {
		return err
	}
	return c.drag(driver.Point{X: x, Y: y}, duration, button, s)
}

// Drag holds the button down while moving relative to the cursor. A zero offset does nothing.
func (c *Controller) Drag(dx, dy Axis, duration time.Duration, opts ...Option) error {
	s := buildSettings(opts)
	button, err := c.prepare(s, duration)
	if err != nil {
		return err
	}
	dest, ok, err := c.offsetTarget(dx, dy)
	if err != nil || !ok {
		return err
	}
	return c.drag(dest, duration, button, s)
}

// Click presses and releases a button at the target, moving there first.
func (c *Controller) Click(at Target, opts ...Option) error {
	s := buildSettings(opts)
	button, err := c.prepare(s, s.duration)
	if err != nil {
		return err
	}
	dest, err := c.resolveTarget(at)
	if err != nil {
		return err
	}
	if err := c.travel(dest, s.duration, s.tween); err != nil {
		return err
	}
	c.sleep(c.opts.ClickSettle)
	for i := 0; i < s.clicks; i++ {
		if err := c.failSafeCheck(); err != nil {
			return err
		}
		if err := c.drv.Press(button); err != nil {
			return err
		}
		if err := c.drv.Release(button); err != nil {
			return err
		}
		c.sleep(s.interval)
	}
	c.pause(s)
	return nil
}

// LeftClick clicks the left button.
func (c *Controller) LeftClick(at Target, opts ...Option) error {
	return c.Click(at, withButton(driver.Left, opts)...)
}

// RightClick clicks the right button.
func (c *Controller) RightClick(at Target, opts ...Option) error {
	return c.Click(at, withButton(driver.Right, opts)...)
}

// MiddleClick clicks the middle button.
func (c *Controller) MiddleClick(at Target, opts ...Option) error {
	return c.Click(at, withButton(driver.Middle, opts)...)
}

// DoubleClick clicks twice, with the left button unless WithButton says otherwise.
func (c *Controller) DoubleClick(at Target, opts ...Option) error {
	return c.Click(at, withFixedClicks(2, opts)...)
}

// TripleClick clicks three times, with the left button unless WithButton says otherwise.
func (c *Controller) TripleClick(at Target, opts ...Option) error {
	return c.Click(at, withFixedClicks(3, opts)...)
}

// MouseDown presses a button, moving to the target first when one is given.
func (c *Controller) MouseDown(at Target, opts ...Option) error {
	return c.toggleButton(at, opts, true)
}

// MouseUp releases a button, moving to the target first when one is given.
func (c *Controller) MouseUp(at Target, opts ...Option) error {
	return c.toggleButton(at, opts, false)
}

// toggleButton implements MouseDown and MouseUp.
func (c *Controller) toggleButton(at Target, opts []Option, down bool) error {
	s := buildSettings(opts)
	button, err := c.prepare(s, 0)
	if err != nil {
		return err
	}
	if dest, ok := at.Point(); ok {
		if err := c.travel(dest, 0, nil); err != nil {
			return err
		}
	}
	if down {
		err = c.drv.Press(button)
	} else {
		err = c.drv.Release(button)
	}
	if err != nil {
		return err
	}
	c.pause(s)
	return nil
}

// prepare validates an action and runs the fail-safe check before any movement.
func (c *Controller) prepare(s settings, duration time.Duration) (driver.Button, error) {
	if err := c.ready(); err != nil {
		return "", err
	}
	if duration < 0 || s.duration < 0 {
		return "", invalidArg("duration", "must not be negative")
	}
	if s.interval < 0 {
		return "", invalidArg("interval", "must not be negative")
	}
	if s.clicks < 1 {
		return "", invalidArg("clicks", "%d must be at least 1", s.clicks)
	}
	button, err := c.resolveButton(s.button)
	if err != nil {
		return "", err
	}
	if err := c.failSafeCheck(); err != nil {
		return "", err
	}
	return button, nil
}

// drag presses, travels and releases, releasing the button if the travel fails.
func (c *Controller) drag(dest driver.Point, duration time.Duration, button driver.Button, s settings) error {
	if s.toggle {
		if err := c.drv.Press(button); err != nil {
			return err
		}
	}
	if err := c.travel(dest, duration, s.tween); err != nil {
		if s.toggle {
			_ = c.drv.Release(button)
		}
		return err
	}
	if s.toggle {
		if err := c.drv.Release(button); err != nil {
			return err
		}
	}
	c.pause(s)
	return nil
}

// offsetTarget resolves a relative move; ok is false when both offsets are zero.
func (c *Controller) offsetTarget(dx, dy Axis) (driver.Point, bool, error) {
	ox, oy := dx.offset(), dy.offset()
	if ox == 0 && oy == 0 {
		return driver.Point{}, false, nil
	}
	pos, err := c.drv.Position()
	if err != nil {
		return driver.Point{}, false, err
	}
	return driver.Point{X: pos.X + ox, Y: pos.Y + oy}, true, nil
}

// resolveTarget returns the target point, defaulting to the cursor position.
func (c *Controller) resolveTarget(at Target) (driver.Point, error) {
	if p, ok := at.Point(); ok {
		return p, nil
	}
	return c.drv.Position()
}

// travel clamps dest and walks the planned waypoints, sleeping between writes.
func (c *Controller) travel(dest driver.Point, duration time.Duration, tween motion.Tween) error {
	start, err := c.drv.Position()
	if err != nil {
		return err
	}
	size, err := c.drv.Size()
	if err != nil {
		return err
	}
	dest = size.Clamp(dest)
	if duration <= c.opts.MinimumDuration {
		duration = 0
	}

	path := motion.Plan(motion.Request{
		Start:    start,
		End:      dest,
		Duration: duration,
		Steps:    motion.StepCount(duration, c.opts.Steps, c.opts.MinimumSleep),
		Tween:    tween,
	})
	for i, wp := range path {
		if !c.isFailSafePoint(wp.Point) {
			if err := c.failSafeCheck(); err != nil {
				return err
			}
		}
		if debugEnabled() {
			log.Printf("pointer: waypoint %d/%d at (%d,%d) delay=%s", i+1, len(path), wp.Point.X, wp.Point.Y, wp.Delay)
		}
		if err := c.drv.MoveAbs(wp.Point.X, wp.Point.Y); err != nil {
			return err
		}
		c.sleep(wp.Delay)
	}
	if !c.isFailSafePoint(dest) {
		return c.failSafeCheck()
	}
	return nil
}

// pause sleeps the post-action pause unless disabled for this call.
func (c *Controller) pause(s settings) {
	if s.pause {
		c.sleep(c.opts.Pause)
	}
}

// withFixedClicks defaults the button to left and pins the click count.
func withFixedClicks(n int, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+2)
	out = append(out, WithButton(driver.Left))
	out = append(out, opts...)
	return append(out, WithClicks(n))
}

// withButton pins the button after the caller's options.
func withButton(b driver.Button, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithButton(b))
}
