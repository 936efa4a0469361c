// Package control serves pointer actions over a websocket.
package control

import (
	"fmt"
	"time"

	"github.com/frudas24/rzctl/internal/motion"
	"github.com/frudas24/rzctl/internal/pointer"
)

// Message types accepted by the control server.
const (
	TypeMoveTo       = "moveTo"
	TypeMove         = "move"
	TypeDragTo       = "dragTo"
	TypeDrag         = "drag"
	TypeClick        = "click"
	TypeDown         = "down"
	TypeUp           = "up"
	TypePosition     = "position"
	TypeSize         = "size"
	TypeInputEnabled = "inputEnabled"
)

// Message is a control websocket payload.
// Nil coordinates mean "keep the current value" and nil offsets mean "unchanged".
type Message struct {
	T          string `json:"t"`
	ID         int    `json:"id,omitempty"`
	X          *int   `json:"x,omitempty"`
	Y          *int   `json:"y,omitempty"`
	DX         *int   `json:"dx,omitempty"`
	DY         *int   `json:"dy,omitempty"`
	DurationMs int    `json:"durationMs,omitempty"`
	Tween      string `json:"tween,omitempty"`
	Button     string `json:"button,omitempty"`
	Clicks     int    `json:"clicks,omitempty"`
	IntervalMs int    `json:"intervalMs,omitempty"`
	Enabled    *bool  `json:"enabled,omitempty"`
}

// Reply answers a single Message.
type Reply struct {
	T     string `json:"t"`
	ID    int    `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	W     int    `json:"w,omitempty"`
	H     int    `json:"h,omitempty"`
}

// duration returns the requested motion duration.
func (m Message) duration() (time.Duration, error) {
	if m.DurationMs < 0 {
		return 0, fmt.Errorf("durationMs must be >= 0")
	}
	return time.Duration(m.DurationMs) * time.Millisecond, nil
}

// axes converts the optional offsets into pointer axes.
func (m Message) axes() (pointer.Axis, pointer.Axis) {
	return axis(m.DX), axis(m.DY)
}

// hasPoint reports whether any absolute coordinate was given.
func (m Message) hasPoint() bool {
	return m.X != nil || m.Y != nil
}

// options converts the optional message fields into pointer options.
func (m Message) options() ([]pointer.Option, error) {
	var opts []pointer.Option
	if m.Tween != "" {
		tw, err := motion.ParseTween(m.Tween)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pointer.WithTween(tw))
	}
	if m.Button != "" {
		b, err := pointer.ParseButton(m.Button)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pointer.WithButton(b))
	}
	if m.Clicks != 0 {
		opts = append(opts, pointer.WithClicks(m.Clicks))
	}
	if m.IntervalMs != 0 {
		opts = append(opts, pointer.WithInterval(time.Duration(m.IntervalMs)*time.Millisecond))
	}
	return opts, nil
}

// axis maps a nil offset to Unchanged.
func axis(v *int) pointer.Axis {
	if v == nil {
		return pointer.Unchanged()
	}
	return pointer.Delta(*v)
}

// valueOr dereferences v or returns def.
func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
