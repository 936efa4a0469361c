//go:build cgo

package listen

import (
	"context"
	"errors"
	"sync/atomic"

	hook "github.com/robotn/gohook"
)

// running guards the process-wide hook.
var running atomic.Bool

// Run blocks and calls fn for each mouse press until ctx is done.
func Run(ctx context.Context, fn func(Click)) error {
	if fn == nil {
		return errors.New("listen: nil callback")
	}
	if !running.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer running.Store(false)

	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		b, ok := buttonFromCode(e.Button, hook.MouseMap)
		if !ok {
			return
		}
		fn(Click{Button: b, X: int(e.X), Y: int(e.Y), Clicks: int(e.Clicks)})
	})

	evChan := hook.Start()
	stopped := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			hook.End()
		case <-stopped:
		}
	}()
	<-hook.Process(evChan)
	close(stopped)
	return ctx.Err()
}
