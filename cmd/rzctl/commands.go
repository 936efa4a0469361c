package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/frudas24/rzctl/internal/app"
	"github.com/frudas24/rzctl/internal/config"
	"github.com/frudas24/rzctl/internal/listen"
	"github.com/frudas24/rzctl/internal/monitor"
	"github.com/frudas24/rzctl/internal/pointer"
)

// runInfo prints host information; a missing backend only blanks the resolution.
func runInfo(cfg config.Config, out io.Writer) error {
	var sizes app.SizeQuerier
	if a, err := openApp(cfg); err != nil {
		log.Printf("info: backend unavailable: %v", err)
	} else {
		sizes = a.Pointer()
	}
	fmt.Fprintln(out, app.GetInfo(sizes, cfg.Backend, time.Now()))
	return nil
}

// runPosition prints the cursor position.
func runPosition(cfg config.Config, out io.Writer) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	pos, err := a.Pointer().Position()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d %d\n", pos.X, pos.Y)
	return nil
}

// runSize prints the primary display size.
func runSize(cfg config.Config, out io.Writer) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	size, err := a.Pointer().Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d %d\n", size.Width, size.Height)
	return nil
}

// runMonitors lists displays.
func runMonitors(out io.Writer) error {
	list, err := monitor.ListMonitors()
	if err != nil {
		return err
	}
	for _, m := range list {
		fmt.Fprintln(out, m)
	}
	return nil
}

// runAction executes one pointer action subcommand.
func runAction(cfg config.Config, name string, args []string, out io.Writer) error {
	act, err := prepareAction(name, args, out)
	if err != nil {
		return err
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	ctrl := a.Pointer()
	if err := act(ctrl); err != nil {
		return err
	}
	pos, err := ctrl.Position()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d %d\n", pos.X, pos.Y)
	return nil
}

// prepareAction parses flags and positional arguments into a ready action.
func prepareAction(name string, args []string, out io.Writer) (func(*pointer.Controller) error, error) {
	var f actionFlags
	fs := newActionFlagSet(name, &f, out)
	positional, err := parseActionArgs(fs, args)
	if err != nil {
		return nil, err
	}
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	act, err := buildAction(name, positional)
	if err != nil {
		return nil, err
	}
	return func(c *pointer.Controller) error {
		return act(c, f.duration, opts)
	}, nil
}

// action runs a parsed subcommand against a controller.
type action func(c *pointer.Controller, d time.Duration, opts []pointer.Option) error

// buildAction parses the positional arguments of name.
func buildAction(name string, args []string) (action, error) {
	switch name {
	case "moveto", "dragto":
		x, y, err := parseCoords(args)
		if err != nil {
			return nil, err
		}
		if name == "dragto" {
			return func(c *pointer.Controller, d time.Duration, opts []pointer.Option) error {
				return c.DragTo(x, y, d, opts...)
			}, nil
		}
		return func(c *pointer.Controller, d time.Duration, opts []pointer.Option) error {
			return c.MoveTo(x, y, d, opts...)
		}, nil
	case "move", "drag":
		dx, dy, err := parseAxes(args)
		if err != nil {
			return nil, err
		}
		if name == "drag" {
			return func(c *pointer.Controller, d time.Duration, opts []pointer.Option) error {
				return c.Drag(dx, dy, d, opts...)
			}, nil
		}
		return func(c *pointer.Controller, d time.Duration, opts []pointer.Option) error {
			return c.Move(dx, dy, d, opts...)
		}, nil
	default:
		at := pointer.Here()
		if len(args) > 0 {
			x, y, err := parseCoords(args)
			if err != nil {
				return nil, err
			}
			at = pointer.At(x, y)
		}
		return func(c *pointer.Controller, _ time.Duration, opts []pointer.Option) error {
			return c.Click(at, opts...)
		}, nil
	}
}

// runServe runs the control server until interrupted.
func runServe(cfg config.Config) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	logStartup(cfg)

	mux := http.NewServeMux()
	a.RegisterRoutes(mux)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// runListen prints mouse presses until interrupted.
func runListen(out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Printf("listen: press Ctrl+C to stop")
	err := listen.Run(ctx, func(c listen.Click) {
		fmt.Fprintln(out, c)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// logStartup prints the server configuration and a local URL helper.
func logStartup(cfg config.Config) {
	log.Printf("rzctl %s starting (backend %s)", app.Version, cfg.Backend)
	log.Printf("listen addr: %s", cfg.ListenAddr)
	host, port, err := net.SplitHostPort(cfg.ListenAddr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("control url: ws://%s/ws/control", net.JoinHostPort(host, port))
}
