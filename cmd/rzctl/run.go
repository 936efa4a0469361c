package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/frudas24/rzctl/internal/app"
	"github.com/frudas24/rzctl/internal/config"
	"github.com/frudas24/rzctl/internal/motion"
	"github.com/frudas24/rzctl/internal/pointer"
)

// usage lists the subcommands.
const usage = `usage: rzctl [-debug] [-backend name] <command> [flags] [args]

commands:
  info              print platform, version and resolution
  position          print the cursor position
  size              print the primary display size
  monitors          list displays
  moveto X Y        move to an absolute position
  move DX DY        move by an offset ("_" keeps an axis, negatives allowed)
  dragto X Y        drag to an absolute position
  drag DX DY        drag by an offset ("_" keeps an axis, negatives allowed)
  click [X Y]       click at a position or at the cursor
  serve             run the websocket control server
  listen            print mouse presses until interrupted`

// errUsage reports bad command-line input.
var errUsage = errors.New("invalid usage")

// globalFlags holds options shared by every subcommand.
type globalFlags struct {
	debug   bool
	backend string
}

// run parses args and dispatches a subcommand.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rzctl", flag.ContinueOnError)
	fs.SetOutput(out)
	var g globalFlags
	fs.BoolVar(&g.debug, "debug", false, "Enable verbose debug logging")
	fs.StringVar(&g.backend, "backend", "", "Override the driver backend (rzctl, robotgo)")
	fs.Usage = func() { fmt.Fprintln(out, usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	pointer.SetDebugLogging(g.debug)
	if g.debug {
		log.Printf("debug: enabled")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if g.backend != "" {
		cfg.Backend = strings.ToLower(g.backend)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	name, cmdArgs := rest[0], rest[1:]
	switch name {
	case "info":
		return runInfo(cfg, out)
	case "position":
		return runPosition(cfg, out)
	case "size":
		return runSize(cfg, out)
	case "monitors":
		return runMonitors(out)
	case "moveto", "move", "dragto", "drag", "click":
		return runAction(cfg, name, cmdArgs, out)
	case "serve":
		return runServe(cfg)
	case "listen":
		return runListen(out)
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

// openApp opens the configured backend and initializes it.
func openApp(cfg config.Config) (*app.App, error) {
	drv, err := app.OpenDriver(cfg)
	if err != nil {
		return nil, err
	}
	a := app.New(cfg, drv, app.PointerOptions(cfg))
	if err := a.Start(); err != nil {
		return nil, err
	}
	return a, nil
}

// actionFlags holds the flags of the pointer action subcommands.
type actionFlags struct {
	duration time.Duration
	tween    string
	button   string
	clicks   int
	interval time.Duration
}

// newActionFlagSet returns a FlagSet bound to f.
func newActionFlagSet(name string, f *actionFlags, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.DurationVar(&f.duration, "duration", 0, "Motion duration, e.g. 500ms")
	fs.StringVar(&f.tween, "tween", "linear", "Easing: "+strings.Join(motion.TweenNames(), ", "))
	fs.StringVar(&f.button, "button", "primary", "Button: left, right, middle, primary, secondary")
	fs.IntVar(&f.clicks, "clicks", 1, "Number of clicks")
	fs.DurationVar(&f.interval, "interval", 0, "Delay between clicks")
	return fs
}

// parseActionArgs parses fs from args and returns the positional arguments.
// Integers such as -10 are positional rather than flags, and "--" ends flag parsing.
func parseActionArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" || isInt(arg) {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if fl := fs.Lookup(name); fl != nil && !isBoolFlag(fl) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}
	return append(fs.Args(), positional...), nil
}

// isInt reports whether s parses as a base-10 integer.
func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// isBoolFlag reports whether fl takes no value.
func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// options converts the flags into pointer options.
func (f actionFlags) options() ([]pointer.Option, error) {
	tw, err := motion.ParseTween(f.tween)
	if err != nil {
		return nil, err
	}
	b, err := pointer.ParseButton(f.button)
	if err != nil {
		return nil, err
	}
	return []pointer.Option{
		pointer.WithTween(tw),
		pointer.WithButton(b),
		pointer.WithClicks(f.clicks),
		pointer.WithInterval(f.interval),
		pointer.WithDuration(f.duration),
	}, nil
}

// parseCoords parses exactly two integer arguments.
func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 coordinates, got %d", errUsage, len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: x: %v", errUsage, err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: y: %v", errUsage, err)
	}
	return x, y, nil
}

// parseAxes parses two offsets where "_" leaves an axis unchanged.
func parseAxes(args []string) (pointer.Axis, pointer.Axis, error) {
	if len(args) != 2 {
		return pointer.Axis{}, pointer.Axis{}, fmt.Errorf("%w: expected 2 offsets, got %d", errUsage, len(args))
	}
	axes := make([]pointer.Axis, 2)
	for i, raw := range args {
		if raw == "_" {
			axes[i] = pointer.Unchanged()
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return pointer.Axis{}, pointer.Axis{}, fmt.Errorf("%w: offset %q: %v", errUsage, raw, err)
		}
		axes[i] = pointer.Delta(v)
	}
	return axes[0], axes[1], nil
}
