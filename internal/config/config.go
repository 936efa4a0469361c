// Package config loads rzctl configuration from defaults, YAML, .env and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/motion"
	"gopkg.in/yaml.v3"
)

const (
	defaultDataDir       = "./data"
	defaultBackend       = "rzctl"
	defaultDLLPath       = "rzctl_dll.dll"
	defaultSteps         = 100
	defaultMinDurationMs = 100
	defaultMinSleepMs    = 10
	defaultPauseMs       = 100
	defaultClickSettleMs = 7
	defaultFailSafe      = true
	defaultFailSafePts   = "0,0"
	defaultListenAddr    = "127.0.0.1:8788"
	configFileName       = "rzctl.yml"
)

// Backends lists the accepted backend names.
var Backends = []string{"rzctl", "robotgo"}

// Config holds runtime configuration values.
type Config struct {
	DataDir        string `yaml:"-"`
	Backend        string `yaml:"backend"`
	DLLPath        string `yaml:"dllPath"`
	Steps          int    `yaml:"steps"`
	MinDurationMs  int    `yaml:"minDurationMs"`
	MinSleepMs     int    `yaml:"minSleepMs"`
	PauseMs        int    `yaml:"pauseMs"`
	ClickSettleMs  int    `yaml:"clickSettleMs"`
	FailSafe       bool   `yaml:"failSafe"`
	FailSafePoints string `yaml:"failSafePoints"`
	ListenAddr     string `yaml:"listenAddr"`
	ControlToken   string `yaml:"controlToken"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:        defaultDataDir,
		Backend:        defaultBackend,
		DLLPath:        defaultDLLPath,
		Steps:          defaultSteps,
		MinDurationMs:  defaultMinDurationMs,
		MinSleepMs:     defaultMinSleepMs,
		PauseMs:        defaultPauseMs,
		ClickSettleMs:  defaultClickSettleMs,
		FailSafe:       defaultFailSafe,
		FailSafePoints: defaultFailSafePts,
		ListenAddr:     defaultListenAddr,
	}
}

// Load reads configuration using RZCTL_DATA_DIR or ./data.
func Load() (Config, error) {
	return LoadDir(envString("RZCTL_DATA_DIR", defaultDataDir))
}

// LoadDir reads configuration from dir/rzctl.yml, dir/.env and environment variables.
func LoadDir(dir string) (Config, error) {
	cfg := Default()
	cfg.DataDir = dir

	yamlPath := envString("RZCTL_CONFIG", filepath.Join(dir, configFileName))
	if err := loadYAMLFile(yamlPath, &cfg); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(filepath.Join(dir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.Backend = strings.ToLower(envString("RZCTL_BACKEND", cfg.Backend))
	cfg.DLLPath = envString("RZCTL_DLL_PATH", cfg.DLLPath)
	cfg.FailSafePoints = envString("RZCTL_FAILSAFE_POINTS", cfg.FailSafePoints)
	cfg.ListenAddr = envString("RZCTL_LISTEN_ADDR", cfg.ListenAddr)
	cfg.ControlToken = envString("RZCTL_CONTROL_TOKEN", cfg.ControlToken)
	cfg.FailSafe = envBool("RZCTL_FAILSAFE", cfg.FailSafe)

	ints := []struct {
		key string
		dst *int
	}{
		{"RZCTL_STEPS", &cfg.Steps},
		{"RZCTL_MIN_DURATION_MS", &cfg.MinDurationMs},
		{"RZCTL_MIN_SLEEP_MS", &cfg.MinSleepMs},
		{"RZCTL_PAUSE_MS", &cfg.PauseMs},
		{"RZCTL_CLICK_SETTLE_MS", &cfg.ClickSettleMs},
	}
	for _, item := range ints {
		value, err := envInt(item.key, *item.dst)
		if err != nil {
			return Config{}, err
		}
		*item.dst = value
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if !validBackend(c.Backend) {
		return fmt.Errorf("RZCTL_BACKEND must be one of %s", strings.Join(Backends, ", "))
	}
	if c.Steps <= 0 || c.Steps > motion.MaxSteps {
		return fmt.Errorf("RZCTL_STEPS must be 1-%d", motion.MaxSteps)
	}
	for name, v := range map[string]int{
		"RZCTL_MIN_DURATION_MS": c.MinDurationMs,
		"RZCTL_MIN_SLEEP_MS":    c.MinSleepMs,
		"RZCTL_PAUSE_MS":        c.PauseMs,
		"RZCTL_CLICK_SETTLE_MS": c.ClickSettleMs,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}
	if _, err := ParsePoints(c.FailSafePoints); err != nil {
		return fmt.Errorf("RZCTL_FAILSAFE_POINTS: %w", err)
	}
	return nil
}

// ValidateServe checks the settings required by the control server.
func (c Config) ValidateServe() error {
	if strings.TrimSpace(c.ControlToken) == "" {
		return errors.New("RZCTL_CONTROL_TOKEN is required")
	}
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.New("RZCTL_LISTEN_ADDR is required")
	}
	return nil
}

// MinDuration returns the instant-move threshold.
func (c Config) MinDuration() time.Duration {
	return time.Duration(c.MinDurationMs) * time.Millisecond
}

// MinSleep returns the shortest per-step delay.
func (c Config) MinSleep() time.Duration {
	return time.Duration(c.MinSleepMs) * time.Millisecond
}

// Pause returns the delay after each action.
func (c Config) Pause() time.Duration {
	return time.Duration(c.PauseMs) * time.Millisecond
}

// ClickSettle returns the delay between the move and the first press of a click.
func (c Config) ClickSettle() time.Duration {
	return time.Duration(c.ClickSettleMs) * time.Millisecond
}

// Points returns the parsed fail-safe points.
func (c Config) Points() []driver.Point {
	pts, err := ParsePoints(c.FailSafePoints)
	if err != nil {
		return nil
	}
	return pts
}

// ParsePoints parses "x,y;x,y" into points. An empty value yields no points.
func ParsePoints(raw string) ([]driver.Point, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []driver.Point
	for _, item := range strings.Split(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		xs, ys, ok := strings.Cut(item, ",")
		if !ok {
			return nil, fmt.Errorf("point %q must be x,y", item)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", item, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", item, err)
		}
		out = append(out, driver.Point{X: x, Y: y})
	}
	return out, nil
}

// validBackend reports whether name is an accepted backend.
func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// loadYAMLFile overlays a YAML file onto cfg when it exists.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding set variables.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
