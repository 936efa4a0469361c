package app

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
)

// SizeQuerier reports the primary display size.
type SizeQuerier interface {
	Size() (driver.Size, error)
}

// Info summarizes the host and backend for bug reports.
type Info struct {
	Platform   string    `json:"platform"`
	GoVersion  string    `json:"goVersion"`
	Version    string    `json:"version"`
	Executable string    `json:"executable"`
	Backend    string    `json:"backend"`
	Resolution string    `json:"resolution"`
	Timestamp  time.Time `json:"timestamp"`
}

// GetInfo collects host information; an unavailable display is reported inline.
func GetInfo(sizes SizeQuerier, backend string, now time.Time) Info {
	exe, err := os.Executable()
	if err != nil {
		exe = "unknown"
	}
	return Info{
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:  runtime.Version(),
		Version:    Version,
		Executable: exe,
		Backend:    backend,
		Resolution: resolution(sizes),
		Timestamp:  now,
	}
}

// String renders the info block printed by `rzctl info`.
func (i Info) String() string {
	return fmt.Sprintf(`      Platform: %s
    Go Version: %s
 Rzctl Version: %s
    Executable: %s
       Backend: %s
    Resolution: %s
     Timestamp: %s`,
		i.Platform, i.GoVersion, i.Version, i.Executable, i.Backend, i.Resolution,
		i.Timestamp.Format(time.RFC3339))
}

// resolution formats the display size or the reason it is unknown.
func resolution(sizes SizeQuerier) string {
	if sizes == nil {
		return "unavailable"
	}
	size, err := sizes.Size()
	if err != nil {
		return fmt.Sprintf("unavailable (%v)", err)
	}
	return fmt.Sprintf("%dx%d", size.Width, size.Height)
}
