package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/frudas24/rzctl/internal/config"
	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/testutil"
)

// newTestApp returns an initialized app over a fake driver at (10,20).
func newTestApp(t *testing.T, initErr error) (*App, *http.ServeMux) {
	t.Helper()
	cfg := config.Default()
	cfg.ControlToken = "secret"
	drv := testutil.NewFakeDriver(10, 20)
	drv.InitErr = initErr
	opts := PointerOptions(cfg)
	opts.Pause = 0
	opts.Sleeper = &testutil.FakeSleeper{}
	a := New(cfg, drv, opts)
	_ = a.Start()
	mux := http.NewServeMux()
	a.RegisterRoutes(mux)
	return a, mux
}

// serve runs a request against mux.
func serve(mux *http.ServeMux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// TestHandlePosition_Unauthorized verifies /api/position requires the token.
func TestHandlePosition_Unauthorized(t *testing.T) {
	_, mux := newTestApp(t, nil)
	if rec := serve(mux, "/api/position", "wrong"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandlePosition verifies the cursor position response.
func TestHandlePosition(t *testing.T) {
	_, mux := newTestApp(t, nil)
	rec := serve(mux, "/api/position", "secret")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var pos driver.Point
	if err := json.Unmarshal(rec.Body.Bytes(), &pos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if pos != (driver.Point{X: 10, Y: 20}) {
		t.Fatalf("expected (10,20), got %+v", pos)
	}
}

// TestHandleSize_QueryToken verifies the token query parameter and the size response.
func TestHandleSize_QueryToken(t *testing.T) {
	_, mux := newTestApp(t, nil)
	rec := serve(mux, "/api/size?token=secret", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"w":1920`) {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

// TestHandleSize_Uninitialized verifies a failed init maps to 503.
func TestHandleSize_Uninitialized(t *testing.T) {
	_, mux := newTestApp(t, ErrInitFailed)
	if rec := serve(mux, "/api/size", "secret"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

// TestHandleHealth verifies the health response for ready and failed backends.
func TestHandleHealth(t *testing.T) {
	_, mux := newTestApp(t, nil)
	rec := serve(mux, "/healthz", "")
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if rec.Code != http.StatusOK || !resp.OK || resp.Version != Version || resp.Backend != "rzctl" {
		t.Fatalf("unexpected health %d %+v", rec.Code, resp)
	}

	_, failed := newTestApp(t, ErrInitFailed)
	if rec := serve(failed, "/healthz", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

// TestHandleState verifies the session snapshot is served.
func TestHandleState(t *testing.T) {
	a, mux := newTestApp(t, nil)
	a.Session().SetInputEnabled(false)
	rec := serve(mux, "/api/state", "secret")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"inputEnabled":false`) {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

// TestStart_InitFailure verifies Start reports the init failure.
func TestStart_InitFailure(t *testing.T) {
	a, _ := newTestApp(t, ErrInitFailed)
	if err := a.Start(); err == nil {
		t.Fatalf("expected init error")
	}
	if a.Pointer().Initialized() {
		t.Fatalf("expected uninitialized controller")
	}
}

// TestOpenDriver_UnknownBackend verifies unknown names are rejected.
func TestOpenDriver_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "xdotool"
	if _, err := OpenDriver(cfg); err == nil {
		t.Fatalf("expected error")
	}
}

// TestPointerOptions verifies configuration maps onto controller options.
func TestPointerOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Steps = 40
	cfg.FailSafePoints = "0,0;5,5"
	opts := PointerOptions(cfg)
	if opts.Steps != 40 || opts.MinimumDuration != 100*time.Millisecond || opts.ClickSettle != 7*time.Millisecond {
		t.Fatalf("unexpected options %+v", opts)
	}
	if len(opts.FailSafePoints) != 2 || !opts.FailSafe {
		t.Fatalf("unexpected fail-safe %+v", opts.FailSafePoints)
	}
}

// TestGetInfo verifies the info block content.
func TestGetInfo(t *testing.T) {
	a, _ := newTestApp(t, nil)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	info := GetInfo(a.Pointer(), "rzctl", now)
	if info.Version != Version || info.Resolution != "1920x1080" || !info.Timestamp.Equal(now) {
		t.Fatalf("unexpected info %+v", info)
	}
	out := info.String()
	if !strings.Contains(out, "Resolution: 1920x1080") || !strings.Contains(out, "2024-01-02T03:04:05Z") {
		t.Fatalf("unexpected info text:\n%s", out)
	}
	failed, _ := newTestApp(t, ErrInitFailed)
	if got := GetInfo(failed.Pointer(), "rzctl", now).Resolution; !strings.HasPrefix(got, "unavailable") {
		t.Fatalf("expected unavailable resolution, got %q", got)
	}
}
