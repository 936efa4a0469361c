package robot

import (
	"testing"

	"github.com/frudas24/rzctl/internal/driver"
)

// TestButtonName verifies physical buttons map to robotgo names.
func TestButtonName(t *testing.T) {
	cases := map[driver.Button]string{
		driver.Left:   "left",
		driver.Right:  "right",
		driver.Middle: "center",
	}
	for b, want := range cases {
		got, err := buttonName(b)
		if err != nil || got != want {
			t.Fatalf("%s: expected %q, got %q err=%v", b, want, got, err)
		}
	}
	if _, err := buttonName(driver.Secondary); err == nil {
		t.Fatalf("expected aliases to be rejected")
	}
}
