//go:build !cgo

package listen

import (
	"context"

	"github.com/frudas24/rzctl/internal/driver"
)

// Run returns ErrUnsupported when cgo is disabled.
func Run(ctx context.Context, fn func(Click)) error {
	_ = ctx
	_ = fn
	return driver.ErrUnsupported
}
