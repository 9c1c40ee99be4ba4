package platform

import (
	"fmt"
	"runtime"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
)

// ErrUnsupported is returned when no compositor backend is registered.
var ErrUnsupported = fmt.Errorf("niri-app-hotkey has no compositor backend for %s/%s; supported: niri", runtime.GOOS, runtime.GOARCH)

// NewCompositorFunc is set by backend packages via init().
// See internal/platform/niri/init.go for the niri registration.
var NewCompositorFunc func(log *logger.Logger) (Compositor, error)

// NewCompositor returns a client for the running compositor.
func NewCompositor(log *logger.Logger) (Compositor, error) {
	if NewCompositorFunc == nil {
		return nil, ErrUnsupported
	}
	return NewCompositorFunc(log)
}
