package niri

import (
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

func init() {
	platform.NewCompositorFunc = func(log *logger.Logger) (platform.Compositor, error) {
		path, err := SocketPath()
		if err != nil {
			return nil, err
		}
		return NewClient(path, log), nil
	}
}
