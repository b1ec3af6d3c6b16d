package wlclient

import (
	"os"
	"path/filepath"
)

const (
	RuntimeDirEnv  = "XDG_RUNTIME_DIR"
	DisplayEnv     = "WAYLAND_DISPLAY"
	DefaultDisplay = "wayland-0"
)

// SocketPath resolves the compositor socket from the environment. An
// absolute WAYLAND_DISPLAY is used as is.
func SocketPath() (string, error) {
	display := os.Getenv(DisplayEnv)
	if display == "" {
		display = DefaultDisplay
	}
	if filepath.IsAbs(display) {
		return display, nil
	}
	dir := os.Getenv(RuntimeDirEnv)
	if dir == "" {
		return "", &ConfigError{Variable: RuntimeDirEnv}
	}
	return filepath.Join(dir, display), nil
}
