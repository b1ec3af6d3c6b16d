package wlclient

import (
	"fmt"

	"github.com/elliotcourant/wlclient/protocol"
	"github.com/pkg/errors"
)

var (
	ErrClosed         = errors.New("connection is closed")
	ErrGlobalNotFound = errors.New("global is not advertised")
)

// ConfigError means the environment does not say where the compositor is.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not set", e.Variable)
}

// ProtocolError is the compositor's wl_display.error. The connection is
// unusable once one is received.
type ProtocolError struct {
	Event     protocol.DisplayErrorEvent
	Interface string
}

func (e *ProtocolError) Error() string {
	if e.Interface == "" {
		return e.Event.Error()
	}
	return fmt.Sprintf("%s (%s)", e.Event.Error(), e.Interface)
}
