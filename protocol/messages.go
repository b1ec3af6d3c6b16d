package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// Interface names as advertised by the registry.
const (
	DisplayInterface    = "wl_display"
	RegistryInterface   = "wl_registry"
	CallbackInterface   = "wl_callback"
	CompositorInterface = "wl_compositor"
)

// wl_display requests
const (
	opDisplaySync        uint16 = 0
	opDisplayGetRegistry uint16 = 1
)

// wl_display events
const (
	opDisplayError    uint16 = 0
	opDisplayDeleteID uint16 = 1
)

// wl_registry requests
const (
	opRegistryBind uint16 = 0
)

// wl_registry events
const (
	opRegistryGlobal       uint16 = 0
	opRegistryGlobalRemove uint16 = 1
)

// wl_callback events
const (
	opCallbackDone uint16 = 0
)

// Request is a message the client sends. Requests are values: building one
// never mutates it, so a request can not be half sent.
type Request interface {
	HeaderDesc() wire.HeaderDesc
	BuildMessage(buf *wire.MessageBuffer) (*wire.Message, error)
	Request()
}

// Event is a message the compositor sends. HeaderDesc reports false when
// the event's object id is only known at runtime, in which case the object
// table decides what a message is.
type Event interface {
	HeaderDesc() (wire.HeaderDesc, bool)
	Decode(msg *wire.Message) error
	Event()
}

// MessageWriter is the sending half of a connection.
type MessageWriter interface {
	WriteMessage(msg *wire.Message) error
}

// Send builds req into buf and writes it. A build failure is returned
// before anything touches the connection.
func Send(w MessageWriter, buf *wire.MessageBuffer, req Request) (*wire.Message, error) {
	msg, err := req.BuildMessage(buf)
	if err != nil {
		return nil, err
	}
	if err := w.WriteMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Matches reports whether msg is addressed the way ev declares. Events
// that can not identify themselves never match.
func Matches(ev Event, desc wire.HeaderDesc) bool {
	expected, ok := ev.HeaderDesc()
	return ok && expected == desc
}
