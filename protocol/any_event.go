package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// UnknownEvent stands in for any message the client has no type for: an
// object it never created, an interface it does not implement, or an
// opcode newer than it knows. Events addressed to a zombie object are
// dropped the same way with Zombie set. The frame was already consumed
// whole, so skipping it keeps the stream in sync.
type UnknownEvent struct {
	Header    wire.Header
	Interface string
	Zombie    bool
}

func (UnknownEvent) Event() {}

func (UnknownEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{}, false
}

func (i *UnknownEvent) Decode(msg *wire.Message) error {
	*i = UnknownEvent{
		Header: msg.Header(),
	}
	return nil
}

// DecodeEvent resolves msg against the interfaces of the objects in table
// and parses it. Every message yields an event; only a message whose
// arguments do not match its known shape yields an error.
func DecodeEvent(table *ObjectTable, msg *wire.Message) (Event, error) {
	obj, ok := table.Lookup(msg.Desc().ObjectID)
	if !ok {
		return &UnknownEvent{Header: msg.Header()}, nil
	}
	if obj.State == ObjectZombie {
		return &UnknownEvent{Header: msg.Header(), Interface: obj.Interface, Zombie: true}, nil
	}

	var event Event
	switch obj.Interface {
	case DisplayInterface:
		switch msg.Desc().Opcode {
		case opDisplayError:
			event = &DisplayErrorEvent{}
		case opDisplayDeleteID:
			event = &DisplayDeleteIDEvent{}
		}
	case RegistryInterface:
		switch msg.Desc().Opcode {
		case opRegistryGlobal:
			event = &RegistryGlobalEvent{}
		case opRegistryGlobalRemove:
			event = &RegistryGlobalRemoveEvent{}
		}
	case CallbackInterface:
		switch msg.Desc().Opcode {
		case opCallbackDone:
			event = &CallbackDoneEvent{}
		}
	}

	if event == nil {
		return &UnknownEvent{Header: msg.Header(), Interface: obj.Interface}, nil
	}

	if err := event.Decode(msg); err != nil {
		return nil, err
	}
	return event, nil
}
