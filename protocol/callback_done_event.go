package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// CallbackDoneEvent fires once on a callback object. Callback ids are
// allocated per request so the event can not name its own object.
type CallbackDoneEvent struct {
	Callback     wire.ObjectID
	CallbackData uint32
}

func (CallbackDoneEvent) Event() {}

func (CallbackDoneEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{}, false
}

func (i *CallbackDoneEvent) Decode(msg *wire.Message) (err error) {
	*i = CallbackDoneEvent{
		Callback: msg.Desc().ObjectID,
	}
	r := msg.Reader()
	if i.CallbackData, err = r.Uint(); err != nil {
		return err
	}
	return r.Done()
}
