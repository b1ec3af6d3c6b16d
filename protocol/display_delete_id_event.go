package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// DisplayDeleteIDEvent acknowledges that the compositor dropped ID, after
// which the client may consider the id free.
type DisplayDeleteIDEvent struct {
	ID wire.ObjectID
}

func (DisplayDeleteIDEvent) Event() {}

func (DisplayDeleteIDEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{
		ObjectID: wire.DisplayID,
		Opcode:   opDisplayDeleteID,
	}, true
}

func (i *DisplayDeleteIDEvent) Decode(msg *wire.Message) (err error) {
	*i = DisplayDeleteIDEvent{}
	r := msg.Reader()
	if i.ID, err = r.Object(); err != nil {
		return err
	}
	return r.Done()
}
