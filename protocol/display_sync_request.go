package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// DisplaySyncRequest asks the compositor to fire Done on Callback once
// every request sent before it has been processed.
type DisplaySyncRequest struct {
	Callback wire.NewID
}

func (DisplaySyncRequest) Request() {}

func (DisplaySyncRequest) HeaderDesc() wire.HeaderDesc {
	return wire.HeaderDesc{
		ObjectID: wire.DisplayID,
		Opcode:   opDisplaySync,
	}
}

func (i DisplaySyncRequest) BuildMessage(buf *wire.MessageBuffer) (*wire.Message, error) {
	return wire.NewBuilder(buf).
		Header(i.HeaderDesc()).
		NewID(i.Callback).
		Build()
}
