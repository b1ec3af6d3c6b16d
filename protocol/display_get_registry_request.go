package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

type DisplayGetRegistryRequest struct {
	Registry wire.NewID
}

func (DisplayGetRegistryRequest) Request() {}

func (DisplayGetRegistryRequest) HeaderDesc() wire.HeaderDesc {
	return wire.HeaderDesc{
		ObjectID: wire.DisplayID,
		Opcode:   opDisplayGetRegistry,
	}
}

func (i DisplayGetRegistryRequest) BuildMessage(buf *wire.MessageBuffer) (*wire.Message, error) {
	return wire.NewBuilder(buf).
		Header(i.HeaderDesc()).
		NewID(i.Registry).
		Build()
}
