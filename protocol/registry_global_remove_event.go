package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

type RegistryGlobalRemoveEvent struct {
	Name wire.ObjectID
}

func (RegistryGlobalRemoveEvent) Event() {}

func (RegistryGlobalRemoveEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{
		ObjectID: wire.RegistryID,
		Opcode:   opRegistryGlobalRemove,
	}, true
}

func (i *RegistryGlobalRemoveEvent) Decode(msg *wire.Message) (err error) {
	*i = RegistryGlobalRemoveEvent{}
	r := msg.Reader()
	if i.Name, err = r.Object(); err != nil {
		return err
	}
	return r.Done()
}
