package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// RegistryGlobalEvent announces a global that can be bound by Name.
type RegistryGlobalEvent struct {
	Name      wire.ObjectID
	Interface string
	Version   uint32
}

func (RegistryGlobalEvent) Event() {}

func (RegistryGlobalEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{
		ObjectID: wire.RegistryID,
		Opcode:   opRegistryGlobal,
	}, true
}

func (i *RegistryGlobalEvent) Decode(msg *wire.Message) (err error) {
	*i = RegistryGlobalEvent{}
	r := msg.Reader()
	if i.Name, err = r.Object(); err != nil {
		return err
	}
	if i.Interface, err = r.String(); err != nil {
		return err
	}
	if i.Version, err = r.Uint(); err != nil {
		return err
	}
	return r.Done()
}
