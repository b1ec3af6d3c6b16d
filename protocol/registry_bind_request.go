package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
)

// RegistryBindRequest binds the global Name to NewID. The new_id argument
// of bind is untyped, so on the wire it is not a bare id: the interface
// name and version are sent ahead of it, giving name, interface, version,
// id. Compositors reject a bare name, id pair. The interface string uses
// the ordinary string encoding, whose length counts the trailing NUL.
type RegistryBindRequest struct {
	Name      wire.ObjectID
	Interface string
	Version   uint32
	NewID     wire.NewID
}

func (RegistryBindRequest) Request() {}

func (RegistryBindRequest) HeaderDesc() wire.HeaderDesc {
	return wire.HeaderDesc{
		ObjectID: wire.RegistryID,
		Opcode:   opRegistryBind,
	}
}

func (i RegistryBindRequest) BuildMessage(buf *wire.MessageBuffer) (*wire.Message, error) {
	return wire.NewBuilder(buf).
		Header(i.HeaderDesc()).
		Object(i.Name).
		String(i.Interface).
		Uint(i.Version).
		NewID(i.NewID).
		Build()
}

// DecodeRegistryBindRequest parses a bind request, which is what the
// compositor side of a test sees.
func DecodeRegistryBindRequest(msg *wire.Message) (RegistryBindRequest, error) {
	r := msg.Reader()
	name, err := r.Object()
	if err != nil {
		return RegistryBindRequest{}, err
	}
	iface, err := r.String()
	if err != nil {
		return RegistryBindRequest{}, err
	}
	version, err := r.Uint()
	if err != nil {
		return RegistryBindRequest{}, err
	}
	id, err := r.NewID()
	if err != nil {
		return RegistryBindRequest{}, err
	}
	if err := r.Done(); err != nil {
		return RegistryBindRequest{}, err
	}
	return RegistryBindRequest{
		Name:      name,
		Interface: iface,
		Version:   version,
		NewID:     id,
	}, nil
}
