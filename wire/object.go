package wire

import (
	"strconv"
)

// ObjectID names a protocol object within one connection. Zero means "no
// object" and is never handed out.
type ObjectID uint32

// Ids pinned by convention for the connection's singleton objects. Every
// other id is allocated by an IDProvider starting at FirstAvailableID.
const (
	DisplayID ObjectID = iota + 1
	RegistryID
	CallbackID
	CompositorID
	ShmID
	ViewporterID
	LayerShellID
	FirstAvailableID

	// MaxClientID is the last id in the client half of the namespace, ids
	// above it are allocated by the server.
	MaxClientID ObjectID = 0xfeffffff
)

// ParseObjectID validates a raw id read off the wire.
func ParseObjectID(value uint32) (ObjectID, error) {
	if value == 0 {
		return 0, ErrNullObject
	}
	return ObjectID(value), nil
}

// MustObjectID panics if value is zero.
func MustObjectID(value uint32) ObjectID {
	id, err := ParseObjectID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ObjectID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NewID is an ObjectID passed in a request to tell the peer which id the
// object it creates will be known by.
type NewID ObjectID

func (id NewID) ObjectID() ObjectID {
	return ObjectID(id)
}

func (id NewID) String() string {
	return ObjectID(id).String()
}

// IDProvider hands out object ids. Ids are never reused, even after the
// peer acknowledges their destruction; a freed id only changes state.
type IDProvider struct {
	next  ObjectID
	freed map[ObjectID]struct{}
}

func NewIDProvider() *IDProvider {
	return &IDProvider{
		next:  FirstAvailableID,
		freed: map[ObjectID]struct{}{},
	}
}

// Next returns the current frontier and advances it by one. Running out of
// client ids is not recoverable.
func (p *IDProvider) Next() ObjectID {
	if p.next > MaxClientID {
		panic("wire: client object ids exhausted")
	}
	id := p.next
	p.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (p *IDProvider) Peek() ObjectID {
	return p.next
}

// Free moves an issued id from live to freed.
func (p *IDProvider) Free(id ObjectID) error {
	switch {
	case id == 0:
		return ErrNullObject
	case id >= p.next:
		return ErrUnissuedObject
	}
	if _, ok := p.freed[id]; ok {
		return ErrObjectFreed
	}
	p.freed[id] = struct{}{}
	return nil
}

func (p *IDProvider) IsFreed(id ObjectID) bool {
	_, ok := p.freed[id]
	return ok
}
