package protocol

import (
	"github.com/elliotcourant/wlclient/wire"
	"github.com/pkg/errors"
)

var (
	ErrObjectExists  = errors.New("object id is already live")
	ErrObjectUnknown = errors.New("object id is not in the table")
)

type ObjectState int

const (
	// ObjectLive objects receive and send messages.
	ObjectLive ObjectState = iota
	// ObjectZombie objects were destroyed by the client or the compositor
	// but the compositor has not yet acknowledged with delete_id. Events
	// still arriving for them must be framed and dropped.
	ObjectZombie
)

func (s ObjectState) String() string {
	switch s {
	case ObjectLive:
		return "live"
	case ObjectZombie:
		return "zombie"
	default:
		return "unknown"
	}
}

// Object is one entry of the table.
type Object struct {
	ID        wire.ObjectID
	Interface string
	Version   uint32
	State     ObjectState
}

// ObjectTable maps ids to the interface they were created with. It is how
// an event with no self-describing header gets its type.
type ObjectTable struct {
	objects map[wire.ObjectID]*Object
}

// NewObjectTable returns a table holding only the display, which exists
// for the whole life of a connection.
func NewObjectTable() *ObjectTable {
	t := &ObjectTable{
		objects: map[wire.ObjectID]*Object{},
	}
	t.objects[wire.DisplayID] = &Object{
		ID:        wire.DisplayID,
		Interface: DisplayInterface,
		Version:   1,
		State:     ObjectLive,
	}
	return t
}

// Register records a new live object. An id still in the table, even as a
// zombie, can not be registered again.
func (t *ObjectTable) Register(id wire.ObjectID, iface string, version uint32) error {
	if id == 0 {
		return wire.ErrNullObject
	}
	if existing, ok := t.objects[id]; ok {
		return errors.Wrapf(ErrObjectExists, "id %s is a %s %s", id, existing.State, existing.Interface)
	}
	t.objects[id] = &Object{
		ID:        id,
		Interface: iface,
		Version:   version,
		State:     ObjectLive,
	}
	return nil
}

func (t *ObjectTable) Lookup(id wire.ObjectID) (Object, bool) {
	obj, ok := t.objects[id]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// Kill moves an object to the zombie state.
func (t *ObjectTable) Kill(id wire.ObjectID) error {
	obj, ok := t.objects[id]
	if !ok {
		return ErrObjectUnknown
	}
	obj.State = ObjectZombie
	return nil
}

// Remove drops the object entirely, which happens on delete_id.
func (t *ObjectTable) Remove(id wire.ObjectID) error {
	if id == wire.DisplayID {
		return errors.New("the display object can not be removed")
	}
	if _, ok := t.objects[id]; !ok {
		return ErrObjectUnknown
	}
	delete(t.objects, id)
	return nil
}

func (t *ObjectTable) Len() int {
	return len(t.objects)
}
