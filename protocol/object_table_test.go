package protocol

import (
	"testing"

	"github.com/elliotcourant/wlclient/wire"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestObjectTable(t *testing.T) {
	t.Run("display is registered", func(t *testing.T) {
		table := NewObjectTable()
		obj, ok := table.Lookup(wire.DisplayID)
		assert.True(t, ok)
		assert.Equal(t, DisplayInterface, obj.Interface)
		assert.Equal(t, ObjectLive, obj.State)
		assert.Equal(t, 1, table.Len())
		assert.Error(t, table.Remove(wire.DisplayID))
	})

	t.Run("register and remove", func(t *testing.T) {
		table := NewObjectTable()
		assert.NoError(t, table.Register(8, CompositorInterface, 4))
		obj, ok := table.Lookup(8)
		assert.True(t, ok)
		assert.Equal(t, Object{ID: 8, Interface: CompositorInterface, Version: 4, State: ObjectLive}, obj)

		err := table.Register(8, CompositorInterface, 4)
		assert.True(t, errors.Is(err, ErrObjectExists))

		assert.NoError(t, table.Remove(8))
		_, ok = table.Lookup(8)
		assert.False(t, ok)
		assert.Equal(t, ErrObjectUnknown, table.Remove(8))
	})

	t.Run("zombie keeps its id", func(t *testing.T) {
		table := NewObjectTable()
		assert.NoError(t, table.Register(wire.CallbackID, CallbackInterface, 1))
		assert.NoError(t, table.Kill(wire.CallbackID))
		obj, ok := table.Lookup(wire.CallbackID)
		assert.True(t, ok)
		assert.Equal(t, ObjectZombie, obj.State)
		assert.Equal(t, "zombie", obj.State.String())
		assert.Error(t, table.Register(wire.CallbackID, CallbackInterface, 1))
		assert.Equal(t, ErrObjectUnknown, table.Kill(99))
	})

	t.Run("null id", func(t *testing.T) {
		assert.Equal(t, wire.ErrNullObject, NewObjectTable().Register(0, RegistryInterface, 1))
	})
}
