package wlclient

import (
	"testing"

	"github.com/elliotcourant/wlclient/protocol"
	"github.com/stretchr/testify/assert"
)

func TestGlobals_Apply(t *testing.T) {
	t.Run("announce and remove", func(t *testing.T) {
		g := Globals{}
		assert.True(t, g.Apply(&protocol.RegistryGlobalEvent{Name: 1, Interface: "wl_shm", Version: 1}))
		assert.True(t, g.Apply(&protocol.RegistryGlobalEvent{Name: 12, Interface: "wl_compositor", Version: 4}))
		assert.True(t, g.Apply(&protocol.RegistryGlobalRemoveEvent{Name: 1}))
		assert.Equal(t, Globals{"wl_compositor": {ObjectName: 12, Version: 4}}, g)
	})

	t.Run("last seen wins", func(t *testing.T) {
		g := Globals{}
		g.Apply(&protocol.RegistryGlobalEvent{Name: 3, Interface: "wl_output", Version: 2})
		g.Apply(&protocol.RegistryGlobalEvent{Name: 4, Interface: "wl_output", Version: 4})
		assert.Equal(t, InterfaceDesc{ObjectName: 4, Version: 4}, g["wl_output"])

		// Removing the name that was replaced leaves the newer one alone.
		g.Apply(&protocol.RegistryGlobalRemoveEvent{Name: 3})
		assert.Equal(t, InterfaceDesc{ObjectName: 4, Version: 4}, g["wl_output"])
	})

	t.Run("name reused for another interface", func(t *testing.T) {
		g := Globals{}
		g.Apply(&protocol.RegistryGlobalEvent{Name: 7, Interface: "wl_seat", Version: 7})
		g.Apply(&protocol.RegistryGlobalEvent{Name: 7, Interface: "wl_data_device_manager", Version: 3})
		assert.Equal(t, []string{"wl_data_device_manager"}, g.Names())
	})

	t.Run("other events", func(t *testing.T) {
		g := Globals{}
		assert.False(t, g.Apply(&protocol.CallbackDoneEvent{Callback: 3}))
		assert.Empty(t, g)
	})
}

func TestGlobals_Names(t *testing.T) {
	g := Globals{
		"wl_seat":       {ObjectName: 5, Version: 7},
		"wl_compositor": {ObjectName: 1, Version: 4},
		"wl_shm":        {ObjectName: 2, Version: 1},
	}
	assert.Equal(t, []string{"wl_compositor", "wl_seat", "wl_shm"}, g.Names())
	assert.Empty(t, Globals{}.Names())

	clone := g.Clone()
	delete(clone, "wl_seat")
	assert.Len(t, g, 3)
}

func TestNewLabel(t *testing.T) {
	first, second := NewLabel(), NewLabel()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
