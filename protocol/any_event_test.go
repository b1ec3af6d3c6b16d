package protocol

import (
	"testing"

	"github.com/elliotcourant/wlclient/wire"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundTable(t *testing.T) *ObjectTable {
	table := NewObjectTable()
	require.NoError(t, table.Register(wire.RegistryID, RegistryInterface, 1))
	require.NoError(t, table.Register(wire.CallbackID, CallbackInterface, 1))
	return table
}

func TestDecodeEvent(t *testing.T) {
	t.Run("global", func(t *testing.T) {
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.RegistryID, Opcode: 0}, func(b *wire.Builder) {
			b.Uint(1).String("wl_shm").Uint(1)
		})
		event, err := DecodeEvent(boundTable(t), msg)
		require.NoError(t, err)
		assert.Equal(t, &RegistryGlobalEvent{Name: 1, Interface: "wl_shm", Version: 1}, event)
	})

	t.Run("callback done", func(t *testing.T) {
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.CallbackID, Opcode: 0}, func(b *wire.Builder) {
			b.Uint(7)
		})
		event, err := DecodeEvent(boundTable(t), msg)
		require.NoError(t, err)
		assert.Equal(t, &CallbackDoneEvent{Callback: wire.CallbackID, CallbackData: 7}, event)
	})

	t.Run("display events", func(t *testing.T) {
		table := boundTable(t)
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.DisplayID, Opcode: 1}, func(b *wire.Builder) {
			b.Uint(3)
		})
		event, err := DecodeEvent(table, msg)
		require.NoError(t, err)
		assert.Equal(t, &DisplayDeleteIDEvent{ID: 3}, event)

		msg = eventMessage(t, wire.HeaderDesc{ObjectID: wire.DisplayID, Opcode: 0}, func(b *wire.Builder) {
			b.Uint(2).Uint(0).String("bad object")
		})
		event, err = DecodeEvent(table, msg)
		require.NoError(t, err)
		assert.IsType(t, &DisplayErrorEvent{}, event)
	})

	t.Run("unknown opcode", func(t *testing.T) {
		table := boundTable(t)
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.RegistryID, Opcode: 9}, func(b *wire.Builder) {
			b.Uint(1).Uint(2)
		})
		event, err := DecodeEvent(table, msg)
		require.NoError(t, err)
		unknown, ok := event.(*UnknownEvent)
		require.True(t, ok)
		assert.Equal(t, RegistryInterface, unknown.Interface)
		assert.Equal(t, uint16(16), unknown.Header.Size)
		assert.Equal(t, uint16(9), unknown.Header.Opcode)
	})

	t.Run("unknown object", func(t *testing.T) {
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: 40, Opcode: 0}, nil)
		event, err := DecodeEvent(boundTable(t), msg)
		require.NoError(t, err)
		unknown, ok := event.(*UnknownEvent)
		require.True(t, ok)
		assert.Equal(t, "", unknown.Interface)
		assert.Equal(t, wire.ObjectID(40), unknown.Header.ObjectID)
	})

	t.Run("unimplemented interface", func(t *testing.T) {
		table := boundTable(t)
		require.NoError(t, table.Register(8, CompositorInterface, 4))
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: 8, Opcode: 0}, nil)
		event, err := DecodeEvent(table, msg)
		require.NoError(t, err)
		assert.Equal(t, CompositorInterface, event.(*UnknownEvent).Interface)
	})

	t.Run("zombie object", func(t *testing.T) {
		table := boundTable(t)
		require.NoError(t, table.Kill(wire.CallbackID))
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.CallbackID, Opcode: 0}, func(b *wire.Builder) {
			b.Uint(7)
		})
		event, err := DecodeEvent(table, msg)
		require.NoError(t, err)
		assert.Equal(t, &UnknownEvent{
			Header:    msg.Header(),
			Interface: CallbackInterface,
			Zombie:    true,
		}, event)
	})

	t.Run("malformed arguments", func(t *testing.T) {
		msg := eventMessage(t, wire.HeaderDesc{ObjectID: wire.RegistryID, Opcode: 0}, func(b *wire.Builder) {
			b.Uint(1)
		})
		event, err := DecodeEvent(boundTable(t), msg)
		assert.Nil(t, event)
		var decodeErr *wire.DecodeError
		assert.True(t, errors.As(err, &decodeErr), "got %v", err)
		assert.Equal(t, wire.HeaderDesc{ObjectID: wire.RegistryID}, decodeErr.Desc)
	})
}
