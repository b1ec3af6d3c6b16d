package protocol

import (
	"testing"

	"github.com/elliotcourant/wlclient/wire"
	"github.com/stretchr/testify/assert"
)

func TestDisplayErrorEvent_Event(t *testing.T) {
	DisplayErrorEvent{}.Event()
}

func TestDisplayErrorEvent(t *testing.T) {
	t.Run("encode and decode", func(t *testing.T) {
		desc, _ := DisplayErrorEvent{}.HeaderDesc()
		msg := eventMessage(t, desc, func(b *wire.Builder) {
			b.Object(wire.RegistryID).Uint(DisplayErrorInvalidMethod).String("invalid method 7")
		})
		d := DisplayErrorEvent{}
		assert.NoError(t, d.Decode(msg))
		assert.Equal(t, DisplayErrorEvent{
			ObjectID: wire.RegistryID,
			Code:     DisplayErrorInvalidMethod,
			Message:  "invalid method 7",
		}, d)
		assert.Equal(t, "protocol error 1 on object 2: invalid method 7", d.Error())
	})
}

func TestDisplayDeleteIDEvent(t *testing.T) {
	DisplayDeleteIDEvent{}.Event()

	t.Run("encode and decode", func(t *testing.T) {
		desc, _ := DisplayDeleteIDEvent{}.HeaderDesc()
		msg := eventMessage(t, desc, func(b *wire.Builder) {
			b.Uint(8)
		})
		d := DisplayDeleteIDEvent{}
		assert.NoError(t, d.Decode(msg))
		assert.Equal(t, wire.ObjectID(8), d.ID)
	})

	t.Run("null id", func(t *testing.T) {
		desc, _ := DisplayDeleteIDEvent{}.HeaderDesc()
		msg := eventMessage(t, desc, func(b *wire.Builder) {
			b.Uint(0)
		})
		d := DisplayDeleteIDEvent{}
		assert.Error(t, d.Decode(msg))
	})
}
