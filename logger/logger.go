package logger

import (
	"encoding/hex"

	"github.com/elliotcourant/timber"
	"github.com/elliotcourant/wlclient/wire"
)

// NewLogger returns a logger that prefixes every line with the connection
// label.
func NewLogger(label string) timber.Logger {
	return timber.New().Prefix(label)
}

type Direction string

const (
	Sent     Direction = "->"
	Received Direction = "<-"
)

// DumpFrame writes a hex dump of one frame at trace level. Lines report
// the caller of DumpFrame.
func DumpFrame(l timber.Logger, direction Direction, msg *wire.Message) {
	l = l.With(timber.Keys{}).SetDepth(1)
	frame, err := msg.Bytes()
	if err != nil {
		l.Tracef("%s [%s] %v", direction, msg.Desc(), err)
		return
	}
	l.Tracef("%s [%s] %d byte(s)\n%s", direction, msg.Desc(), len(frame), hex.Dump(frame))
}
