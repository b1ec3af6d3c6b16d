package protocol

import (
	"fmt"

	"github.com/elliotcourant/wlclient/wire"
)

// Error codes wl_display uses for its own failures. Other interfaces define
// their own codes.
const (
	DisplayErrorInvalidObject  uint32 = 0
	DisplayErrorInvalidMethod  uint32 = 1
	DisplayErrorNoMemory       uint32 = 2
	DisplayErrorImplementation uint32 = 3
)

// DisplayErrorEvent reports a fatal protocol error. The compositor closes
// the connection right after sending it.
type DisplayErrorEvent struct {
	ObjectID wire.ObjectID
	Code     uint32
	Message  string
}

func (DisplayErrorEvent) Event() {}

func (DisplayErrorEvent) HeaderDesc() (wire.HeaderDesc, bool) {
	return wire.HeaderDesc{
		ObjectID: wire.DisplayID,
		Opcode:   opDisplayError,
	}, true
}

func (i *DisplayErrorEvent) Decode(msg *wire.Message) (err error) {
	*i = DisplayErrorEvent{}
	r := msg.Reader()
	if i.ObjectID, err = r.Object(); err != nil {
		return err
	}
	if i.Code, err = r.Uint(); err != nil {
		return err
	}
	if i.Message, err = r.String(); err != nil {
		return err
	}
	return r.Done()
}

func (i DisplayErrorEvent) Error() string {
	return fmt.Sprintf("protocol error %d on object %s: %s", i.Code, i.ObjectID, i.Message)
}
