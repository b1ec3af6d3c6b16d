package wire

import (
	"github.com/elliotcourant/wlclient/buffers"
	"github.com/pkg/errors"
)

// Reader is a forward-only cursor over the arguments of a Message.
type Reader struct {
	msg *Message
	r   buffers.BytesReader
}

func newReader(msg *Message) *Reader {
	var args []byte
	if msg.Valid() {
		args = msg.buf.Bytes()[HeaderSize:]
	}
	return &Reader{
		msg: msg,
		r:   buffers.NewBytesReader(args),
	}
}

// Remaining is the number of argument bytes not yet consumed.
func (r *Reader) Remaining() int {
	return r.r.Remaining()
}

func (r *Reader) Uint() (uint32, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	offset := r.r.Offset()
	value, err := r.r.NextUint32()
	return value, r.wrap(offset, err)
}

func (r *Reader) Int() (int32, error) {
	if err := r.check(); err != nil {
		return 0, err
	}
	offset := r.r.Offset()
	value, err := r.r.NextInt32()
	return value, r.wrap(offset, err)
}

func (r *Reader) Fixed() (Fixed, error) {
	value, err := r.Int()
	return Fixed(value), err
}

// Object reads a non-null object reference.
func (r *Reader) Object() (ObjectID, error) {
	offset := r.r.Offset()
	value, err := r.Uint()
	if err != nil {
		return 0, err
	}
	id, err := ParseObjectID(value)
	return id, r.wrap(offset, err)
}

// NullableObject reads an object reference that may be zero.
func (r *Reader) NullableObject() (ObjectID, error) {
	value, err := r.Uint()
	return ObjectID(value), err
}

func (r *Reader) NewID() (NewID, error) {
	id, err := r.Object()
	return NewID(id), err
}

// String reads a non-null string. The result is a copy and outlives the
// buffer.
func (r *Reader) String() (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	offset := r.r.Offset()
	value, err := r.r.NextString()
	return value, r.wrap(offset, err)
}

// NullableString reports ok=false for the null string.
func (r *Reader) NullableString() (value string, ok bool, err error) {
	if err := r.check(); err != nil {
		return "", false, err
	}
	offset := r.r.Offset()
	value, err = r.r.NextString()
	if errors.Is(err, buffers.ErrNullString) {
		return "", false, nil
	}
	return value, err == nil, r.wrap(offset, err)
}

// Array aliases the buffer and is only valid until it is reused.
func (r *Reader) Array() ([]byte, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	offset := r.r.Offset()
	value, err := r.r.NextBytes()
	return value, r.wrap(offset, err)
}

// FD takes the next descriptor received on the connection. Descriptors are
// consumed in the same order fd arguments appear in the message stream.
func (r *Reader) FD() (int, error) {
	if err := r.check(); err != nil {
		return -1, err
	}
	source := r.msg.buf.source
	if source == nil {
		return -1, r.wrap(r.r.Offset(), ErrNoFD)
	}
	fd, err := source.NextFD()
	return fd, r.wrap(r.r.Offset(), err)
}

// Done fails if arguments were left unread, which means the message did
// not have the shape its opcode promised.
func (r *Reader) Done() error {
	if err := r.check(); err != nil {
		return err
	}
	if r.r.Remaining() != 0 {
		return r.wrap(r.r.Offset(), errors.Errorf("%d trailing bytes", r.r.Remaining()))
	}
	return nil
}

func (r *Reader) check() error {
	if !r.msg.Valid() {
		return ErrStaleMessage
	}
	return nil
}

func (r *Reader) wrap(offset int, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*DecodeError); ok {
		return err
	}
	return &DecodeError{
		Desc:   r.msg.Desc(),
		Offset: offset,
		Err:    err,
	}
}
