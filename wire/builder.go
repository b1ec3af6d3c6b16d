package wire

import (
	"strings"
	"unicode/utf8"
)

// Builder writes a header followed by arguments into a MessageBuffer. The
// first failure sticks and is reported by Build; later appends are no-ops.
type Builder struct {
	buf    *MessageBuffer
	desc   HeaderDesc
	header bool
	err    error
}

// NewBuilder starts a message in buf, invalidating whatever it held.
func NewBuilder(buf *MessageBuffer) *Builder {
	buf.reset()
	return &Builder{
		buf: buf,
	}
}

// Header writes the object id and a placeholder for the size/opcode word,
// which Build patches once the size is known.
func (b *Builder) Header(desc HeaderDesc) *Builder {
	b.desc = desc
	if desc.ObjectID == 0 {
		return b.fail(ErrNullObject)
	}
	b.buf.reset()
	b.buf.buf.AppendUint32(uint32(desc.ObjectID))
	b.buf.buf.AppendUint32(0)
	b.header = true
	return b
}

func (b *Builder) Uint(value uint32) *Builder {
	if b.ok() {
		b.buf.buf.AppendUint32(value)
	}
	return b
}

func (b *Builder) Int(value int32) *Builder {
	if b.ok() {
		b.buf.buf.AppendInt32(value)
	}
	return b
}

func (b *Builder) Fixed(value Fixed) *Builder {
	return b.Int(int32(value))
}

// Object appends a reference to an existing object.
func (b *Builder) Object(id ObjectID) *Builder {
	if id == 0 {
		return b.fail(ErrNullObject)
	}
	return b.Uint(uint32(id))
}

// NullableObject appends an object reference that may be absent.
func (b *Builder) NullableObject(id ObjectID) *Builder {
	return b.Uint(uint32(id))
}

func (b *Builder) NewID(id NewID) *Builder {
	return b.Object(ObjectID(id))
}

func (b *Builder) String(value string) *Builder {
	switch {
	case !utf8.ValidString(value):
		return b.fail(ErrInvalidString)
	case strings.IndexByte(value, 0) >= 0:
		return b.fail(ErrInteriorNUL)
	}
	if b.ok() {
		b.buf.buf.AppendString(value)
	}
	return b
}

func (b *Builder) Array(value []byte) *Builder {
	if b.ok() {
		b.buf.buf.AppendArray(value)
	}
	return b
}

// FD attaches a descriptor. It travels as ancillary data with the frame
// and takes no space in the word stream.
func (b *Builder) FD(fd int) *Builder {
	if !b.ok() {
		return b
	}
	if len(b.buf.fds) >= MaxFDs {
		return b.fail(ErrTooManyFDs)
	}
	b.buf.fds = append(b.buf.fds, fd)
	return b
}

// Build patches the header size and returns a view over the buffer.
func (b *Builder) Build() (*Message, error) {
	if !b.ok() {
		return nil, &BuildError{Desc: b.desc, Err: b.err}
	}
	size := b.buf.Len()
	if size > MaxMessageSize {
		return nil, &BuildError{Desc: b.desc, Err: ErrMessageTooLarge}
	}
	header := Header{HeaderDesc: b.desc, Size: uint16(size)}
	b.buf.buf.PutUint32(4, header.word())
	return &Message{
		buf:        b.buf,
		generation: b.buf.generation,
		header:     header,
	}, nil
}

func (b *Builder) ok() bool {
	if b.err == nil && !b.header {
		b.err = ErrNoHeader
	}
	return b.err == nil
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}
