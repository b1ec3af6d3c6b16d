package wire

import (
	"fmt"

	"github.com/elliotcourant/wlclient/buffers"
)

const (
	// HeaderSize is the object id word plus the size/opcode word.
	HeaderSize = 8

	// MaxMessageSize matches the limit libwayland enforces on both ends.
	MaxMessageSize = 4096

	// MaxFDs is the most descriptors a single message may carry.
	MaxFDs = 28
)

// HeaderDesc is the addressing part of a header: which object, which
// message of its interface.
type HeaderDesc struct {
	ObjectID ObjectID
	Opcode   uint16
}

func (d HeaderDesc) String() string {
	return fmt.Sprintf("%d:%d", d.ObjectID, d.Opcode)
}

// Header is a decoded message header. Size counts the header itself.
type Header struct {
	HeaderDesc
	Size uint16
}

// DecodeHeader reads the two header words from src. It does not check
// that Size describes a sane frame, see Header.Validate.
func DecodeHeader(src []byte) (Header, error) {
	r := buffers.NewBytesReader(src)
	object, err := r.NextUint32()
	if err != nil {
		return Header{}, err
	}
	word, err := r.NextUint32()
	if err != nil {
		return Header{}, err
	}
	return Header{
		HeaderDesc: HeaderDesc{
			ObjectID: ObjectID(object),
			Opcode:   uint16(word),
		},
		Size: uint16(word >> 16),
	}, nil
}

// Validate checks the header can frame a message.
func (h Header) Validate() error {
	switch {
	case h.ObjectID == 0:
		return &FramingError{Header: h, Reason: "null object id"}
	case h.Size < HeaderSize:
		return &FramingError{Header: h, Reason: "shorter than the header"}
	case h.Size%buffers.WordSize != 0:
		return &FramingError{Header: h, Reason: "not word aligned"}
	case int(h.Size) > MaxMessageSize:
		return &FramingError{Header: h, Reason: "exceeds maximum message size"}
	}
	return nil
}

func (h Header) word() uint32 {
	return uint32(h.Size)<<16 | uint32(h.Opcode)
}

// FDSource yields descriptors received alongside message bytes, in the
// order they arrived.
type FDSource interface {
	NextFD() (int, error)
}

// MessageBuffer owns the bytes of exactly one message at a time. It is
// reused for every read and every build on a connection; each reuse
// invalidates the Message handed out before it.
type MessageBuffer struct {
	buf        buffers.BytesBuffer
	generation uint64

	// fds holds descriptors attached by a Builder, in argument order.
	fds []int
	// source feeds fd arguments of a received message.
	source FDSource
}

func NewMessageBuffer() *MessageBuffer {
	return &MessageBuffer{
		buf: buffers.NewBytesBuffer(),
	}
}

func (b *MessageBuffer) reset() {
	b.generation++
	b.buf.Reset()
	b.fds = b.fds[:0]
	b.source = nil
}

// Load replaces the contents with one received frame.
func (b *MessageBuffer) Load(frame []byte, source FDSource) {
	b.reset()
	b.buf.AppendRaw(frame...)
	b.source = source
}

func (b *MessageBuffer) Len() int {
	return b.buf.Len()
}

// Bytes aliases the current contents; it is only valid until the buffer
// is reused.
func (b *MessageBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// FDs returns the descriptors attached to the message being built.
func (b *MessageBuffer) FDs() []int {
	return b.fds
}

// Message returns a view over the message currently held by the buffer.
func (b *MessageBuffer) Message() (*Message, error) {
	header, err := DecodeHeader(b.Bytes())
	if err != nil {
		return nil, &FramingError{Reason: "buffer does not hold a header"}
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	if int(header.Size) != b.Len() {
		return nil, &FramingError{Header: header, Reason: fmt.Sprintf("buffer holds %d bytes", b.Len())}
	}
	return &Message{
		buf:        b,
		generation: b.generation,
		header:     header,
	}, nil
}

// Message is a borrowed view over a MessageBuffer. Every accessor fails
// with ErrStaleMessage once the buffer has been reused.
type Message struct {
	buf        *MessageBuffer
	generation uint64
	header     Header
}

func (m *Message) Header() Header {
	return m.header
}

func (m *Message) Desc() HeaderDesc {
	return m.header.HeaderDesc
}

// Valid reports whether the underlying buffer still holds this message.
func (m *Message) Valid() bool {
	return m.buf.generation == m.generation
}

// Bytes returns the whole frame, header included.
func (m *Message) Bytes() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrStaleMessage
	}
	return m.buf.Bytes(), nil
}

// FDs returns the descriptors a built message carries.
func (m *Message) FDs() ([]int, error) {
	if !m.Valid() {
		return nil, ErrStaleMessage
	}
	return m.buf.fds, nil
}

func (m *Message) Reader() *Reader {
	return newReader(m)
}

func (m *Message) String() string {
	return fmt.Sprintf("message [%s] size %d", m.header.HeaderDesc, m.header.Size)
}
