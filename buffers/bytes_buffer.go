package buffers

import (
	"encoding/binary"
)

const (
	Uint32Size = 4

	// WordSize is the alignment of every argument on the wire.
	WordSize = Uint32Size
)

// ByteOrder is the host byte order. The wire protocol never crosses a
// machine boundary so it is always native.
var ByteOrder binary.ByteOrder = binary.NativeEndian

// Padding returns how many zero bytes follow n bytes of payload to reach
// the next word boundary.
func Padding(n int) int {
	return (WordSize - n%WordSize) % WordSize
}

// Aligned rounds n up to the next word boundary.
func Aligned(n int) int {
	return n + Padding(n)
}

type BytesBuffer interface {
	AppendRaw(bytes ...byte)
	AppendUint32(item uint32)
	AppendInt32(item int32)
	AppendString(str string)
	AppendNullString()
	AppendArray(bytes []byte)
	PutUint32(offset int, item uint32)

	Reset()
	Len() int
	Bytes() []byte
}

func NewBytesBuffer() BytesBuffer {
	return &bytesBuffer{
		buf: make([]byte, 0, 256),
	}
}

type bytesBuffer struct {
	buf []byte
}

// AppendRaw copies bytes without a length prefix or padding.
func (b *bytesBuffer) AppendRaw(bytes ...byte) {
	b.buf = append(b.buf, bytes...)
}

func (b *bytesBuffer) AppendUint32(item uint32) {
	wp := len(b.buf)
	b.buf = append(b.buf, 0, 0, 0, 0)
	ByteOrder.PutUint32(b.buf[wp:], item)
}

func (b *bytesBuffer) AppendInt32(item int32) {
	b.AppendUint32(uint32(item))
}

// AppendString writes the length (terminator included), the bytes, the
// NUL terminator and zero padding up to the next word.
func (b *bytesBuffer) AppendString(str string) {
	b.AppendUint32(uint32(len(str) + 1))
	b.buf = append(b.buf, str...)
	b.buf = append(b.buf, 0)
	b.pad(len(str) + 1)
}

// AppendNullString writes the zero length used for a null string.
func (b *bytesBuffer) AppendNullString() {
	b.AppendUint32(0)
}

func (b *bytesBuffer) AppendArray(bytes []byte) {
	b.AppendUint32(uint32(len(bytes)))
	b.buf = append(b.buf, bytes...)
	b.pad(len(bytes))
}

func (b *bytesBuffer) PutUint32(offset int, item uint32) {
	ByteOrder.PutUint32(b.buf[offset:], item)
}

func (b *bytesBuffer) pad(n int) {
	for i := Padding(n); i > 0; i-- {
		b.buf = append(b.buf, 0)
	}
}

// Reset truncates the buffer but keeps its capacity.
func (b *bytesBuffer) Reset() {
	b.buf = b.buf[:0]
}

func (b *bytesBuffer) Len() int {
	return len(b.buf)
}

func (b *bytesBuffer) Bytes() []byte {
	return b.buf
}
