package buffers

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	ErrShortBuffer       = errors.New("argument runs past the end of the message")
	ErrMissingTerminator = errors.New("string is not NUL terminated")
	ErrInvalidString     = errors.New("string is not valid UTF-8")
	ErrNullString        = errors.New("string is null")
)

type BytesReader interface {
	NextUint32() (uint32, error)
	NextInt32() (int32, error)
	NextBytes() ([]byte, error)
	NextString() (string, error)

	Offset() int
	Remaining() int
}

func NewBytesReader(src []byte) BytesReader {
	return &bytesReader{
		data:   src,
		offset: 0,
	}
}

type bytesReader struct {
	data   []byte
	offset int
}

func (b *bytesReader) Offset() int {
	return b.offset
}

func (b *bytesReader) Remaining() int {
	return len(b.data) - b.offset
}

func (b *bytesReader) NextUint32() (uint32, error) {
	if b.Remaining() < Uint32Size {
		return 0, ErrShortBuffer
	}
	i := ByteOrder.Uint32(b.data[b.offset : b.offset+Uint32Size])
	b.offset += Uint32Size
	return i, nil
}

func (b *bytesReader) NextInt32() (int32, error) {
	i, err := b.NextUint32()
	return int32(i), err
}

// NextBytes reads a length prefixed array and skips its padding. The result
// aliases the source slice.
func (b *bytesReader) NextBytes() ([]byte, error) {
	length, err := b.NextUint32()
	if err != nil {
		return nil, err
	}
	return b.payload(int(length))
}

// NextString reads a length prefixed, NUL terminated string. A zero length
// is the null string and yields ErrNullString after consuming the prefix.
func (b *bytesReader) NextString() (string, error) {
	length, err := b.NextUint32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", ErrNullString
	}
	i, err := b.payload(int(length))
	if err != nil {
		return "", err
	}
	if i[len(i)-1] != 0 {
		return "", ErrMissingTerminator
	}
	i = i[:len(i)-1]
	if !utf8.Valid(i) {
		return "", ErrInvalidString
	}
	return string(i), nil
}

func (b *bytesReader) payload(length int) ([]byte, error) {
	// length is checked on its own first so Aligned cannot overflow.
	if length < 0 || length > b.Remaining() || Aligned(length) > b.Remaining() {
		return nil, ErrShortBuffer
	}
	i := b.data[b.offset : b.offset+length]
	b.offset += Aligned(length)
	return i, nil
}
