package wire

import (
	"io"

	"github.com/jackc/pgx/chunkreader"
	"github.com/pkg/errors"
)

// FrameReader cuts a byte stream into whole messages. It keeps a read-ahead
// buffer, so one FrameReader must own the stream for its whole life.
type FrameReader struct {
	cr     *chunkreader.ChunkReader
	source FDSource

	// stream counts bytes pulled from the underlying reader and consumed
	// the bytes handed out as whole frames. chunkreader reads ahead, so
	// the difference is what it holds of a frame not yet complete.
	stream   *countingReader
	consumed int64
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// NewFrameReader wraps r. When r also implements FDSource (as *Conn does)
// fd arguments of read messages are fed from it.
func NewFrameReader(r io.Reader) *FrameReader {
	source, _ := r.(FDSource)
	stream := &countingReader{r: r}
	return &FrameReader{
		cr:     chunkreader.NewChunkReader(stream),
		source: source,
		stream: stream,
	}
}

// ReadMessageInto reads exactly one frame into buf: the header first to
// learn the size, then the rest. On success buf holds that frame and
// nothing else. io.EOF is returned only when the peer closed between
// frames; a close inside a frame is io.ErrUnexpectedEOF.
func (f *FrameReader) ReadMessageInto(buf *MessageBuffer) error {
	raw, err := f.cr.Next(HeaderSize)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if f.stream.n > f.consumed {
				return io.ErrUnexpectedEOF
			}
			return io.EOF
		}
		return err
	}
	header, err := DecodeHeader(raw)
	if err != nil {
		return err
	}
	if err := header.Validate(); err != nil {
		return err
	}

	// chunkreader reuses its memory on the next call, copy the header out
	// before asking for the body.
	var head [HeaderSize]byte
	copy(head[:], raw)

	body, err := f.cr.Next(int(header.Size) - HeaderSize)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read body of [%s]", header.HeaderDesc)
	}
	f.consumed += int64(header.Size)

	buf.Load(head[:], f.source)
	buf.buf.AppendRaw(body...)
	return nil
}
