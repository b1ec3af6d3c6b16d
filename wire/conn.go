package wire

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Conn is a Unix stream socket that carries file descriptors as
// SCM_RIGHTS ancillary data next to the message bytes.
type Conn struct {
	conn *net.UnixConn
	oob  []byte

	// fds is a FIFO of descriptors received but not yet claimed by an fd
	// argument.
	fds []int
}

func Dial(ctx context.Context, path string) (*Conn, error) {
	var dialer net.Dialer
	c, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to [%s]", path)
	}
	return NewConn(c.(*net.UnixConn)), nil
}

func NewConn(c *net.UnixConn) *Conn {
	return &Conn{
		conn: c,
		oob:  make([]byte, unix.CmsgSpace(MaxFDs*4)),
	}
}

// Read fills p with stream bytes and queues any descriptors that arrived
// with them.
func (c *Conn) Read(p []byte) (int, error) {
	n, oobn, flags, _, err := c.conn.ReadMsgUnix(p, c.oob)
	switch {
	case errors.Is(err, io.EOF):
		// Readers such as io.ReadAtLeast only recognize a bare io.EOF.
		err = io.EOF
	case n == 0 && oobn == 0 && err == nil && len(p) > 0:
		// A zero byte recvmsg on a stream socket is an orderly shutdown.
		err = io.EOF
	}
	if oobn > 0 {
		if perr := c.queueRights(c.oob[:oobn]); perr != nil && err == nil {
			err = perr
		}
	}
	if flags&unix.MSG_CTRUNC != 0 && err == nil {
		// The kernel dropped descriptors that did not fit, fd arguments
		// can no longer be paired with the descriptors that did arrive.
		err = ErrControlTruncated
	}
	return n, err
}

func (c *Conn) queueRights(oob []byte) error {
	messages, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return errors.Wrap(err, "failed to parse ancillary data")
	}
	for i := range messages {
		fds, err := unix.ParseUnixRights(&messages[i])
		if err != nil {
			return errors.Wrap(err, "failed to parse SCM_RIGHTS")
		}
		c.fds = append(c.fds, fds...)
	}
	return nil
}

// NextFD pops the oldest received descriptor. The caller owns it.
func (c *Conn) NextFD() (int, error) {
	if len(c.fds) == 0 {
		return -1, ErrNoFD
	}
	fd := c.fds[0]
	c.fds = c.fds[1:]
	return fd, nil
}

// WriteMessage sends one built message and its descriptors in a single
// sendmsg. If the kernel takes only part of the bytes the rest is written
// without ancillary data, the descriptors went out with the first chunk.
func (c *Conn) WriteMessage(msg *Message) error {
	data, err := msg.Bytes()
	if err != nil {
		return err
	}
	fds, err := msg.FDs()
	if err != nil {
		return err
	}
	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}
	n, _, err := c.conn.WriteMsgUnix(data, oob, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to write [%s]", msg.Desc())
	}
	for n < len(data) {
		written, err := c.conn.Write(data[n:])
		if err != nil {
			return errors.Wrapf(err, "failed to write [%s]", msg.Desc())
		}
		n += written
	}
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

// Close closes the socket and any descriptors nobody claimed.
func (c *Conn) Close() error {
	for _, fd := range c.fds {
		unix.Close(fd)
	}
	c.fds = nil
	return c.conn.Close()
}
