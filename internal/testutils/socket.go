package testutils

import (
	"net"
	"os"

	"github.com/elliotcourant/wlclient/wire"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

// NewSocketPair returns both ends of a connected Unix stream socket. The
// first is meant for the client, the second plays the compositor.
func NewSocketPair(t assert.TestingT) (*net.UnixConn, *net.UnixConn, CleanupFunction) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if !assert.NoError(t, err) {
		panic(err)
	}
	client := fileConn(t, fds[0], "client")
	server := fileConn(t, fds[1], "server")
	return client, server, func() {
		client.Close()
		server.Close()
	}
}

func fileConn(t assert.TestingT, fd int, name string) *net.UnixConn {
	f := os.NewFile(uintptr(fd), name)
	defer f.Close()
	c, err := net.FileConn(f)
	if !assert.NoError(t, err) {
		panic(err)
	}
	return c.(*net.UnixConn)
}

// Compositor writes events the way a server would, with the same codec the
// client uses for requests.
type Compositor struct {
	t    assert.TestingT
	raw  *net.UnixConn
	conn *wire.Conn
	buf  *wire.MessageBuffer
	fr   *wire.FrameReader
}

func NewCompositor(t assert.TestingT, conn *net.UnixConn) *Compositor {
	c := wire.NewConn(conn)
	return &Compositor{
		t:    t,
		raw:  conn,
		conn: c,
		buf:  wire.NewMessageBuffer(),
		fr:   wire.NewFrameReader(c),
	}
}

// Send builds an event addressed to object with the given opcode. args
// appends the arguments.
func (c *Compositor) Send(object wire.ObjectID, opcode uint16, args func(b *wire.Builder)) {
	b := wire.NewBuilder(c.buf).Header(wire.HeaderDesc{ObjectID: object, Opcode: opcode})
	if args != nil {
		args(b)
	}
	msg, err := b.Build()
	if !assert.NoError(c.t, err) {
		panic(err)
	}
	if err := c.conn.WriteMessage(msg); !assert.NoError(c.t, err) {
		panic(err)
	}
}

func (c *Compositor) Global(name uint32, iface string, version uint32) {
	c.Send(wire.RegistryID, 0, func(b *wire.Builder) {
		b.Uint(name).String(iface).Uint(version)
	})
}

func (c *Compositor) Done(callback wire.ObjectID, serial uint32) {
	c.Send(callback, 0, func(b *wire.Builder) {
		b.Uint(serial)
	})
}

// Receive reads the next request the client sent.
func (c *Compositor) Receive() *wire.Message {
	if err := c.fr.ReadMessageInto(c.buf); !assert.NoError(c.t, err) {
		panic(err)
	}
	msg, err := c.buf.Message()
	if !assert.NoError(c.t, err) {
		panic(err)
	}
	return msg
}

// WriteRaw writes bytes with no framing at all.
func (c *Compositor) WriteRaw(data []byte) {
	if _, err := c.raw.Write(data); !assert.NoError(c.t, err) {
		panic(err)
	}
}

func (c *Compositor) Close() error {
	return c.conn.Close()
}
