package wlclient

import (
	"context"
	"time"

	"github.com/elliotcourant/timber"
	"github.com/elliotcourant/wlclient/logger"
	"github.com/elliotcourant/wlclient/protocol"
	"github.com/elliotcourant/wlclient/wire"
	"github.com/pkg/errors"
)

// Client drives one connection to a compositor. It is not safe for
// concurrent use; every call blocks until its reads and writes finish.
type Client struct {
	label       string
	readTimeout time.Duration

	conn    *wire.Conn
	frames  *wire.FrameReader
	buf     *wire.MessageBuffer
	ids     *wire.IDProvider
	objects *protocol.ObjectTable
	globals Globals

	log     timber.Logger
	metrics *metrics

	// err is set once the connection can no longer be trusted. It is
	// returned by every call that follows.
	err error
}

// Connect dials the compositor socket named by options or the environment.
func Connect(ctx context.Context, options Options) (*Client, error) {
	path := options.SocketPath
	if path == "" {
		var err error
		if path, err = SocketPath(); err != nil {
			return nil, err
		}
	}
	conn, err := wire.Dial(ctx, path)
	if err != nil {
		return nil, err
	}
	c := NewClient(conn, options)
	c.log.Debugf("connected to [%s]", path)
	return c, nil
}

// NewClient wraps an established connection.
func NewClient(conn *wire.Conn, options Options) *Client {
	label := options.Label
	if label == "" {
		label = NewLabel()
	}
	log := options.Logger
	if log == nil {
		log = logger.NewLogger(label)
	} else {
		// Prefix sets the label in place, so it goes on a copy.
		log = log.With(timber.Keys{}).Prefix(label)
	}
	return &Client{
		label:       label,
		readTimeout: options.ReadTimeout,
		conn:        conn,
		frames:      wire.NewFrameReader(conn),
		buf:         wire.NewMessageBuffer(),
		ids:         wire.NewIDProvider(),
		objects:     protocol.NewObjectTable(),
		globals:     Globals{},
		log:         log,
		metrics:     newMetrics(options.Registerer, label),
	}
}

func (c *Client) Label() string {
	return c.label
}

func (c *Client) IDs() *wire.IDProvider {
	return c.ids
}

func (c *Client) Objects() *protocol.ObjectTable {
	return c.objects
}

// Err returns the error that broke the connection, if any.
func (c *Client) Err() error {
	return c.err
}

// Send writes one request. A request that fails to build leaves the
// connection usable; a failed write does not.
func (c *Client) Send(req protocol.Request) error {
	if c.err != nil {
		return c.err
	}
	msg, err := protocol.Send(c.conn, c.buf, req)
	if err != nil {
		if _, ok := err.(*wire.BuildError); ok {
			return err
		}
		return c.fail(err)
	}

	iface := ""
	if obj, ok := c.objects.Lookup(msg.Desc().ObjectID); ok {
		iface = obj.Interface
	}
	c.metrics.framesSent.WithLabelValues(interfaceLabel(iface)).Inc()
	c.metrics.bytesSent.Add(float64(msg.Header().Size))
	logger.DumpFrame(c.log, logger.Sent, msg)
	return nil
}

// NextEvent blocks until the compositor sends something. Display events
// are applied to the object table before they are returned, and a
// wl_display.error is returned as a *ProtocolError.
func (c *Client) NextEvent() (protocol.Event, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return nil, c.fail(errors.Wrap(err, "failed to set read deadline"))
		}
	}
	if err := c.frames.ReadMessageInto(c.buf); err != nil {
		return nil, c.fail(err)
	}
	msg, err := c.buf.Message()
	if err != nil {
		return nil, c.fail(err)
	}
	logger.DumpFrame(c.log, logger.Received, msg)

	iface := ""
	if obj, ok := c.objects.Lookup(msg.Desc().ObjectID); ok {
		iface = obj.Interface
	}
	c.metrics.framesReceived.WithLabelValues(interfaceLabel(iface)).Inc()
	c.metrics.bytesReceived.Add(float64(msg.Header().Size))

	event, err := protocol.DecodeEvent(c.objects, msg)
	if err != nil {
		c.metrics.decodeErrors.Inc()
		c.log.Warningf("dropping event [%s]: %v", msg.Desc(), err)
		return nil, err
	}

	switch e := event.(type) {
	case *protocol.DisplayErrorEvent:
		perr := &ProtocolError{Event: *e}
		if obj, ok := c.objects.Lookup(e.ObjectID); ok {
			perr.Interface = obj.Interface
		}
		c.log.Errorf("compositor reported: %v", perr)
		return nil, c.fail(perr)
	case *protocol.DisplayDeleteIDEvent:
		c.deleteID(e.ID)
	case *protocol.CallbackDoneEvent:
		// The compositor destroys a callback as soon as it fires.
		if err := c.objects.Kill(e.Callback); err != nil {
			c.log.Warningf("done for callback [%s]: %v", e.Callback, err)
		}
	case *protocol.RegistryGlobalEvent, *protocol.RegistryGlobalRemoveEvent:
		c.globals.Apply(event)
	case *protocol.UnknownEvent:
		c.metrics.unknownEvents.WithLabelValues(interfaceLabel(e.Interface)).Inc()
		c.log.Debugf("skipping unknown event [%s] on %s", e.Header.HeaderDesc, interfaceLabel(e.Interface))
	}
	return event, nil
}

func (c *Client) deleteID(id wire.ObjectID) {
	if err := c.objects.Remove(id); err != nil {
		c.log.Warningf("delete_id for [%s]: %v", id, err)
	}
	if err := c.ids.Free(id); err != nil {
		c.log.Warningf("delete_id for [%s]: %v", id, err)
	}
}

// Sync asks the compositor for a callback that fires once every request
// sent before it has been processed. The first sync uses CallbackID, later
// ones get fresh ids.
func (c *Client) Sync() (wire.ObjectID, error) {
	if c.err != nil {
		return 0, c.err
	}
	id := wire.CallbackID
	if _, live := c.objects.Lookup(id); live || c.ids.IsFreed(id) {
		id = c.ids.Next()
	}
	if err := c.Send(protocol.DisplaySyncRequest{Callback: wire.NewID(id)}); err != nil {
		return 0, err
	}
	if err := c.objects.Register(id, protocol.CallbackInterface, 1); err != nil {
		return 0, err
	}
	return id, nil
}

// Roundtrip sends a sync and reads events until its callback fires. Every
// other event is passed to handle, which may be nil. An error from handle
// stops the loop and is returned as is.
func (c *Client) Roundtrip(handle func(event protocol.Event) error) error {
	callback, err := c.Sync()
	if err != nil {
		return err
	}
	for {
		event, err := c.NextEvent()
		if err != nil {
			if c.err != nil {
				return err
			}
			// A malformed event does not desync the stream.
			continue
		}
		if done, ok := event.(*protocol.CallbackDoneEvent); ok && done.Callback == callback {
			return nil
		}
		if handle != nil {
			if err := handle(event); err != nil {
				return err
			}
		}
	}
}

// Globals returns every global the compositor advertised. The registry is
// created on the first call; later calls only wait for a roundtrip so that
// pending announcements and removals are applied.
func (c *Client) Globals() (Globals, error) {
	if c.err != nil {
		return nil, c.err
	}
	if _, ok := c.objects.Lookup(wire.RegistryID); !ok {
		if err := c.Send(protocol.DisplayGetRegistryRequest{Registry: wire.NewID(wire.RegistryID)}); err != nil {
			return nil, err
		}
		if err := c.objects.Register(wire.RegistryID, protocol.RegistryInterface, 1); err != nil {
			return nil, err
		}
	}
	if err := c.Roundtrip(nil); err != nil {
		return nil, err
	}
	c.log.Debugf("registry advertised %d interface(s)", len(c.globals))
	return c.globals.Clone(), nil
}

// Bind creates an object for the global that provides iface, at the
// version the compositor advertised.
func (c *Client) Bind(globals Globals, iface string) (wire.ObjectID, error) {
	desc, ok := globals[iface]
	if !ok {
		return 0, errors.Wrapf(ErrGlobalNotFound, "cannot bind [%s]", iface)
	}
	return c.BindVersion(iface, desc.ObjectName, desc.Version)
}

// BindVersion binds the global name as iface at an explicit version.
func (c *Client) BindVersion(iface string, name wire.ObjectID, version uint32) (wire.ObjectID, error) {
	if c.err != nil {
		return 0, c.err
	}
	if _, ok := c.objects.Lookup(wire.RegistryID); !ok {
		return 0, errors.Wrap(protocol.ErrObjectUnknown, "registry has not been created")
	}
	id := c.ids.Next()
	if err := c.Send(protocol.RegistryBindRequest{
		Name:      name,
		Interface: iface,
		Version:   version,
		NewID:     wire.NewID(id),
	}); err != nil {
		return 0, err
	}
	if err := c.objects.Register(id, iface, version); err != nil {
		return 0, err
	}
	c.log.Debugf("bound [%s] version %d as [%s]", iface, version, id)
	return id, nil
}

// Close closes the socket. Later calls return ErrClosed.
func (c *Client) Close() error {
	if c.err == ErrClosed {
		return nil
	}
	c.err = ErrClosed
	return c.conn.Close()
}

func (c *Client) fail(err error) error {
	c.err = err
	c.log.Debugf("connection marked broken: %v", err)
	return err
}
