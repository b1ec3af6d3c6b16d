package wlclient

import (
	"time"

	"github.com/elliotcourant/timber"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	// SocketPath overrides the path derived from the environment.
	SocketPath string

	// Label names the connection in logs and metrics. A short random id is
	// used when empty. Connections that share a Registerer and a Label
	// also share their counters.
	Label string

	// ReadTimeout bounds every blocking read. Zero waits forever.
	ReadTimeout time.Duration

	Logger timber.Logger

	// Registerer receives the connection's metrics. When nil they go to a
	// private registry.
	Registerer prometheus.Registerer
}
