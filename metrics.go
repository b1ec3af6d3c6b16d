package wlclient

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "wlclient"

type metrics struct {
	framesSent     *prometheus.CounterVec
	framesReceived *prometheus.CounterVec
	bytesSent      prometheus.Counter
	bytesReceived  prometheus.Counter
	unknownEvents  *prometheus.CounterVec
	decodeErrors   prometheus.Counter
}

// newMetrics registers the connection's counters. Connections sharing a
// registry and a label share their counters.
func newMetrics(registry prometheus.Registerer, label string) *metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	constLabels := prometheus.Labels{"connection": label}

	return &metrics{
		framesSent: register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "frames_sent_total",
			Help:        "Requests written to the compositor by interface",
			ConstLabels: constLabels,
		}, []string{"interface"})),

		framesReceived: register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "frames_received_total",
			Help:        "Events read from the compositor by interface",
			ConstLabels: constLabels,
		}, []string{"interface"})),

		bytesSent: register(registry, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "bytes_sent_total",
			Help:        "Bytes of framed requests written",
			ConstLabels: constLabels,
		})),

		bytesReceived: register(registry, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "bytes_received_total",
			Help:        "Bytes of framed events read",
			ConstLabels: constLabels,
		})),

		unknownEvents: register(registry, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "unknown_events_total",
			Help:        "Events skipped because their object or opcode is not known",
			ConstLabels: constLabels,
		}, []string{"interface"})),

		decodeErrors: register(registry, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "decode_errors_total",
			Help:        "Events whose arguments did not match their type",
			ConstLabels: constLabels,
		})),
	}
}

// register adds collector to registry, or returns the identical collector
// already registered there. Any other registration failure is a
// programming error and panics, as promauto does.
func register[T prometheus.Collector](registry prometheus.Registerer, collector T) T {
	err := registry.Register(collector)
	if err == nil {
		return collector
	}
	var existing prometheus.AlreadyRegisteredError
	if errors.As(err, &existing) {
		if c, ok := existing.ExistingCollector.(T); ok {
			return c
		}
	}
	panic(err)
}

func interfaceLabel(iface string) string {
	if iface == "" {
		return "unknown"
	}
	return iface
}
