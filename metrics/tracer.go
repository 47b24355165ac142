// Package metrics provides a Prometheus-backed tracer for the reordering queue.
package metrics

import (
	"errors"

	"github.com/quic-go/reorderqueue/logging"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "reorderqueue"

var (
	packetsEnqueued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_enqueued_total",
			Help:      "Packets admitted to the queue",
		},
	)
	packetsDequeued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_dequeued_total",
			Help:      "Packets delivered in arrival order",
		},
	)
	packetsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_dropped_total",
			Help:      "Packets rejected at admission",
		},
		[]string{"reason"},
	)
	packetsHeld = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_held_total",
			Help:      "Packets pulled out of sequence into the held slot",
		},
	)
	packetsReleased = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_released_total",
			Help:      "Held packets delivered out of order",
		},
	)
	packetsRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_removed_total",
			Help:      "Packets forcibly removed outside the reordering cycle",
		},
	)
)

// NewTracer creates a new tracer using the default Prometheus registerer.
// It can be set on the Tracer field of a reorderqueue.Queue.
func NewTracer() *logging.Tracer {
	return NewTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewTracerWithRegisterer(registerer prometheus.Registerer) *logging.Tracer {
	for _, c := range [...]prometheus.Collector{
		packetsEnqueued,
		packetsDequeued,
		packetsDropped,
		packetsHeld,
		packetsReleased,
		packetsRemoved,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	return &logging.Tracer{
		EnqueuedPacket: func(uint64, logging.ByteCount) { packetsEnqueued.Inc() },
		DequeuedPacket: func(uint64, logging.ByteCount) { packetsDequeued.Inc() },
		DroppedPacket: func(_ uint64, _ logging.ByteCount, reason logging.PacketDropReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, reason.String())
			packetsDropped.WithLabelValues(*tags...).Inc()
		},
		HeldPacket:     func(uint64, logging.ByteCount) { packetsHeld.Inc() },
		ReleasedPacket: func(uint64, logging.ByteCount, int) { packetsReleased.Inc() },
		RemovedPacket:  func(uint64, logging.ByteCount) { packetsRemoved.Inc() },
	}
}
