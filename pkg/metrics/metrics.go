package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ActiveConnections is the number of live websocket connections
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_active_connections",
		Help: "Live websocket connections.",
	})

	// MessagesIn counts inbound frames, valid or not
	MessagesIn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_messages_in_total",
		Help: "Inbound websocket frames received.",
	})

	// Broadcasts counts room fanouts performed
	Broadcasts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_broadcasts_total",
		Help: "Room broadcasts performed.",
	})

	// DeliveryDrops counts per-recipient sends skipped (closed conn or full queue)
	DeliveryDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_delivery_drops_total",
		Help: "Per-recipient deliveries dropped during broadcast.",
	})

	// PersistFailures counts messages that were broadcast without a durable record
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_persist_failures_total",
		Help: "Message store appends that failed.",
	})

	// MalformedMessages counts inbound frames dropped at parse time
	MalformedMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_malformed_messages_total",
		Help: "Inbound frames dropped as malformed.",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
