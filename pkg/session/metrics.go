package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

// MetricsConfig configures session metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "typecraft").
	Namespace string

	// Subsystem is the metrics subsystem (default: "session").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures session metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "typecraft",
		Subsystem: "session",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts traffic and failures for sessions. One Metrics may be
// shared by several sessions. A nil *Metrics records nothing.
type Metrics struct {
	packetsReceived *prometheus.CounterVec
	packetsSent     *prometheus.CounterVec
	bytesReceived   prometheus.Counter
	bytesSent       prometheus.Counter
	decodeErrors    *prometheus.CounterVec
	keepAlivesSent  prometheus.Counter
	state           *prometheus.GaugeVec
}

// NewMetrics creates and registers the session metrics. Registering twice
// with the same registry panics, like any promauto collector.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		packetsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "packets_received_total",
			Help:        "Total number of packets decoded from the server",
			ConstLabels: config.ConstLabels,
		}, []string{"opcode"}),

		packetsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "packets_sent_total",
			Help:        "Total number of packets sent to the server",
			ConstLabels: config.ConstLabels,
		}, []string{"opcode"}),

		bytesReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes_received_total",
			Help:        "Total number of bytes delivered to sessions",
			ConstLabels: config.ConstLabels,
		}),

		bytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes_sent_total",
			Help:        "Total number of bytes written to the server",
			ConstLabels: config.ConstLabels,
		}),

		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "decode_errors_total",
			Help:        "Total number of deliveries that failed to decode",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		keepAlivesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "keepalives_sent_total",
			Help:        "Total number of keep-alive packets sent",
			ConstLabels: config.ConstLabels,
		}),

		state: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "sessions",
			Help:        "Number of sessions in each state",
			ConstLabels: config.ConstLabels,
		}, []string{"state"}),
	}
}

func (m *Metrics) received(op protocol.Opcode) {
	if m == nil {
		return
	}
	m.packetsReceived.WithLabelValues(op.String()).Inc()
}

func (m *Metrics) sent(op protocol.Opcode, n int) {
	if m == nil {
		return
	}
	m.packetsSent.WithLabelValues(op.String()).Inc()
	m.bytesSent.Add(float64(n))
	if op == protocol.OpKeepAlive {
		m.keepAlivesSent.Inc()
	}
}

func (m *Metrics) delivered(n int) {
	if m == nil {
		return
	}
	m.bytesReceived.Add(float64(n))
}

func (m *Metrics) decodeError(kind string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) transition(from, to State) {
	if m == nil || from == to {
		return
	}
	m.state.WithLabelValues(from.String()).Dec()
	m.state.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) created() {
	if m == nil {
		return
	}
	m.state.WithLabelValues(StateDisconnected.String()).Inc()
}
