package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "beta_server"

// Metrics holds the server's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  *prometheus.CounterVec
	packets        *prometheus.CounterVec
	logins         prometheus.Counter
	protocolErrors *prometheus.CounterVec
	worldBytes     prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry along
// with the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Connections currently being served.",
		}),
		sessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Connections accepted, by transport.",
		}, []string{"transport"}),
		packets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "packets_received_total",
			Help:      "Client messages decoded, by opcode.",
		}, []string{"opcode"}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Successful logins.",
		}),
		protocolErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_errors_total",
			Help:      "Sessions ended by an error, by error class.",
		}, []string{"kind"}),
		worldBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "world_stream_bytes",
			Help:      "Compressed chunk bytes sent to a player at login.",
			Buckets:   prometheus.ExponentialBuckets(1<<10, 4, 8),
		}),
	}

	m.Registry.MustRegister(
		m.sessionsActive, m.sessionsTotal, m.packets,
		m.logins, m.protocolErrors, m.worldBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) SessionOpened(transport string) {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.WithLabelValues(transport).Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

func (m *Metrics) PacketReceived(opcode string) {
	if m == nil {
		return
	}
	m.packets.WithLabelValues(opcode).Inc()
}

func (m *Metrics) LoggedIn(worldBytes int) {
	if m == nil {
		return
	}
	m.logins.Inc()
	m.worldBytes.Observe(float64(worldBytes))
}

func (m *Metrics) SessionError(kind string) {
	if m == nil {
		return
	}
	m.protocolErrors.WithLabelValues(kind).Inc()
}
