package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "lksh336"

type Metrics struct {
	commandsHandled   *prometheus.CounterVec
	linesRejected     prometheus.Counter
	repliesSuppressed prometheus.Counter
	activeConnections prometheus.Gauge
	totalConnections  prometheus.Counter
}

// NewMetrics registers the emulator collectors, plus Go runtime and process
// collectors, on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commandsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_handled_total",
			Help:      "Protocol commands executed, by verb.",
		}, []string{"verb"}),
		linesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_rejected_total",
			Help:      "Lines dropped because they matched no command or addressed a missing channel.",
		}),
		repliesSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_suppressed_total",
			Help:      "Commands ignored while the device was disconnected.",
		}),
		activeConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_active_connections",
			Help:      "Open stream connections.",
		}),
		totalConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stream_connections_total",
			Help:      "Accepted stream connections.",
		}),
	}

	reg.MustRegister(
		m.commandsHandled,
		m.linesRejected,
		m.repliesSuppressed,
		m.activeConnections,
		m.totalConnections,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) CommandHandled(verb string) {
	m.commandsHandled.WithLabelValues(verb).Inc()
}

func (m *Metrics) LineRejected() {
	m.linesRejected.Inc()
}

func (m *Metrics) ReplySuppressed() {
	m.repliesSuppressed.Inc()
}

func (m *Metrics) ConnectionOpened() {
	m.activeConnections.Inc()
	m.totalConnections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	m.activeConnections.Dec()
}
