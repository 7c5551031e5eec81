package q931

import "github.com/prometheus/client_golang/prometheus"

// trunkMetrics exposes a trunk's runtime counters as Prometheus
// collectors, grounded on facebook-time's prom_exporter pattern
// (ptp/ptp4u/stats/prometheus.go): one registry-free struct of
// collectors owned by the trunk, handed to the host for registration
// rather than registered against prometheus.DefaultRegisterer (a
// process may run many trunks).
type trunkMetrics struct {
	callsCreated  prometheus.Counter
	callsReleased prometheus.Counter
	callsInUse    prometheus.Gauge

	errorsByKind *prometheus.CounterVec
	txByMessage  *prometheus.CounterVec
	eventsByKind *prometheus.CounterVec
}

func newTrunkMetrics() *trunkMetrics {
	return &trunkMetrics{
		callsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "q931_calls_created_total",
			Help: "Calls created (CRV allocated) on this trunk.",
		}),
		callsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "q931_calls_released_total",
			Help: "Calls released (CRV freed) on this trunk.",
		}),
		callsInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "q931_calls_in_use",
			Help: "Calls currently occupying a slot in the call table.",
		}),
		errorsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "q931_errors_total",
			Help: "Engine errors observed, by kind.",
		}, []string{"kind"}),
		txByMessage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "q931_tx_messages_total",
			Help: "Messages packed and handed to Layer 2, by message type.",
		}, []string{"message"}),
		eventsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "q931_bridge_events_total",
			Help: "Bridge events handed to Layer 4, by kind.",
		}, []string{"event"}),
	}
}

func (m *trunkMetrics) observeCallCreated() {
	m.callsCreated.Inc()
	m.callsInUse.Inc()
}

func (m *trunkMetrics) observeCallReleased() {
	m.callsReleased.Inc()
	m.callsInUse.Dec()
}

func (m *trunkMetrics) observeError(kind ErrorKind) {
	m.errorsByKind.WithLabelValues(kind.String()).Inc()
}

func (m *trunkMetrics) observeTx(mt MessageType) {
	m.txByMessage.WithLabelValues(mt.String()).Inc()
}

func (m *trunkMetrics) observeEvent(kind BridgeEventKind) {
	m.eventsByKind.WithLabelValues(kind.String()).Inc()
}

// MetricsCollectors returns the trunk's Prometheus collectors so the
// host can register them against its own registry (spec.md's domain-
// stack metrics surface: counters for calls created/released, errors
// per kind, tx per message type, events per kind, and a calls-in-use
// gauge).
func (t *Trunk) MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		t.metrics.callsCreated,
		t.metrics.callsReleased,
		t.metrics.callsInUse,
		t.metrics.errorsByKind,
		t.metrics.txByMessage,
		t.metrics.eventsByKind,
	}
}
