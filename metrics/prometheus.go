package metrics

import "github.com/prometheus/client_golang/prometheus"

// Exporter publishes the Bell's counters to Prometheus, complementing the
// structured log line emitted on every epoch rollover.
type Exporter struct {
	epochGauge   prometheus.Gauge
	txCounter    prometheus.Counter
	successCount prometheus.Counter
	failCount    prometheus.Counter
}

// NewExporter registers the Bell's gauges/counters against reg.
func NewExporter(reg prometheus.Registerer) *Exporter {
	e := &Exporter{
		epochGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bell",
			Name:      "current_epoch",
			Help:      "Epoch of the currently accumulating rollup generation.",
		}),
		txCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bell",
			Name:      "transactions_total",
			Help:      "Transaction updates observed, regardless of status.",
		}),
		successCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bell",
			Name:      "notifications_success_total",
			Help:      "Sink dispatch calls that succeeded.",
		}),
		failCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bell",
			Name:      "notifications_fail_total",
			Help:      "Sink dispatch calls that failed.",
		}),
	}
	reg.MustRegister(e.epochGauge, e.txCounter, e.successCount, e.failCount)
	return e
}

// ObserveTx records one transaction-update arrival.
func (e *Exporter) ObserveTx(epoch uint64) {
	e.epochGauge.Set(float64(epoch))
	e.txCounter.Inc()
}

// ObserveDispatch records one sink dispatch outcome.
func (e *Exporter) ObserveDispatch(success bool) {
	if success {
		e.successCount.Inc()
		return
	}
	e.failCount.Inc()
}
