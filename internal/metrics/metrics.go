// Package metrics exposes the bot's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kharjbot_updates_total",
		Help: "Total Telegram updates received, labeled by update kind",
	}, []string{"kind"})

	handlerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kharjbot_handler_failures_total",
		Help: "Total handler invocations that returned an error",
	}, []string{"handler"})

	handlerDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kharjbot_handler_duration_seconds",
		Help:    "Latency distribution of update handlers",
		Buckets: []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"handler"})

	expensesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kharjbot_expenses_recorded_total",
		Help: "Total expenses saved, labeled by entry source",
	}, []string{"source"})
)

// CountUpdate records receipt of one update of the given kind.
func CountUpdate(kind string) {
	updatesTotal.WithLabelValues(kind).Inc()
}

// ObserveHandler records one handler invocation.
func ObserveHandler(handler string, seconds float64, err error) {
	handlerDuration.WithLabelValues(handler).Observe(seconds)
	if err != nil {
		handlerFailures.WithLabelValues(handler).Inc()
	}
}

// CountExpense records one saved expense; source is "manual" or "sms".
func CountExpense(source string) {
	expensesRecorded.WithLabelValues(source).Inc()
}
