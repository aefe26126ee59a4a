package metrics

import "github.com/prometheus/client_golang/prometheus"

// Bot Prometheus metrics.
var (
	UpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hetbot",
			Name:      "updates_total",
			Help:      "Total number of handled Telegram updates",
		},
		[]string{"kind"}, // "command" / "button" / "text" / "callback" / "ignored"
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hetbot",
			Name:      "provider_requests_total",
			Help:      "Total number of consumption provider requests",
		},
		[]string{"endpoint", "status"},
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hetbot",
			Name:      "provider_request_duration_seconds",
			Help:      "Consumption provider request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	RemindersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hetbot",
			Name:      "reminders_total",
			Help:      "Daily reminder delivery outcomes",
		},
		[]string{"result"}, // "sent" / "failed"
	)
)

var botMetricsRegistered bool

// RegisterBotMetrics registers Prometheus bot metrics. Must be called once from main.
func RegisterBotMetrics() {
	if botMetricsRegistered {
		return
	}
	prometheus.MustRegister(UpdatesTotal)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(RemindersTotal)
	botMetricsRegistered = true
}
