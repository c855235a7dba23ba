package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds every collector exposed on /metrics
var Registry = prometheus.NewRegistry()

var (
	// ContactSubmissions counts contact form submissions by result
	// (success, invalid, misconfigured, failed)
	ContactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by result",
		},
		[]string{"result"},
	)

	// BacktestTicks counts simulation ticks across all live sessions
	BacktestTicks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backtest_ticks_total",
		Help: "Simulation ticks produced by live backtest sessions",
	})

	// BacktestSessions is the number of connected live backtest sessions
	BacktestSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "backtest_sessions_active",
		Help: "Live backtest sessions currently connected",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ContactSubmissions,
		BacktestTicks,
		BacktestSessions,
	)
}
