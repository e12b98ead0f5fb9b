package calcserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var calculationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rollercalc_calculations",
	Help: "Number of calculations served, by endpoint",
}, []string{"endpoint"})

var leagueCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rollercalc_league_resolutions",
	Help: "Leagues picked for earnings and simulations",
}, []string{"league"})

var feedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rollercalc_feed_uploads",
	Help: "League feed uploads by outcome",
}, []string{"result"})

var errorCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rollercalc_request_errors",
	Help: "Failed requests by endpoint and status",
}, []string{"endpoint", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "rollercalc_request_duration_seconds",
	Help:    "Request latency by endpoint",
	Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
}, []string{"endpoint"})

var activeLeagues = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "rollercalc_active_leagues",
	Help: "Number of leagues in the active table",
})

func RecordCalculation(endpoint string) {
	calculationCounter.WithLabelValues(endpoint).Inc()
}

func RecordLeague(name string) {
	leagueCounter.WithLabelValues(name).Inc()
}

func RecordFeed(result string) {
	feedCounter.WithLabelValues(result).Inc()
}

func RecordError(endpoint string, status int) {
	errorCounter.WithLabelValues(endpoint, http.StatusText(status)).Inc()
}

func StartPromServer(logger *zap.Logger, port string) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info("hosting prom stats on " + port + "/metrics")
		if err := http.ListenAndServe(port, mux); err != nil {
			logger.Error("prom server stopped", zap.Error(err))
		}
	}()
}
