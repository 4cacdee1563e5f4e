// Package metrics provides the centralized Prometheus metrics registry for the
// draft toolbox.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PointsToRankConversionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_toolbox",
		Name:      "points_to_rank_conversions_total",
		Help:      "Total number of points-to-rank mean conversions",
	})
	RankToPointsConversionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_toolbox",
		Name:      "rank_to_points_conversions_total",
		Help:      "Total number of rank-to-points mean conversions",
	})
	InverseSolveFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_toolbox",
		Name:      "inverse_solve_failures_total",
		Help:      "Total number of non-converging rank variance solves",
	})
	DraftPicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_toolbox",
		Name:      "draft_picks_total",
		Help:      "Total number of draft picks recorded",
	})
	RankingsRefreshesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ff_toolbox",
		Name:      "rankings_refreshes_total",
		Help:      "Total number of rankings refresh runs",
	})
)

// Gauge metrics
var (
	LastRankingsRefresh = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ff_toolbox",
		Name:      "last_rankings_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the last successful rankings refresh",
	})
	UndraftedPlayers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ff_toolbox",
		Name:      "undrafted_players",
		Help:      "Number of players remaining in the draft pool",
	})
)

// Histogram metrics
var (
	InverseSolveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ff_toolbox",
		Name:      "inverse_solve_duration_seconds",
		Help:      "Duration of rank-to-points variance solves in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	RankingsFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ff_toolbox",
		Name:      "rankings_fetch_duration_seconds",
		Help:      "Duration of rankings source fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PointsToRankConversionsTotal)
		registry.MustRegister(RankToPointsConversionsTotal)
		registry.MustRegister(InverseSolveFailuresTotal)
		registry.MustRegister(DraftPicksTotal)
		registry.MustRegister(RankingsRefreshesTotal)

		registry.MustRegister(LastRankingsRefresh)
		registry.MustRegister(UndraftedPlayers)

		registry.MustRegister(InverseSolveDuration)
		registry.MustRegister(RankingsFetchDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}
