package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	DigSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDigSessionsStarted,
			Help: HelpTextDigSessionsStarted,
		},
	)

	DigOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDigOutcomes,
			Help: HelpTextDigOutcomes,
		},
		[]string{LabelOutcome},
	)

	ItemsDiscovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsDiscovered,
			Help: HelpTextItemsDiscovered,
		},
		[]string{LabelItemType, LabelRarity},
	)

	MemoriesDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMemoriesDiscovered,
			Help: HelpTextMemoriesDiscovered,
		},
	)

	MemoriesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMemoriesCreated,
			Help: HelpTextMemoriesCreated,
		},
	)

	BoostsArmed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoostsArmed,
			Help: HelpTextBoostsArmed,
		},
		[]string{LabelRarity},
	)

	BonusDigsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBonusDigsConsumed,
			Help: HelpTextBonusDigsConsumed,
		},
	)

	AllowanceExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAllowanceExhausted,
			Help: HelpTextAllowanceExhausted,
		},
	)
)
