package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	TargetTimezone = "timezone"
	TargetGemini   = "gemini"

	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

var (
	// RequestsTotal считает обработанные события по маршруту.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_requests_total",
		Help: "Количество событий платформы по маршруту",
	}, []string{"route"})

	PanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skill_panics_total",
		Help: "Количество паник, перехваченных роутером",
	})

	OutboundCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skill_outbound_calls_total",
		Help: "Исходящие вызовы по адресату и результату",
	}, []string{"target", "outcome"})

	OutboundLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skill_outbound_latency_seconds",
		Help:    "Латентность исходящих вызовов",
		Buckets: prometheus.DefBuckets,
	}, []string{"target"})
)
