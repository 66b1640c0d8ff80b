package checks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Self-observation metrics exposed on the diagnostics endpoint.
var (
	checkRunsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_check_runs_total",
		Help: "Total number of check invocations, successful or not",
	}, []string{"check_type"})

	checkFailuresCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_check_failures_total",
		Help: "Number of check invocations that ended in an error or panic",
	}, []string{"check_type"})

	activeChecksGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agent_active_checks",
		Help: "Number of checks currently configured and running",
	})
)
