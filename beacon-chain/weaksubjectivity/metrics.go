package weaksubjectivity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	violationTypeInconsistency     = "chain_inconsistency"
	violationTypePeriodExceeded    = "period_exceeded"
	violationTypeValidationFailure = "validation_failure"
)

var weakSubjectivityViolations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "beacon_weak_subjectivity_violations_total",
		Help: "Total number of weak subjectivity violations detected, by violation type.",
	},
	[]string{"type"},
)
