package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
)

// Outcome labels of trigger_transactions_total
const (
	OutcomeValid           = "valid"
	OutcomeInvalid         = "invalid"
	OutcomeCouldNotUnpack  = "could_not_unpack"
	OutcomeExecutionFailed = "execution_failed"
	OutcomeSuppressed      = "suppressed"
)

// Prometheus metrics of the trigger pipeline
var (
	TriggerTransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trigger_transactions_total",
			Help: "Total number of trigger transactions processed, by outcome",
		},
		[]string{"status"},
	)

	TriggerExecutionFaultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trigger_execution_faults_total",
			Help: "Total number of receiver faults while executing triggers",
		},
	)

	TriggerProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trigger_processing_duration_seconds",
			Help:    "Duration of trigger transaction processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(TriggerTransactionsTotal)
	prometheus.MustRegister(TriggerExecutionFaultsTotal)
	prometheus.MustRegister(TriggerProcessingDuration)
}

// Outcome maps a persisted status to a bounded label value
func Outcome(status string) string {
	switch {
	case status == domain.StatusValid:
		return OutcomeValid
	case status == domain.StatusCouldNotUnpack:
		return OutcomeCouldNotUnpack
	case status == domain.StatusExecutionFailed:
		return OutcomeExecutionFailed
	case strings.HasPrefix(status, domain.StatusInvalidPrefix):
		return OutcomeInvalid
	default:
		return status
	}
}

// ObserveTrigger records one processed trigger
func ObserveTrigger(outcome string, elapsed time.Duration) {
	TriggerTransactionsTotal.WithLabelValues(outcome).Inc()
	TriggerProcessingDuration.Observe(elapsed.Seconds())
}

// ObserveFault counts a receiver fault, whether it surfaced to the processor or was caught by the receiver
func ObserveFault() {
	TriggerExecutionFaultsTotal.Inc()
}
