package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-trigger-ledger/internal/domain"
	"github.com/feral-file/ff-trigger-ledger/internal/metrics"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{domain.StatusValid, metrics.OutcomeValid},
		{domain.StatusCouldNotUnpack, metrics.OutcomeCouldNotUnpack},
		{domain.StatusExecutionFailed, metrics.OutcomeExecutionFailed},
		{"invalid: insufficient funds", metrics.OutcomeInvalid},
		{"invalid: no trigger target with that hash; insufficient funds", metrics.OutcomeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.Outcome(tt.status))
		})
	}
}

func processingSeconds(t *testing.T) float64 {
	var m dto.Metric
	require.NoError(t, metrics.TriggerProcessingDuration.Write(&m))
	return m.GetHistogram().GetSampleSum()
}

func TestObserveTrigger(t *testing.T) {
	before := testutil.ToFloat64(metrics.TriggerTransactionsTotal.WithLabelValues(metrics.OutcomeInvalid))
	seconds := processingSeconds(t)

	metrics.ObserveTrigger(metrics.OutcomeInvalid, 250*time.Millisecond)

	after := testutil.ToFloat64(metrics.TriggerTransactionsTotal.WithLabelValues(metrics.OutcomeInvalid))
	assert.Equal(t, before+1, after)
	assert.InDelta(t, seconds+0.25, processingSeconds(t), 1e-9)
}

func TestObserveFault(t *testing.T) {
	before := testutil.ToFloat64(metrics.TriggerExecutionFaultsTotal)

	metrics.ObserveFault()

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.TriggerExecutionFaultsTotal))
}
