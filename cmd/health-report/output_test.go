package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retentionRecommendation() health.Recommendation {
	return health.Recommendation{
		Priority:         health.PriorityLow,
		ActionType:       health.ActionRetentionPolicy,
		Description:      "Expire old snapshots",
		EstimatedBenefit: "Slower storage growth",
		EffortLevel:      health.EffortLow,
	}
}

func TestWriteReport_RecommendationsWithoutAlerts(t *testing.T) {
	out := &bytes.Buffer{}
	report := &health.Report{
		Table:           "events",
		EvaluatedAt:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		HealthScore:     100,
		Grade:           health.GradeExcellent,
		Recommendations: []health.Recommendation{retentionRecommendation()},
	}

	require.NoError(t, writeReport(out, report))

	assert.Contains(t, out.String(), "No alerts.")
	assert.Contains(t, out.String(), "RetentionPolicy")
	assert.Contains(t, out.String(), "Expire old snapshots")
}

func TestWriteReport_AlertsAndRecommendations(t *testing.T) {
	out := &bytes.Buffer{}
	report := &health.Report{
		Table:       "events",
		EvaluatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		HealthScore: 70,
		Grade:       health.GradeFair,
		Alerts: []health.Alert{
			{Severity: health.SeverityWarning, Category: health.CategorySmallFiles, Message: "Many small files", MetricValue: 0.4, Threshold: 0.3},
		},
		Recommendations: []health.Recommendation{
			{Priority: health.PriorityHigh, ActionType: health.ActionCompaction, Description: "Compact small files", EffortLevel: health.EffortMedium},
			retentionRecommendation(),
		},
	}

	require.NoError(t, writeReport(out, report))

	assert.NotContains(t, out.String(), "No alerts.")
	assert.Contains(t, out.String(), "Many small files")
	assert.Contains(t, out.String(), "Compaction")
	assert.Contains(t, out.String(), "RetentionPolicy")
}

func TestWriteReport_Empty(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, writeReport(out, &health.Report{Table: "events", Grade: health.GradeExcellent, HealthScore: 100}))

	assert.Contains(t, out.String(), "No alerts.")
	assert.NotContains(t, out.String(), "PRIORITY")
}
