package health_test

import (
	"testing"

	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Int(t *testing.T) {
	tests := []struct {
		name     string
		summary  *health.Summary
		expected int64
	}{
		{name: "nil summary", summary: nil, expected: 0},
		{name: "absent", summary: &health.Summary{}, expected: 0},
		{name: "plain", summary: &health.Summary{Properties: map[string]string{"k": "42"}}, expected: 42},
		{name: "padded", summary: &health.Summary{Properties: map[string]string{"k": " 42 "}}, expected: 42},
		{name: "leading zero", summary: &health.Summary{Properties: map[string]string{"k": "010"}}, expected: 10},
		{name: "negative", summary: &health.Summary{Properties: map[string]string{"k": "-5"}}, expected: 0},
		{name: "fraction", summary: &health.Summary{Properties: map[string]string{"k": "1.5"}}, expected: 0},
		{name: "garbage", summary: &health.Summary{Properties: map[string]string{"k": "many"}}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.summary.Int("k"))
		})
	}
}

func TestSummary_Float(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "integer", raw: "1048576", expected: 1048576, ok: true},
		{name: "decimal", raw: "12.5", expected: 12.5, ok: true},
		{name: "exponent", raw: "1e3", expected: 1000, ok: true},
		{name: "nan", raw: "NaN", expected: 0, ok: false},
		{name: "inf", raw: "+Inf", expected: 0, ok: false},
		{name: "garbage", raw: "big", expected: 0, ok: false},
		{name: "empty", raw: "", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := &health.Summary{Properties: map[string]string{"k": tt.raw}}

			value, ok := summary.Float("k")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestSnapshot_OperationWithoutSummary(t *testing.T) {
	assert.Equal(t, "unknown", health.Snapshot{}.Operation())
	assert.Equal(t, "append", health.Snapshot{Summary: &health.Summary{Operation: "append"}}.Operation())
}

func TestTable_QualifiedName(t *testing.T) {
	assert.Equal(t, "events", health.Table{Name: "events"}.QualifiedName())
	assert.Equal(t, "main.events", health.Table{Name: "events", Namespace: "main"}.QualifiedName())
}

func TestGradeForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected health.Grade
	}{
		{100, health.GradeExcellent},
		{90, health.GradeExcellent},
		{89.9, health.GradeGood},
		{75, health.GradeGood},
		{60, health.GradeFair},
		{40, health.GradePoor},
		{39.9, health.GradeCritical},
		{0, health.GradeCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, health.GradeForScore(tt.score), "score %v", tt.score)
	}
}

func TestRecentSnapshots(t *testing.T) {
	snapshots := []health.Snapshot{{SnapshotID: 1}, {SnapshotID: 2}, {SnapshotID: 3}}

	assert.Equal(t, []health.Snapshot{{SnapshotID: 3}, {SnapshotID: 2}}, health.RecentSnapshots(snapshots, 2))
	assert.Len(t, health.RecentSnapshots(snapshots, 10), 3)
	assert.Empty(t, health.RecentSnapshots(snapshots, -1))
	assert.Empty(t, health.RecentSnapshots(nil, 10))
}
