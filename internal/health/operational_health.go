package health

import (
	"strings"
	"time"
)

// DefaultCompactionEffectiveness stands in until file reduction per
// compaction is measured from manifests.
const DefaultCompactionEffectiveness = 0.8

type SnapshotFrequency struct {
	SnapshotsLastHour    int64   `json:"snapshots_last_hour"`
	SnapshotsLastDay     int64   `json:"snapshots_last_day"`
	SnapshotsLastWeek    int64   `json:"snapshots_last_week"`
	AvgSnapshotsPerHour  float64 `json:"avg_snapshots_per_hour"`
	PeakSnapshotsPerHour int64   `json:"peak_snapshots_per_hour"`
}

type CompactionMetrics struct {
	CompactionCount         int64    `json:"compaction_count"`
	CompactionsLastWeek     int64    `json:"compactions_last_week"`
	DaysSinceLastCompaction *float64 `json:"days_since_last_compaction"`
	AvgFrequencyDays        float64  `json:"avg_frequency_days"`
	Effectiveness           float64  `json:"effectiveness"`
}

type OperationalHealth struct {
	SnapshotFrequency        SnapshotFrequency `json:"snapshot_frequency"`
	OperationDistribution    map[string]int64  `json:"operation_distribution"`
	FailedOperations         int64             `json:"failed_operations"`
	Compaction               CompactionMetrics `json:"compaction"`
	HoursSinceLastCompaction *float64          `json:"hours_since_last_compaction"`
}

type OperationalHealthAnalyzer interface {
	AnalyzeOperations(snapshots []Snapshot, now time.Time) OperationalHealth
}

type SnapshotOperationalHealthAnalyzer struct{}

// IsCompaction reports whether an operation label denotes a file rewrite.
func IsCompaction(operation string) bool {
	return strings.Contains(operation, "rewrite") || strings.Contains(operation, "compact")
}

func (a SnapshotOperationalHealthAnalyzer) AnalyzeOperations(snapshots []Snapshot, now time.Time) OperationalHealth {
	var freq SnapshotFrequency
	var compactions []time.Time
	var compactionsLastWeek int64

	hourAgo := now.Add(-time.Hour)
	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-hoursPerWeek * time.Hour)

	distribution := make(map[string]int64)

	for _, snapshot := range snapshots {
		ts := snapshot.Timestamp()

		if ts.After(hourAgo) {
			freq.SnapshotsLastHour++
		}

		if ts.After(dayAgo) {
			freq.SnapshotsLastDay++
		}

		if ts.After(weekAgo) {
			freq.SnapshotsLastWeek++
		}

		operation := snapshot.Operation()
		distribution[operation]++

		if IsCompaction(operation) {
			compactions = append(compactions, ts)

			if ts.After(weekAgo) {
				compactionsLastWeek++
			}
		}
	}

	if freq.SnapshotsLastWeek > 0 {
		freq.AvgSnapshotsPerHour = float64(freq.SnapshotsLastWeek) / hoursPerWeek
	}

	freq.PeakSnapshotsPerHour = max(freq.SnapshotsLastHour, freq.SnapshotsLastDay/24)

	compaction := CompactionMetrics{
		CompactionCount:     int64(len(compactions)),
		CompactionsLastWeek: compactionsLastWeek,
		Effectiveness:       DefaultCompactionEffectiveness,
	}

	var hoursSince *float64
	if len(compactions) > 0 {
		last := compactions[len(compactions)-1]
		hours := float64(wholeHours(now.Sub(last)))
		days := hours / 24
		hoursSince = &hours
		compaction.DaysSinceLastCompaction = &days
	}

	if len(compactions) > 1 {
		span := wholeDays(compactions[len(compactions)-1].Sub(compactions[0]))
		compaction.AvgFrequencyDays = float64(span) / float64(len(compactions)-1)
	}

	return OperationalHealth{
		SnapshotFrequency:        freq,
		OperationDistribution:    distribution,
		FailedOperations:         0,
		Compaction:               compaction,
		HoursSinceLastCompaction: hoursSince,
	}
}

func wholeHours(d time.Duration) int64 {
	return int64(d / time.Hour)
}

func wholeDays(d time.Duration) int64 {
	return int64(d / (24 * time.Hour))
}
