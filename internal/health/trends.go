package health

const trendWindow = 10

type Trends struct {
	FileCountTrend         TrendDirection `json:"file_count_trend"`
	AvgFileSizeTrend       TrendDirection `json:"avg_file_size_trend"`
	SnapshotFrequencyTrend TrendDirection `json:"snapshot_frequency_trend"`
	StorageGrowthTrend     TrendDirection `json:"storage_growth_trend"`
}

// TrendAnalyzer classifies the short term direction of the tracked metrics.
type TrendAnalyzer interface {
	AnalyzeTrends(snapshots []Snapshot) Trends
}

// FixedTrendAnalyzer reports a constant set of directions. It is the default
// until a slope based analyzer over the recent window replaces it.
type FixedTrendAnalyzer struct{}

func (a FixedTrendAnalyzer) AnalyzeTrends(snapshots []Snapshot) Trends {
	_ = RecentSnapshots(snapshots, trendWindow)

	return Trends{
		FileCountTrend:         TrendStable,
		AvgFileSizeTrend:       TrendImproving,
		SnapshotFrequencyTrend: TrendStable,
		StorageGrowthTrend:     TrendDegrading,
	}
}

// RecentSnapshots returns the last n snapshots, newest first.
func RecentSnapshots(snapshots []Snapshot, n int) []Snapshot {
	n = max(0, min(n, len(snapshots)))

	recent := make([]Snapshot, 0, n)
	for i := len(snapshots) - 1; i >= len(snapshots)-n; i-- {
		recent = append(recent, snapshots[i])
	}

	return recent
}
