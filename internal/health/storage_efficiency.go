package health

import (
	"strings"
	"time"
)

// DefaultPartitionEfficiency stands in until partition layouts are analyzed.
const DefaultPartitionEfficiency = 0.85

type SizePoint struct {
	Timestamp time.Time `json:"timestamp"`
	SizeGb    float64   `json:"size_gb"`
}

type StorageEfficiency struct {
	TotalSizeGb               float64     `json:"total_size_gb"`
	StorageGrowthRateGbPerDay float64     `json:"storage_growth_rate_gb_per_day"`
	DeleteRatio               float64     `json:"delete_ratio"`
	UpdateRatio               float64     `json:"update_ratio"`
	DataFreshnessHours        float64     `json:"data_freshness_hours"`
	PartitionEfficiency       float64     `json:"partition_efficiency"`
	SizeHistory               []SizePoint `json:"size_history"`
}

type StorageEfficiencyAnalyzer interface {
	AnalyzeStorage(snapshots []Snapshot, now time.Time) StorageEfficiency
}

type SnapshotStorageEfficiencyAnalyzer struct{}

func (a SnapshotStorageEfficiencyAnalyzer) AnalyzeStorage(snapshots []Snapshot, now time.Time) StorageEfficiency {
	var deleteOps, updateOps, totalOps int64

	result := StorageEfficiency{
		PartitionEfficiency: DefaultPartitionEfficiency,
		SizeHistory:         make([]SizePoint, 0),
	}

	for _, snapshot := range snapshots {
		if snapshot.Summary == nil {
			continue
		}

		if sizeBytes, ok := snapshot.Summary.Float(SummaryTotalSize); ok {
			result.TotalSizeGb = sizeBytes / bytesPerGb
			result.SizeHistory = append(result.SizeHistory, SizePoint{
				Timestamp: snapshot.Timestamp(),
				SizeGb:    result.TotalSizeGb,
			})
		}

		totalOps++
		operation := strings.ToLower(snapshot.Summary.Operation)

		switch {
		case strings.Contains(operation, "delete"):
			deleteOps++
		case strings.Contains(operation, "update"), strings.Contains(operation, "overwrite"):
			updateOps++
		}
	}

	if totalOps > 0 {
		result.DeleteRatio = float64(deleteOps) / float64(totalOps)
		result.UpdateRatio = float64(updateOps) / float64(totalOps)
	}

	if n := len(result.SizeHistory); n > 1 {
		first := result.SizeHistory[0]
		last := result.SizeHistory[n-1]

		if days := wholeDays(last.Timestamp.Sub(first.Timestamp)); days > 0 {
			result.StorageGrowthRateGbPerDay = (last.SizeGb - first.SizeGb) / float64(days)
		}
	}

	if len(snapshots) > 0 {
		latest := snapshots[len(snapshots)-1]
		result.DataFreshnessHours = float64(wholeHours(now.Sub(latest.Timestamp())))
	}

	return result
}
