package health

import "fmt"

// Metrics bundles the analyzer outputs the scorer and the alert generator read.
type Metrics struct {
	FileHealth        FileHealth
	OperationalHealth OperationalHealth
	StorageEfficiency StorageEfficiency
	Trends            Trends
}

// thresholdRule is evaluated by both the scorer and the alert generator so the
// two always agree on which thresholds were crossed.
type thresholdRule struct {
	signal          string
	category        AlertCategory
	warning         float64
	critical        float64
	warningPenalty  float64
	criticalPenalty float64
	value           func(m Metrics) (float64, bool)
	message         func(severity AlertSeverity, value float64) string
}

type ruleOutcome struct {
	status    SignalStatus
	value     float64
	threshold float64
	penalty   float64
}

func (r thresholdRule) evaluate(m Metrics) (ruleOutcome, bool) {
	value, ok := r.value(m)
	if !ok {
		return ruleOutcome{status: StatusGood}, false
	}

	switch {
	case value > r.critical:
		return ruleOutcome{status: StatusCritical, value: value, threshold: r.critical, penalty: r.criticalPenalty}, true
	case value > r.warning:
		return ruleOutcome{status: StatusWarning, value: value, threshold: r.warning, penalty: r.warningPenalty}, true
	default:
		return ruleOutcome{status: StatusGood, value: value}, true
	}
}

var thresholdRules = []thresholdRule{
	{
		signal:          "small_file_ratio",
		category:        CategorySmallFiles,
		warning:         SmallFileRatioWarning,
		critical:        SmallFileRatioCritical,
		warningPenalty:  SmallFilePenaltyWarning,
		criticalPenalty: SmallFilePenaltyCritical,
		value: func(m Metrics) (float64, bool) {
			return m.FileHealth.SmallFileRatio, true
		},
		message: func(severity AlertSeverity, value float64) string {
			prefix := "High"
			if severity == SeverityCritical {
				prefix = "Critical"
			}

			return fmt.Sprintf("%s small file ratio: %.1f%% of files are smaller than %gMB", prefix, value*100, SmallFileThresholdMb)
		},
	},
	{
		signal:          "snapshots_last_hour",
		category:        CategoryHighSnapshotFrequency,
		warning:         SnapshotsPerHourWarning,
		critical:        SnapshotsPerHourCritical,
		warningPenalty:  SnapshotFrequencyPenaltyWarning,
		criticalPenalty: SnapshotFrequencyPenaltyCritical,
		value: func(m Metrics) (float64, bool) {
			return float64(m.OperationalHealth.SnapshotFrequency.SnapshotsLastHour), true
		},
		message: func(severity AlertSeverity, value float64) string {
			prefix := "High"
			if severity == SeverityCritical {
				prefix = "Extremely high"
			}

			return fmt.Sprintf("%s snapshot frequency: %d snapshots in the last hour", prefix, int64(value))
		},
	},
	{
		signal:          "days_since_last_compaction",
		category:        CategoryCompactionNeeded,
		warning:         CompactionWarningDays,
		critical:        CompactionCriticalDays,
		warningPenalty:  CompactionPenaltyWarning,
		criticalPenalty: CompactionPenaltyCritical,
		value: func(m Metrics) (float64, bool) {
			days := m.OperationalHealth.Compaction.DaysSinceLastCompaction
			if days == nil {
				return 0, false
			}

			return *days, true
		},
		message: func(severity AlertSeverity, value float64) string {
			if severity == SeverityCritical {
				return fmt.Sprintf("Table needs compaction: %.1f days since last compaction", value)
			}

			return fmt.Sprintf("Compaction overdue: %.1f days since last compaction", value)
		},
	},
	{
		signal:          "storage_growth_rate_gb_per_day",
		category:        CategoryStorageGrowth,
		warning:         StorageGrowthWarningGbPerDay,
		critical:        StorageGrowthCriticalGbPerDay,
		warningPenalty:  StorageGrowthPenaltyWarning,
		criticalPenalty: StorageGrowthPenaltyCritical,
		value: func(m Metrics) (float64, bool) {
			return m.StorageEfficiency.StorageGrowthRateGbPerDay, true
		},
		message: func(severity AlertSeverity, value float64) string {
			prefix := "High"
			if severity == SeverityCritical {
				prefix = "Extremely high"
			}

			return fmt.Sprintf("%s storage growth rate: %.1f GB per day", prefix, value)
		},
	},
}

func severityFor(status SignalStatus) AlertSeverity {
	if status == StatusCritical {
		return SeverityCritical
	}

	return SeverityWarning
}
