package health

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "Warning"
	SeverityCritical AlertSeverity = "Critical"
)

type AlertCategory string

const (
	CategorySmallFiles            AlertCategory = "SmallFiles"
	CategoryHighSnapshotFrequency AlertCategory = "HighSnapshotFrequency"
	CategoryCompactionNeeded      AlertCategory = "CompactionNeeded"
	CategoryStorageGrowth         AlertCategory = "StorageGrowth"
)

// AlertCategories lists every category in evaluation order.
var AlertCategories = []AlertCategory{
	CategorySmallFiles,
	CategoryHighSnapshotFrequency,
	CategoryCompactionNeeded,
	CategoryStorageGrowth,
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type ActionType string

const (
	ActionCompaction      ActionType = "Compaction"
	ActionOptimization    ActionType = "Optimization"
	ActionRetentionPolicy ActionType = "RetentionPolicy"
)

type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
	EffortHigh   Effort = "High"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "Improving"
	TrendStable    TrendDirection = "Stable"
	TrendDegrading TrendDirection = "Degrading"
)

type Grade string

const (
	GradeExcellent Grade = "Excellent"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradePoor      Grade = "Poor"
	GradeCritical  Grade = "Critical"
)

// GradeForScore maps a 0-100 score onto its grade band.
func GradeForScore(score float64) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 75:
		return GradeGood
	case score >= 60:
		return GradeFair
	case score >= 40:
		return GradePoor
	default:
		return GradeCritical
	}
}

type SignalStatus string

const (
	StatusGood     SignalStatus = "Good"
	StatusWarning  SignalStatus = "Warning"
	StatusCritical SignalStatus = "Critical"
)
