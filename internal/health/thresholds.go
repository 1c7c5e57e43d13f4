package health

// File size tiers in MB.
const (
	TinyFileThresholdMb  = 16.0
	SmallFileThresholdMb = 64.0
	OptimalFileMaxMb     = 512.0
)

const (
	SmallFileRatioWarning  = 0.3
	SmallFileRatioCritical = 0.5

	SnapshotsPerHourWarning  = 10
	SnapshotsPerHourCritical = 20

	CompactionWarningDays  = 7.0
	CompactionCriticalDays = 14.0

	StorageGrowthWarningGbPerDay  = 100.0
	StorageGrowthCriticalGbPerDay = 500.0
)

// Score adjustments applied when a threshold is crossed.
const (
	SmallFilePenaltyWarning  = 15.0
	SmallFilePenaltyCritical = 30.0

	SnapshotFrequencyPenaltyWarning  = 10.0
	SnapshotFrequencyPenaltyCritical = 20.0

	CompactionPenaltyWarning  = 12.0
	CompactionPenaltyCritical = 25.0

	StorageGrowthPenaltyWarning  = 8.0
	StorageGrowthPenaltyCritical = 15.0

	FileCountTrendAdjustment = 5.0
)

const (
	bytesPerMb = 1024.0 * 1024.0
	bytesPerGb = 1024.0 * 1024.0 * 1024.0

	hoursPerWeek = 7 * 24
)
