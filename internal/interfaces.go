package internal

import (
	"context"
	"time"

	"github.com/justtrackio/lakehouse-health/internal/health"
)

// TaskClaimer abstracts task queue operations used by the task worker.
type TaskClaimer interface {
	ClaimTask(ctx context.Context) (*Task, error)
	CompleteTask(ctx context.Context, id int64, result map[string]any, err error) error
}

// TaskEnqueuer abstracts task creation.
type TaskEnqueuer interface {
	EnqueueTask(ctx context.Context, table string, kind string, input map[string]any) (int64, error)
	HasPendingTask(ctx context.Context, table string, kind string) (bool, error)
}

// MaintenanceScheduler queues maintenance work for a table.
type MaintenanceScheduler interface {
	EnqueueExpireSnapshots(ctx context.Context, table string, retentionDays int, retainLast int) (int64, error)
	EnqueueOptimize(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) (int64, error)
	HasPendingTask(ctx context.Context, table string, kind string) (bool, error)
}

// MaintenanceExecutor abstracts maintenance execution operations.
type MaintenanceExecutor interface {
	ExecuteExpireSnapshots(ctx context.Context, table string, retentionDays int, retainLast int) (*ExpireSnapshotsResult, error)
	ExecuteOptimize(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) (*OptimizeResult, error)
}

// TableLoader abstracts the catalog reads needed to evaluate a table.
type TableLoader interface {
	LoadHealthTable(ctx context.Context, table string, withFileSizes bool) (*health.Table, error)
	ListTableNames(ctx context.Context) ([]string, error)
}

// PartitionResolver finds the column a table is day-partitioned by.
type PartitionResolver interface {
	DayPartitionColumn(ctx context.Context, table string) (string, error)
}

// ReportStore abstracts health report persistence.
type ReportStore interface {
	SaveReport(ctx context.Context, report *health.Report) (int64, error)
	PruneReports(ctx context.Context, table string, keepLast int) (int64, error)
}

// SnapshotStore abstracts the snapshot cache.
type SnapshotStore interface {
	ReplaceSnapshots(ctx context.Context, table string, snapshots []health.Snapshot) error
}

// HealthEvaluator abstracts single table health evaluation.
type HealthEvaluator interface {
	Evaluate(ctx context.Context, table string) (*health.Report, error)
}

// FleetEvaluator evaluates every table of the catalog.
type FleetEvaluator interface {
	EvaluateAll(ctx context.Context) ([]TableEvaluation, error)
}

// Remediator abstracts turning a report into queued maintenance tasks.
type Remediator interface {
	EnqueueRemediation(ctx context.Context, report *health.Report) (*RemediationResult, error)
}

// BoolSettingReader reads runtime toggles from the settings table.
type BoolSettingReader interface {
	GetBoolSetting(ctx context.Context, key string, defaultValue bool) (bool, error)
}
