package internal

import (
	"time"

	"github.com/justtrackio/gosoline/pkg/db"
	"github.com/justtrackio/lakehouse-health/internal/health"
)

const (
	TaskKindExpireSnapshots = "expire_snapshots"
	TaskKindOptimize        = "optimize"

	TaskStatusQueued  = "queued"
	TaskStatusRunning = "running"
	TaskStatusSuccess = "success"
	TaskStatusError   = "error"
)

type Task struct {
	Id           int64                                   `json:"id" db:"id"`
	Table        string                                  `json:"table" db:"table"`
	Kind         string                                  `json:"kind" db:"kind"`
	StartedAt    time.Time                               `json:"started_at" db:"started_at"`
	PickedUpAt   *time.Time                              `json:"picked_up_at" db:"picked_up_at"`
	FinishedAt   *time.Time                              `json:"finished_at" db:"finished_at"`
	Status       string                                  `json:"status" db:"status"`
	ErrorMessage *string                                 `json:"error_message" db:"error_message"`
	Input        db.JSON[map[string]any, db.NonNullable] `json:"input" db:"input"`
	Result       db.JSON[map[string]any, db.NonNullable] `json:"result" db:"result"`
}

type sTask struct {
	Id           int64          `json:"id"`
	Table        string         `json:"table"`
	Kind         string         `json:"kind"`
	StartedAt    time.Time      `json:"started_at"`
	PickedUpAt   *time.Time     `json:"picked_up_at"`
	FinishedAt   *time.Time     `json:"finished_at"`
	Status       string         `json:"status"`
	ErrorMessage *string        `json:"error_message"`
	Input        map[string]any `json:"input"`
	Result       map[string]any `json:"result"`
}

type TaskKindCounts struct {
	Running int64 `json:"running"`
	Queued  int64 `json:"queued"`
}

type TaskCounts struct {
	Running int64                     `json:"running"`
	Queued  int64                     `json:"queued"`
	Kinds   map[string]TaskKindCounts `json:"kinds"`
}

type PaginatedTasks struct {
	Items []sTask `json:"items"`
	Total int64   `json:"total"`
}

// Snapshot is the cached row of a table snapshot as last seen in the catalog.
type Snapshot struct {
	Table        string                               `json:"table" db:"table"`
	CommittedAt  time.Time                            `json:"committed_at" db:"committed_at"`
	SnapshotId   int64                                `json:"snapshot_id" db:"snapshot_id"`
	ParentId     *int64                               `json:"parent_id" db:"parent_id"`
	SchemaId     *int                                 `json:"schema_id" db:"schema_id"`
	Operation    string                               `json:"operation" db:"operation"`
	ManifestList string                               `json:"manifest_list" db:"manifest_list"`
	Summary      db.JSON[map[string]any, db.Nullable] `json:"summary" db:"summary"`
}

type HealthReportRecord struct {
	Id                  int64                                  `json:"id" db:"id"`
	Table               string                                 `json:"table" db:"table"`
	EvaluatedAt         time.Time                              `json:"evaluated_at" db:"evaluated_at"`
	HealthScore         float64                                `json:"health_score" db:"health_score"`
	Grade               string                                 `json:"grade" db:"grade"`
	AlertCount          int                                    `json:"alert_count" db:"alert_count"`
	CriticalAlertCount  int                                    `json:"critical_alert_count" db:"critical_alert_count"`
	RecommendationCount int                                    `json:"recommendation_count" db:"recommendation_count"`
	Report              db.JSON[health.Report, db.NonNullable] `json:"report" db:"report"`
}

type HealthReportSummary struct {
	Id                  int64     `json:"id"`
	Table               string    `json:"table"`
	EvaluatedAt         time.Time `json:"evaluated_at"`
	HealthScore         float64   `json:"health_score"`
	Grade               string    `json:"grade"`
	AlertCount          int       `json:"alert_count"`
	CriticalAlertCount  int       `json:"critical_alert_count"`
	RecommendationCount int       `json:"recommendation_count"`
}

type PaginatedReports struct {
	Items []HealthReportSummary `json:"items"`
	Total int64                 `json:"total"`
}

type ExpireSnapshotsResult struct {
	Table                string `json:"table"`
	RetentionDays        int    `json:"retention_days"`
	RetainLast           int    `json:"retain_last"`
	CleanExpiredMetadata bool   `json:"clean_expired_metadata"`
	Status               string `json:"status"`
}

type OptimizeResult struct {
	Table               string `json:"table"`
	FileSizeThresholdMb int    `json:"file_size_threshold_mb"`
	Where               string `json:"where"`
	Status              string `json:"status"`
}
