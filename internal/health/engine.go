package health

import (
	"sort"
	"time"
)

// Report is the health assessment of one table at one instant.
type Report struct {
	Table             string            `json:"table"`
	EvaluatedAt       time.Time         `json:"evaluated_at"`
	SnapshotCount     int               `json:"snapshot_count"`
	FileHealth        FileHealth        `json:"file_health"`
	OperationalHealth OperationalHealth `json:"operational_health"`
	StorageEfficiency StorageEfficiency `json:"storage_efficiency"`
	Trends            Trends            `json:"trends"`
	HealthScore       float64           `json:"health_score"`
	Grade             Grade             `json:"grade"`
	ScoreBreakdown    []ScoreAdjustment `json:"score_breakdown"`
	Alerts            []Alert           `json:"alerts"`
	Recommendations   []Recommendation  `json:"recommendations"`
}

func (r *Report) CriticalAlertCount() int {
	count := 0

	for _, alert := range r.Alerts {
		if alert.Severity == SeverityCritical {
			count++
		}
	}

	return count
}

type EngineOption func(e *Engine)

func WithFileHealthAnalyzer(analyzer FileHealthAnalyzer) EngineOption {
	return func(e *Engine) {
		e.files = analyzer
	}
}

func WithOperationalHealthAnalyzer(analyzer OperationalHealthAnalyzer) EngineOption {
	return func(e *Engine) {
		e.operations = analyzer
	}
}

func WithStorageEfficiencyAnalyzer(analyzer StorageEfficiencyAnalyzer) EngineOption {
	return func(e *Engine) {
		e.storage = analyzer
	}
}

func WithTrendAnalyzer(analyzer TrendAnalyzer) EngineOption {
	return func(e *Engine) {
		e.trends = analyzer
	}
}

// Engine derives health reports from snapshot histories. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	files      FileHealthAnalyzer
	operations OperationalHealthAnalyzer
	storage    StorageEfficiencyAnalyzer
	trends     TrendAnalyzer
}

func NewEngine(options ...EngineOption) *Engine {
	e := &Engine{
		files:      SummaryFileHealthAnalyzer{},
		operations: SnapshotOperationalHealthAnalyzer{},
		storage:    SnapshotStorageEfficiencyAnalyzer{},
		trends:     FixedTrendAnalyzer{},
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

// Analyze evaluates the table as of now. The table is not modified.
func (e *Engine) Analyze(table Table, now time.Time) Report {
	snapshots := NormalizeSnapshots(table.Snapshots)

	metrics := Metrics{
		FileHealth:        e.files.AnalyzeFiles(table, snapshots),
		OperationalHealth: e.operations.AnalyzeOperations(snapshots, now),
		StorageEfficiency: e.storage.AnalyzeStorage(snapshots, now),
		Trends:            e.trends.AnalyzeTrends(snapshots),
	}

	score, breakdown := ComputeScore(metrics)
	alerts := GenerateAlerts(metrics, now)

	return Report{
		Table:             table.QualifiedName(),
		EvaluatedAt:       now,
		SnapshotCount:     len(snapshots),
		FileHealth:        metrics.FileHealth,
		OperationalHealth: metrics.OperationalHealth,
		StorageEfficiency: metrics.StorageEfficiency,
		Trends:            metrics.Trends,
		HealthScore:       score,
		Grade:             GradeForScore(score),
		ScoreBreakdown:    breakdown,
		Alerts:            alerts,
		Recommendations:   GenerateRecommendations(alerts, metrics.Trends),
	}
}

// NormalizeSnapshots returns a copy ordered oldest to newest by timestamp,
// ties broken by snapshot id.
func NormalizeSnapshots(snapshots []Snapshot) []Snapshot {
	sorted := make([]Snapshot, len(snapshots))
	copy(sorted, snapshots)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TimestampMs != sorted[j].TimestampMs {
			return sorted[i].TimestampMs < sorted[j].TimestampMs
		}

		return sorted[i].SnapshotID < sorted[j].SnapshotID
	})

	return sorted
}
