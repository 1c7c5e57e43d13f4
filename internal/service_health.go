package internal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/justtrackio/gosoline/pkg/appctx"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/clock"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"golang.org/x/sync/errgroup"
)

type HealthSettings struct {
	Interval       time.Duration `cfg:"interval" default:"1h"`
	Concurrency    int           `cfg:"concurrency" default:"4"`
	PersistReports bool          `cfg:"persist_reports" default:"true"`
	HistoryLimit   int           `cfg:"history_limit" default:"500"`
}

func ReadHealthSettings(config cfg.Config) (*HealthSettings, error) {
	settings := &HealthSettings{}
	if err := config.UnmarshalKey("health", settings); err != nil {
		return nil, fmt.Errorf("could not unmarshal health settings: %w", err)
	}

	settings.Concurrency = max(settings.Concurrency, 1)

	return settings, nil
}

// TableEvaluation is the outcome of evaluating one table during a fleet run.
type TableEvaluation struct {
	Table  string
	Report *health.Report
	Err    error
}

type TableHealthSummary struct {
	Table               string   `json:"table"`
	HealthScore         *float64 `json:"health_score,omitempty"`
	Grade               string   `json:"grade,omitempty"`
	AlertCount          int      `json:"alert_count"`
	CriticalAlertCount  int      `json:"critical_alert_count"`
	RecommendationCount int      `json:"recommendation_count"`
	Error               *string  `json:"error,omitempty"`
}

func (e TableEvaluation) Summary() TableHealthSummary {
	summary := TableHealthSummary{
		Table: e.Table,
	}

	if e.Err != nil {
		msg := e.Err.Error()
		summary.Error = &msg

		return summary
	}

	score := e.Report.HealthScore
	summary.HealthScore = &score
	summary.Grade = string(e.Report.Grade)
	summary.AlertCount = len(e.Report.Alerts)
	summary.CriticalAlertCount = e.Report.CriticalAlertCount()
	summary.RecommendationCount = len(e.Report.Recommendations)

	return summary
}

type serviceHealthCtxKey struct{}

func ProvideServiceHealth(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceHealth, error) {
	return appctx.Provide(ctx, serviceHealthCtxKey{}, func() (*ServiceHealth, error) {
		return NewServiceHealth(ctx, config, logger)
	})
}

func NewServiceHealth(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceHealth, error) {
	var err error
	var iceberg *IcebergClient
	var reports *ServiceReports
	var snapshots *ServiceSnapshots
	var settings *HealthSettings

	if iceberg, err = ProvideIcebergClient(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create iceberg client: %w", err)
	}

	if reports, err = NewServiceReports(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create report service: %w", err)
	}

	if snapshots, err = NewServiceSnapshots(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create snapshot service: %w", err)
	}

	if settings, err = ReadHealthSettings(config); err != nil {
		return nil, err
	}

	return NewServiceHealthWithInterfaces(logger, iceberg, reports, snapshots, health.NewEngine(), clock.Provider, settings, iceberg.FileStatsFromManifests()), nil
}

func NewServiceHealthWithInterfaces(
	logger log.Logger,
	loader TableLoader,
	reports ReportStore,
	snapshots SnapshotStore,
	engine *health.Engine,
	clk clock.Clock,
	settings *HealthSettings,
	withFileSizes bool,
) *ServiceHealth {
	return &ServiceHealth{
		logger:        logger.WithChannel("health"),
		loader:        loader,
		reports:       reports,
		snapshots:     snapshots,
		engine:        engine,
		clock:         clk,
		settings:      settings,
		withFileSizes: withFileSizes,
	}
}

type ServiceHealth struct {
	logger        log.Logger
	loader        TableLoader
	reports       ReportStore
	snapshots     SnapshotStore
	engine        *health.Engine
	clock         clock.Clock
	settings      *HealthSettings
	withFileSizes bool
}

// Evaluate loads the table from the catalog and computes its health as of now. With report
// persistence enabled the report is stored and the snapshot cache refreshed.
func (s *ServiceHealth) Evaluate(ctx context.Context, table string) (*health.Report, error) {
	var err error
	var tbl *health.Table

	if tbl, err = s.loader.LoadHealthTable(ctx, table, s.withFileSizes); err != nil {
		return nil, fmt.Errorf("could not load table %s: %w", table, err)
	}

	report := s.engine.Analyze(*tbl, s.clock.Now())

	s.logger.WithFields(log.Fields{
		"table": report.Table,
		"score": report.HealthScore,
		"grade": report.Grade,
	}).Info(ctx, "evaluated table %s: score %.1f (%s), %d alerts, %d recommendations", report.Table, report.HealthScore, report.Grade, len(report.Alerts), len(report.Recommendations))

	if !s.settings.PersistReports {
		return &report, nil
	}

	if _, err = s.reports.SaveReport(ctx, &report); err != nil {
		return nil, fmt.Errorf("could not persist health report: %w", err)
	}

	if s.settings.HistoryLimit > 0 {
		if _, err = s.reports.PruneReports(ctx, report.Table, s.settings.HistoryLimit); err != nil {
			s.logger.Warn(ctx, "could not prune health reports of table %s: %s", report.Table, err)
		}
	}

	if err = s.snapshots.ReplaceSnapshots(ctx, report.Table, tbl.Snapshots); err != nil {
		s.logger.Warn(ctx, "could not cache snapshots of table %s: %s", report.Table, err)
	}

	return &report, nil
}

// EvaluateAll evaluates every table of the default database. A failing table does not abort
// the run; its error is part of the result. Results are ordered by table name.
func (s *ServiceHealth) EvaluateAll(ctx context.Context) ([]TableEvaluation, error) {
	var err error
	var tables []string

	if tables, err = s.loader.ListTableNames(ctx); err != nil {
		return nil, fmt.Errorf("could not list tables: %w", err)
	}

	sort.Strings(tables)
	results := make([]TableEvaluation, len(tables))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(s.settings.Concurrency)

	for i, table := range tables {
		group.Go(func() error {
			report, err := s.Evaluate(gctx, table)
			results[i] = TableEvaluation{
				Table:  table,
				Report: report,
				Err:    err,
			}

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return nil, fmt.Errorf("could not evaluate tables: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	s.logger.Info(ctx, "evaluated %d tables, %d failed", len(results), failed)

	return results, nil
}
