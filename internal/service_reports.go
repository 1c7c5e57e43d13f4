package internal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosoline-project/sqlc"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/db"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
)

const defaultReportPageSize = 20

var ErrReportNotFound = errors.New("no health report found")

func NewServiceReports(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceReports, error) {
	var err error
	var sqlClient sqlc.Client

	if sqlClient, err = sqlc.ProvideClient(ctx, config, logger, "default"); err != nil {
		return nil, fmt.Errorf("could not create sqlc client: %w", err)
	}

	return NewServiceReportsWithInterfaces(logger, sqlClient), nil
}

func NewServiceReportsWithInterfaces(logger log.Logger, sqlClient sqlc.Client) *ServiceReports {
	return &ServiceReports{
		logger:    logger.WithChannel("reports"),
		sqlClient: sqlClient,
	}
}

type ServiceReports struct {
	logger    log.Logger
	sqlClient sqlc.Client
}

func (s *ServiceReports) SaveReport(ctx context.Context, report *health.Report) (int64, error) {
	var err error
	var res sqlc.Result
	var id int64

	record := &HealthReportRecord{
		Table:               report.Table,
		EvaluatedAt:         report.EvaluatedAt,
		HealthScore:         report.HealthScore,
		Grade:               string(report.Grade),
		AlertCount:          len(report.Alerts),
		CriticalAlertCount:  report.CriticalAlertCount(),
		RecommendationCount: len(report.Recommendations),
		Report:              db.NewJSON(*report, db.NonNullable{}),
	}

	if res, err = s.sqlClient.Q().Into("health_reports").Records(record).Exec(ctx); err != nil {
		return 0, fmt.Errorf("could not save health report for table %s: %w", report.Table, err)
	}

	if id, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("could not get last insert id: %w", err)
	}

	return id, nil
}

// LatestReport returns the newest stored report of the table or ErrReportNotFound.
func (s *ServiceReports) LatestReport(ctx context.Context, table string) (*health.Report, error) {
	var record HealthReportRecord

	err := s.sqlClient.Q().From("health_reports").
		Where(sqlc.Eq{"table": table}).
		OrderBy(sqlc.Col("id").Desc()).
		Limit(1).
		Get(ctx, &record)

	if isNoRows(err) {
		return nil, fmt.Errorf("table %s: %w", table, ErrReportNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("could not get latest health report for table %s: %w", table, err)
	}

	report := record.Report.Get()

	return &report, nil
}

func (s *ServiceReports) ListReports(ctx context.Context, table string, limit int, offset int) (*PaginatedReports, error) {
	var err error
	var records []HealthReportRecord
	var count struct {
		Total int64 `db:"total"`
	}

	if limit <= 0 {
		limit = defaultReportPageSize
	}

	if offset < 0 {
		offset = 0
	}

	cnt := s.sqlClient.Q().From("health_reports").Column(sqlc.Col("*").Count().As("total"))
	sel := s.sqlClient.Q().From("health_reports").OrderBy(sqlc.Col("id").Desc())

	if table != "" {
		cnt = cnt.Where(sqlc.Eq{"table": table})
		sel = sel.Where(sqlc.Eq{"table": table})
	}

	if err = cnt.Get(ctx, &count); err != nil {
		return nil, fmt.Errorf("could not get health report count: %w", err)
	}

	if err = sel.Limit(limit).Offset(offset).Select(ctx, &records); err != nil {
		return nil, fmt.Errorf("could not list health reports: %w", err)
	}

	items := make([]HealthReportSummary, len(records))
	for i, r := range records {
		items[i] = HealthReportSummary{
			Id:                  r.Id,
			Table:               r.Table,
			EvaluatedAt:         r.EvaluatedAt,
			HealthScore:         r.HealthScore,
			Grade:               r.Grade,
			AlertCount:          r.AlertCount,
			CriticalAlertCount:  r.CriticalAlertCount,
			RecommendationCount: r.RecommendationCount,
		}
	}

	return &PaginatedReports{
		Items: items,
		Total: count.Total,
	}, nil
}

// PruneReports keeps the newest keepLast reports of the table and deletes the rest.
func (s *ServiceReports) PruneReports(ctx context.Context, table string, keepLast int) (int64, error) {
	var err error
	var res sqlc.Result
	var affected int64
	var cutoff struct {
		Id int64 `db:"id"`
	}

	if keepLast < 1 {
		return 0, fmt.Errorf("keep last must be at least 1")
	}

	err = s.sqlClient.Q().From("health_reports").
		Column(sqlc.Col("id")).
		Where(sqlc.Eq{"table": table}).
		OrderBy(sqlc.Col("id").Desc()).
		Limit(1).
		Offset(keepLast).
		Get(ctx, &cutoff)

	if isNoRows(err) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("could not find prune cutoff for table %s: %w", table, err)
	}

	del := s.sqlClient.Q().Delete("health_reports").
		Where(sqlc.Eq{"table": table}).
		Where("`id` <= ?", cutoff.Id)

	if res, err = del.Exec(ctx); err != nil {
		return 0, fmt.Errorf("could not prune health reports for table %s: %w", table, err)
	}

	if affected, err = res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}

	if affected > 0 {
		s.logger.Info(ctx, "pruned %d health reports of table %s", affected, table)
	}

	return affected, nil
}
