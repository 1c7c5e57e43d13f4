package internal

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gosoline-project/sqlc"
	"github.com/jmoiron/sqlx"
	"github.com/justtrackio/gosoline/pkg/exec"
	logmocks "github.com/justtrackio/gosoline/pkg/log/mocks"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/stretchr/testify/suite"
)

func TestServiceReportsSuite(t *testing.T) {
	suite.Run(t, new(ServiceReportsSuite))
}

type ServiceReportsSuite struct {
	suite.Suite
	sqlDB   *sql.DB
	mock    sqlmock.Sqlmock
	service *ServiceReports
}

func (s *ServiceReportsSuite) SetupTest() {
	var err error

	s.sqlDB, s.mock, err = sqlmock.New()
	s.Require().NoError(err)

	logger := logmocks.NewLoggerMock(logmocks.WithMockAll)
	sqlClient := sqlc.NewClientWithInterfaces(logger, sqlx.NewDb(s.sqlDB, "mysql"), exec.NewDefaultExecutor(), sqlc.DefaultConfig())

	s.service = NewServiceReportsWithInterfaces(logger, sqlClient)
}

func (s *ServiceReportsSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.sqlDB.Close()
}

func (s *ServiceReportsSuite) TestSaveReport() {
	report := &health.Report{
		Table:       "events",
		EvaluatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		HealthScore: 71.5,
		Grade:       health.GradeFair,
	}

	s.mock.ExpectExec("INSERT INTO .?health_reports.?").WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := s.service.SaveReport(context.Background(), report)

	s.NoError(err)
	s.Equal(int64(42), id)
}

func (s *ServiceReportsSuite) TestSaveReport_Error() {
	s.mock.ExpectExec("INSERT INTO .?health_reports.?").WillReturnError(errors.New("disk full"))

	_, err := s.service.SaveReport(context.Background(), &health.Report{Table: "events"})

	s.ErrorContains(err, "could not save health report for table events")
}

func (s *ServiceReportsSuite) TestLatestReport() {
	rows := sqlmock.NewRows([]string{"id", "table", "evaluated_at", "health_score", "grade", "alert_count", "critical_alert_count", "recommendation_count", "report"}).
		AddRow(7, "events", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), 91.0, "Excellent", 0, 0, 0, []byte(`{"table":"events","health_score":91,"grade":"Excellent"}`))

	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").WillReturnRows(rows)

	report, err := s.service.LatestReport(context.Background(), "events")

	s.Require().NoError(err)
	s.Equal("events", report.Table)
	s.Equal(91.0, report.HealthScore)
	s.Equal(health.GradeExcellent, report.Grade)
}

func (s *ServiceReportsSuite) TestLatestReport_NotFound() {
	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	report, err := s.service.LatestReport(context.Background(), "events")

	s.Nil(report)
	s.ErrorIs(err, ErrReportNotFound)
}

func (s *ServiceReportsSuite) TestListReports() {
	evaluatedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "table", "evaluated_at", "health_score", "grade", "alert_count", "critical_alert_count", "recommendation_count", "report"}).
		AddRow(9, "events", evaluatedAt, 62.0, "Fair", 2, 1, 2, []byte(`{}`)).
		AddRow(8, "events", evaluatedAt.Add(-time.Hour), 80.0, "Good", 1, 0, 1, []byte(`{}`))

	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(14))
	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").WillReturnRows(rows)

	result, err := s.service.ListReports(context.Background(), "events", 0, -1)

	s.Require().NoError(err)
	s.Equal(int64(14), result.Total)
	s.Require().Len(result.Items, 2)
	s.Equal(int64(9), result.Items[0].Id)
	s.Equal("Fair", result.Items[0].Grade)
	s.Equal(1, result.Items[0].CriticalAlertCount)
	s.Equal(80.0, result.Items[1].HealthScore)
}

func (s *ServiceReportsSuite) TestPruneReports() {
	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	s.mock.ExpectExec("DELETE FROM .?health_reports.?").WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := s.service.PruneReports(context.Background(), "events", 5)

	s.NoError(err)
	s.Equal(int64(3), deleted)
}

func (s *ServiceReportsSuite) TestPruneReports_NothingToPrune() {
	s.mock.ExpectQuery("SELECT .+ FROM .?health_reports.?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	deleted, err := s.service.PruneReports(context.Background(), "events", 5)

	s.NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *ServiceReportsSuite) TestPruneReports_InvalidKeepLast() {
	_, err := s.service.PruneReports(context.Background(), "events", 0)

	s.ErrorContains(err, "keep last must be at least 1")
}
