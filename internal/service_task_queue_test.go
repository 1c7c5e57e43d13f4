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
	"github.com/justtrackio/gosoline/pkg/clock"
	"github.com/justtrackio/gosoline/pkg/exec"
	logmocks "github.com/justtrackio/gosoline/pkg/log/mocks"
	"github.com/stretchr/testify/suite"
)

var taskColumns = []string{"id", "table", "kind", "started_at", "picked_up_at", "finished_at", "status", "error_message", "input", "result"}

func TestServiceTaskQueueSuite(t *testing.T) {
	suite.Run(t, new(ServiceTaskQueueSuite))
}

type ServiceTaskQueueSuite struct {
	suite.Suite
	now     time.Time
	sqlDB   *sql.DB
	mock    sqlmock.Sqlmock
	service *ServiceTaskQueue
}

func (s *ServiceTaskQueueSuite) SetupTest() {
	var err error

	s.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s.sqlDB, s.mock, err = sqlmock.New()
	s.Require().NoError(err)

	logger := logmocks.NewLoggerMock(logmocks.WithMockAll)
	sqlClient := sqlc.NewClientWithInterfaces(logger, sqlx.NewDb(s.sqlDB, "mysql"), exec.NewDefaultExecutor(), sqlc.DefaultConfig())

	s.service = NewServiceTaskQueueWithInterfaces(logger, sqlClient, clock.NewFakeClockAt(s.now))
}

func (s *ServiceTaskQueueSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.sqlDB.Close()
}

func (s *ServiceTaskQueueSuite) queuedTask(id int64) *sqlmock.Rows {
	return sqlmock.NewRows(taskColumns).
		AddRow(id, "events", TaskKindOptimize, s.now.Add(-time.Minute), nil, nil, TaskStatusQueued, nil, []byte(`{"file_size_threshold_mb":128}`), []byte(`{}`))
}

func (s *ServiceTaskQueueSuite) TestEnqueueTask() {
	s.mock.ExpectExec("INSERT INTO .?tasks.?").WillReturnResult(sqlmock.NewResult(17, 1))

	id, err := s.service.EnqueueTask(context.Background(), "events", TaskKindExpireSnapshots, map[string]any{"retain_last": 10})

	s.NoError(err)
	s.Equal(int64(17), id)
}

func (s *ServiceTaskQueueSuite) TestClaimTask() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnRows(s.queuedTask(3))
	s.mock.ExpectExec("UPDATE .?tasks.?").WillReturnResult(sqlmock.NewResult(0, 1))

	task, err := s.service.ClaimTask(context.Background())

	s.Require().NoError(err)
	s.Require().NotNil(task)
	s.Equal(int64(3), task.Id)
	s.Equal(TaskStatusRunning, task.Status)
	s.Require().NotNil(task.PickedUpAt)
	s.True(s.now.Equal(*task.PickedUpAt))
	s.Equal(float64(128), task.Input.Get()["file_size_threshold_mb"])
}

func (s *ServiceTaskQueueSuite) TestClaimTask_Empty() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnRows(sqlmock.NewRows(taskColumns))

	task, err := s.service.ClaimTask(context.Background())

	s.NoError(err)
	s.Nil(task)
}

func (s *ServiceTaskQueueSuite) TestClaimTask_QueryError() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnError(errors.New("connection reset"))

	task, err := s.service.ClaimTask(context.Background())

	s.Nil(task)
	s.ErrorContains(err, "could not find queued task")
}

func (s *ServiceTaskQueueSuite) TestClaimTask_LostRace() {
	for i := int64(1); i <= 3; i++ {
		s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnRows(s.queuedTask(i))
		s.mock.ExpectExec("UPDATE .?tasks.?").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	task, err := s.service.ClaimTask(context.Background())

	s.NoError(err)
	s.Nil(task)
}

func (s *ServiceTaskQueueSuite) TestHasPendingTask() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(1))

	pending, err := s.service.HasPendingTask(context.Background(), "events", TaskKindOptimize)

	s.NoError(err)
	s.True(pending)
}

func (s *ServiceTaskQueueSuite) TestHasPendingTask_None() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))

	pending, err := s.service.HasPendingTask(context.Background(), "events", TaskKindOptimize)

	s.NoError(err)
	s.False(pending)
}

func (s *ServiceTaskQueueSuite) TestCompleteTask_Error() {
	s.mock.ExpectExec("UPDATE .?tasks.?").WillReturnError(errors.New("deadlock"))

	err := s.service.CompleteTask(context.Background(), 3, map[string]any{}, errors.New("optimize failed"))

	s.ErrorContains(err, "could not complete task")
}

func (s *ServiceTaskQueueSuite) TestTaskCounts() {
	rows := sqlmock.NewRows([]string{"status", "kind", "count"}).
		AddRow(TaskStatusQueued, TaskKindOptimize, 3).
		AddRow(TaskStatusQueued, TaskKindExpireSnapshots, 1).
		AddRow(TaskStatusRunning, TaskKindOptimize, 2)
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.? WHERE .+ GROUP BY").WillReturnRows(rows)

	counts, err := s.service.TaskCounts(context.Background(), "")

	s.Require().NoError(err)
	s.Equal(int64(2), counts.Running)
	s.Equal(int64(4), counts.Queued)
	s.Equal(TaskKindCounts{Running: 2, Queued: 3}, counts.Kinds[TaskKindOptimize])
	s.Equal(TaskKindCounts{Queued: 1}, counts.Kinds[TaskKindExpireSnapshots])
}

func (s *ServiceTaskQueueSuite) TestTaskCounts_Table() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.? WHERE .+table.+ GROUP BY").
		WithArgs("events", TaskStatusQueued, TaskStatusRunning).
		WillReturnRows(sqlmock.NewRows([]string{"status", "kind", "count"}))

	counts, err := s.service.TaskCounts(context.Background(), "events")

	s.Require().NoError(err)
	s.Zero(counts.Running)
	s.Zero(counts.Queued)
	s.Empty(counts.Kinds)
}

func (s *ServiceTaskQueueSuite) TestListTasks() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.? WHERE .+kind.+ IN").
		WithArgs("events", TaskKindOptimize).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(21))
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.? WHERE .+ ORDER BY .?started_at.? DESC").
		WillReturnRows(s.queuedTask(5))

	result, err := s.service.ListTasks(context.Background(), TaskFilter{
		Table:  "events",
		Kinds:  []string{TaskKindOptimize},
		Offset: -4,
	})

	s.Require().NoError(err)
	s.Equal(int64(21), result.Total)
	s.Require().Len(result.Items, 1)
	s.Equal(int64(5), result.Items[0].Id)
	s.Equal(TaskStatusQueued, result.Items[0].Status)
	s.Equal(map[string]any{"file_size_threshold_mb": float64(128)}, result.Items[0].Input)
}

func (s *ServiceTaskQueueSuite) TestListTasks_CountError() {
	s.mock.ExpectQuery("SELECT .+ FROM .?tasks.?").WillReturnError(errors.New("connection reset"))

	_, err := s.service.ListTasks(context.Background(), TaskFilter{})

	s.ErrorContains(err, "could not get task count")
}

func (s *ServiceTaskQueueSuite) TestFlushTasks() {
	s.mock.ExpectExec("DELETE FROM .?tasks.? WHERE .+status.+ IN .+finished_at").
		WithArgs(TaskStatusSuccess, TaskStatusError, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 9))

	deleted, err := s.service.FlushTasks(context.Background(), 72*time.Hour)

	s.NoError(err)
	s.Equal(int64(9), deleted)
}

func (s *ServiceTaskQueueSuite) TestFlushTasks_NegativeAge() {
	_, err := s.service.FlushTasks(context.Background(), -time.Hour)

	s.ErrorContains(err, "older than must not be negative")
}
