package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/justtrackio/gosoline/pkg/db"
	logmocks "github.com/justtrackio/gosoline/pkg/log/mocks"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/marusama/semaphore/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestModuleTasksSuite(t *testing.T) {
	suite.Run(t, new(ModuleTasksSuite))
}

type ModuleTasksSuite struct {
	suite.Suite
	module    *ModuleTasks
	claimer   *MockTaskClaimer
	executor  *MockMaintenanceExecutor
	evaluator *MockHealthEvaluator
}

func (s *ModuleTasksSuite) SetupTest() {
	s.claimer = NewMockTaskClaimer(s.T())
	s.executor = NewMockMaintenanceExecutor(s.T())
	s.evaluator = NewMockHealthEvaluator(s.T())

	logger := logmocks.NewLoggerMock(logmocks.WithMockAll)

	s.module = NewModuleTasksWithInterfaces(logger, s.claimer, s.executor, s.evaluator, time.Millisecond, semaphore.New(2))
}

func (s *ModuleTasksSuite) optimizeTask(id int64, table string, thresholdMb int) *Task {
	return &Task{
		Id:    id,
		Table: table,
		Kind:  TaskKindOptimize,
		Input: db.NewJSON(map[string]any{
			"file_size_threshold_mb": float64(thresholdMb),
			"from":                   time.Now().Format(time.RFC3339),
			"to":                     time.Now().Format(time.RFC3339),
		}, db.NonNullable{}),
	}
}

func (s *ModuleTasksSuite) expireTask(id int64, table string, retentionDays int, retainLast int) *Task {
	return &Task{
		Id:    id,
		Table: table,
		Kind:  TaskKindExpireSnapshots,
		Input: db.NewJSON(map[string]any{
			"retention_days": float64(retentionDays),
			"retain_last":    float64(retainLast),
		}, db.NonNullable{}),
	}
}

func (s *ModuleTasksSuite) expectReevaluation(table string) {
	s.evaluator.EXPECT().
		Evaluate(mock.Anything, table).
		Return(&health.Report{Table: table, HealthScore: 92, Grade: health.GradeExcellent}, nil).
		Maybe()
}

func (s *ModuleTasksSuite) TestProcessTask_ExpireSnapshots() {
	ctx := context.Background()

	task := s.expireTask(1, "events", 7, 5)

	s.executor.EXPECT().
		ExecuteExpireSnapshots(mock.Anything, "events", 7, 5).
		Return(&ExpireSnapshotsResult{
			Table:                "events",
			RetentionDays:        7,
			RetainLast:           5,
			CleanExpiredMetadata: true,
			Status:               "ok",
		}, nil)

	s.evaluator.EXPECT().
		Evaluate(mock.Anything, "events").
		Return(&health.Report{Table: "events", HealthScore: 85, Grade: health.GradeGood}, nil)

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(1), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err == nil
		})).
		Run(func(ctx context.Context, id int64, result map[string]any, err error) {
			s.Equal("events", result["table"])
			s.Equal(7, result["retention_days"])
			s.Equal(5, result["retain_last"])
			s.Equal(true, result["clean_expired_metadata"])
			s.Equal("ok", result["status"])
			s.Equal(85.0, result["health_score"])
			s.Equal("Good", result["grade"])
		}).
		Return(nil)

	err := s.module.processTask(ctx, task)

	s.NoError(err)
}

func (s *ModuleTasksSuite) TestProcessTask_ExpireSnapshotsWithIntInput() {
	ctx := context.Background()

	task := &Task{
		Id:    6,
		Table: "events",
		Kind:  TaskKindExpireSnapshots,
		Input: db.NewJSON(map[string]any{
			"retention_days": 14,
			"retain_last":    "20",
		}, db.NonNullable{}),
	}

	s.executor.EXPECT().
		ExecuteExpireSnapshots(mock.Anything, "events", 14, 20).
		Return(&ExpireSnapshotsResult{Table: "events", RetentionDays: 14, RetainLast: 20, Status: "ok"}, nil)
	s.expectReevaluation("events")

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(6), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err == nil
		})).
		Return(nil)

	s.NoError(s.module.processTask(ctx, task))
}

func (s *ModuleTasksSuite) TestProcessTask_Optimize() {
	ctx := context.Background()

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	task := &Task{
		Id:    3,
		Table: "events",
		Kind:  TaskKindOptimize,
		Input: db.NewJSON(map[string]any{
			"file_size_threshold_mb": float64(100),
			"from":                   from.Format(time.RFC3339),
			"to":                     to.Format(time.RFC3339),
		}, db.NonNullable{}),
	}

	s.executor.EXPECT().
		ExecuteOptimize(mock.Anything, "events", 100, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, table string, fileSizeThresholdMb int, fromTime time.Time, toTime time.Time) {
			s.True(from.Equal(fromTime))
			s.True(to.Equal(toTime))
		}).
		Return(&OptimizeResult{
			Table:               "events",
			FileSizeThresholdMb: 100,
			Where:               "date(\"event_time\") >= date '2026-01-01' AND date(\"event_time\") <= date '2026-01-31'",
			Status:              "ok",
		}, nil)
	s.expectReevaluation("events")

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(3), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err == nil
		})).
		Run(func(ctx context.Context, id int64, result map[string]any, err error) {
			s.Equal("events", result["table"])
			s.Equal(100, result["file_size_threshold_mb"])
			s.Equal("ok", result["status"])
		}).
		Return(nil)

	err := s.module.processTask(ctx, task)

	s.NoError(err)
}

func (s *ModuleTasksSuite) TestProcessTask_ReevaluationFailureKeepsSuccess() {
	ctx := context.Background()
	task := s.optimizeTask(8, "events", 64)

	s.executor.EXPECT().
		ExecuteOptimize(mock.Anything, "events", 64, mock.Anything, mock.Anything).
		Return(&OptimizeResult{Table: "events", FileSizeThresholdMb: 64, Status: "ok"}, nil)

	s.evaluator.EXPECT().
		Evaluate(mock.Anything, "events").
		Return(nil, errors.New("catalog unavailable"))

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(8), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err == nil
		})).
		Run(func(ctx context.Context, id int64, result map[string]any, err error) {
			s.Equal("ok", result["status"])
			s.NotContains(result, "health_score")
		}).
		Return(nil)

	s.NoError(s.module.processTask(ctx, task))
}

func (s *ModuleTasksSuite) TestProcessTask_Failures() {
	tests := []struct {
		name   string
		task   *Task
		setup  func()
		errMsg string
	}{
		{
			name: "unknown kind",
			task: &Task{
				Id:    4,
				Table: "events",
				Kind:  "rewrite_manifests",
				Input: db.NewJSON(map[string]any{}, db.NonNullable{}),
			},
			errMsg: "unknown task kind",
		},
		{
			name: "invalid from date",
			task: &Task{
				Id:    7,
				Table: "events",
				Kind:  TaskKindOptimize,
				Input: db.NewJSON(map[string]any{
					"file_size_threshold_mb": float64(100),
					"from":                   "yesterday",
					"to":                     "2026-03-10T00:00:00Z",
				}, db.NonNullable{}),
			},
			errMsg: "invalid from date",
		},
		{
			name: "trino failure",
			task: s.optimizeTask(5, "events", 100),
			setup: func() {
				s.executor.EXPECT().
					ExecuteOptimize(mock.Anything, "events", 100, mock.Anything, mock.Anything).
					Return(nil, errors.New("trino connection failed"))
			},
			errMsg: "trino connection failed",
		},
		{
			name: "expire failure",
			task: s.expireTask(9, "clicks", 7, 10),
			setup: func() {
				s.executor.EXPECT().
					ExecuteExpireSnapshots(mock.Anything, "clicks", 7, 10).
					Return(nil, errors.New("access denied"))
			},
			errMsg: "access denied",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setup != nil {
				tt.setup()
			}

			var capturedErr error
			s.claimer.EXPECT().
				CompleteTask(mock.Anything, tt.task.Id, mock.Anything, mock.Anything).
				Run(func(ctx context.Context, id int64, result map[string]any, err error) {
					capturedErr = err
					s.Nil(result)
				}).
				Return(nil)

			s.NoError(s.module.processTask(context.Background(), tt.task))
			s.ErrorContains(capturedErr, tt.errMsg)
			s.evaluator.AssertNotCalled(s.T(), "Evaluate", mock.Anything, mock.Anything)
		})
	}
}

func (s *ModuleTasksSuite) TestSetWorkerCount() {
	s.Equal(2, s.module.GetWorkerCount())

	s.module.SetWorkerCount(5)
	s.Equal(5, s.module.GetWorkerCount())

	s.module.SetWorkerCount(0)
	s.Equal(1, s.module.GetWorkerCount())

	s.module.SetWorkerCount(-5)
	s.Equal(1, s.module.GetWorkerCount())
}

func (s *ModuleTasksSuite) TestRun_ProcessesTask() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	task := s.optimizeTask(1, "events", 100)

	callCount := 0
	s.claimer.EXPECT().
		ClaimTask(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*Task, error) {
			callCount++
			if callCount == 1 {
				return task, nil
			}

			cancel()

			return nil, nil
		}).
		Maybe()

	s.executor.EXPECT().
		ExecuteOptimize(mock.Anything, "events", 100, mock.Anything, mock.Anything).
		Return(&OptimizeResult{
			Table:               "events",
			FileSizeThresholdMb: 100,
			Status:              "ok",
		}, nil).
		Once()
	s.expectReevaluation("events")

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(1), mock.Anything, mock.MatchedBy(func(err error) bool {
			return err == nil
		})).
		Return(nil).
		Once()

	err := s.module.Run(ctx)
	s.NoError(err)

	s.GreaterOrEqual(callCount, 1)
}

func (s *ModuleTasksSuite) TestRun_NoTaskAvailable() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	callCount := 0
	s.claimer.EXPECT().
		ClaimTask(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*Task, error) {
			callCount++
			if callCount >= 3 {
				cancel()
			}

			return nil, nil
		}).
		Maybe()

	err := s.module.Run(ctx)
	s.NoError(err)
	s.GreaterOrEqual(callCount, 3)
}

func (s *ModuleTasksSuite) TestRun_ClaimTaskError() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	callCount := 0
	s.claimer.EXPECT().
		ClaimTask(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*Task, error) {
			callCount++
			if callCount >= 3 {
				cancel()
			}

			return nil, errors.New("db connection failed")
		}).
		Maybe()

	err := s.module.Run(ctx)
	s.NoError(err)
	s.GreaterOrEqual(callCount, 3)
}

func (s *ModuleTasksSuite) TestRun_ParallelTaskProcessing() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	task1 := s.optimizeTask(1, "events", 100)
	task2 := s.optimizeTask(2, "clicks", 200)

	task1Started := make(chan struct{})
	task2Started := make(chan struct{})
	executorUnblock := make(chan struct{})

	callCount := 0
	tasksDone := false
	s.claimer.EXPECT().
		ClaimTask(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*Task, error) {
			callCount++
			switch callCount {
			case 1:
				return task1, nil
			case 2:
				return task2, nil
			}

			if !tasksDone {
				tasksDone = true
				go func() {
					time.Sleep(20 * time.Millisecond)
					cancel()
				}()
			}

			return nil, nil
		}).
		Maybe()

	s.executor.EXPECT().
		ExecuteOptimize(mock.Anything, "events", 100, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) {
			close(task1Started)
			<-executorUnblock
		}).
		Return(&OptimizeResult{Table: "events", FileSizeThresholdMb: 100, Status: "ok"}, nil).
		Once()

	s.executor.EXPECT().
		ExecuteOptimize(mock.Anything, "clicks", 200, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) {
			close(task2Started)
			<-executorUnblock
		}).
		Return(&OptimizeResult{Table: "clicks", FileSizeThresholdMb: 200, Status: "ok"}, nil).
		Once()

	s.expectReevaluation("events")
	s.expectReevaluation("clicks")

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil).
		Once()

	s.claimer.EXPECT().
		CompleteTask(mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return(nil).
		Once()

	runDone := make(chan error)
	go func() {
		runDone <- s.module.Run(ctx)
	}()

	select {
	case <-task1Started:
	case <-time.After(time.Second):
		s.Fail("task1 did not start in time")
	}

	select {
	case <-task2Started:
	case <-time.After(time.Second):
		s.Fail("task2 did not start in time")
	}

	close(executorUnblock)

	err := <-runDone
	if err != nil && !errors.Is(err, context.Canceled) {
		s.Failf("unexpected error from Run", "got: %v", err)
	}

	s.GreaterOrEqual(callCount, 2)
}
