package internal

import (
	"context"
	"errors"
	"testing"
	"time"

	logmocks "github.com/justtrackio/gosoline/pkg/log/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestServiceTasksSuite(t *testing.T) {
	suite.Run(t, new(ServiceTasksSuite))
}

type ServiceTasksSuite struct {
	suite.Suite
	enqueuer *MockTaskEnqueuer
	service  *ServiceTasks
}

func (s *ServiceTasksSuite) SetupTest() {
	s.enqueuer = NewMockTaskEnqueuer(s.T())
	s.service = NewServiceTasksWithInterfaces(logmocks.NewLoggerMock(logmocks.WithMockAll), s.enqueuer)
}

func (s *ServiceTasksSuite) TestEnqueueExpireSnapshots() {
	s.enqueuer.EXPECT().
		EnqueueTask(mock.Anything, "events", TaskKindExpireSnapshots, map[string]any{
			"retention_days": 14,
			"retain_last":    20,
		}).
		Return(int64(7), nil)

	id, err := s.service.EnqueueExpireSnapshots(context.Background(), "events", 14, 20)

	s.NoError(err)
	s.Equal(int64(7), id)
}

func (s *ServiceTasksSuite) TestEnqueueExpireSnapshots_RaisesToMinimums() {
	s.enqueuer.EXPECT().
		EnqueueTask(mock.Anything, "events", TaskKindExpireSnapshots, map[string]any{
			"retention_days": minRetentionDays,
			"retain_last":    minRetainLast,
		}).
		Return(int64(8), nil)

	id, err := s.service.EnqueueExpireSnapshots(context.Background(), "events", 1, 2)

	s.NoError(err)
	s.Equal(int64(8), id)
}

func (s *ServiceTasksSuite) TestEnqueueExpireSnapshots_Error() {
	s.enqueuer.EXPECT().
		EnqueueTask(mock.Anything, "events", TaskKindExpireSnapshots, mock.Anything).
		Return(int64(0), errors.New("db down"))

	_, err := s.service.EnqueueExpireSnapshots(context.Background(), "events", 7, 10)

	s.ErrorContains(err, "could not enqueue expire snapshots task")
}

func (s *ServiceTasksSuite) TestEnqueueOptimize() {
	from := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.enqueuer.EXPECT().
		EnqueueTask(mock.Anything, "events", TaskKindOptimize, map[string]any{
			"file_size_threshold_mb": 256,
			"from":                   "2026-03-04T00:00:00Z",
			"to":                     "2026-03-10T00:00:00Z",
		}).
		Return(int64(9), nil)

	id, err := s.service.EnqueueOptimize(context.Background(), "events", 256, from, to)

	s.NoError(err)
	s.Equal(int64(9), id)
}

func (s *ServiceTasksSuite) TestEnqueueOptimize_DefaultThreshold() {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.enqueuer.EXPECT().
		EnqueueTask(mock.Anything, "events", TaskKindOptimize, mock.MatchedBy(func(input map[string]any) bool {
			return input["file_size_threshold_mb"] == defaultFileSizeThresholdMb
		})).
		Return(int64(10), nil)

	_, err := s.service.EnqueueOptimize(context.Background(), "events", 0, from, from)

	s.NoError(err)
}

func (s *ServiceTasksSuite) TestEnqueueOptimize_Validation() {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := s.service.EnqueueOptimize(context.Background(), "events", 128, time.Time{}, to)
	s.ErrorContains(err, "from and to dates are required")

	_, err = s.service.EnqueueOptimize(context.Background(), "events", 128, from, to)
	s.ErrorContains(err, "from date must be before or equal to the to date")
}

func (s *ServiceTasksSuite) TestHasPendingTask() {
	s.enqueuer.EXPECT().HasPendingTask(mock.Anything, "events", TaskKindOptimize).Return(true, nil)

	pending, err := s.service.HasPendingTask(context.Background(), "events", TaskKindOptimize)

	s.NoError(err)
	s.True(pending)
}
