package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

const (
	minRetentionDays           = 7
	minRetainLast              = 10
	defaultFileSizeThresholdMb = 128
)

func NewServiceTasks(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceTasks, error) {
	var err error
	var serviceTaskQueue *ServiceTaskQueue

	if serviceTaskQueue, err = NewServiceTaskQueue(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create task queue service: %w", err)
	}

	return NewServiceTasksWithInterfaces(logger, serviceTaskQueue), nil
}

func NewServiceTasksWithInterfaces(logger log.Logger, enqueuer TaskEnqueuer) *ServiceTasks {
	return &ServiceTasks{
		logger:   logger.WithChannel("tasks"),
		enqueuer: enqueuer,
	}
}

// ServiceTasks validates maintenance requests and turns them into queued tasks.
type ServiceTasks struct {
	logger   log.Logger
	enqueuer TaskEnqueuer
}

// EnqueueExpireSnapshots enqueues a task to expire old snapshots for a table. Values below
// the minimums are raised to them.
func (s *ServiceTasks) EnqueueExpireSnapshots(ctx context.Context, table string, retentionDays int, retainLast int) (int64, error) {
	retentionDays = max(retentionDays, minRetentionDays)
	retainLast = max(retainLast, minRetainLast)

	taskInput := map[string]any{
		"retention_days": retentionDays,
		"retain_last":    retainLast,
	}

	taskId, err := s.enqueuer.EnqueueTask(ctx, table, TaskKindExpireSnapshots, taskInput)
	if err != nil {
		return 0, fmt.Errorf("could not enqueue expire snapshots task: %w", err)
	}

	return taskId, nil
}

// EnqueueOptimize enqueues one optimize task covering the days from..to.
func (s *ServiceTasks) EnqueueOptimize(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) (int64, error) {
	if fileSizeThresholdMb < 1 {
		fileSizeThresholdMb = defaultFileSizeThresholdMb
	}

	if from.IsZero() || to.IsZero() {
		return 0, fmt.Errorf("from and to dates are required for optimize")
	}

	if from.After(to) {
		return 0, fmt.Errorf("from date must be before or equal to the to date")
	}

	taskInput := map[string]any{
		"file_size_threshold_mb": fileSizeThresholdMb,
		"from":                   from.UTC().Format(time.RFC3339),
		"to":                     to.UTC().Format(time.RFC3339),
	}

	taskId, err := s.enqueuer.EnqueueTask(ctx, table, TaskKindOptimize, taskInput)
	if err != nil {
		return 0, fmt.Errorf("could not enqueue optimize task: %w", err)
	}

	return taskId, nil
}

func (s *ServiceTasks) HasPendingTask(ctx context.Context, table string, kind string) (bool, error) {
	pending, err := s.enqueuer.HasPendingTask(ctx, table, kind)
	if err != nil {
		return false, fmt.Errorf("could not check pending tasks: %w", err)
	}

	return pending, nil
}
