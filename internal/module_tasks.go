package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/appctx"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/coffin"
	"github.com/justtrackio/gosoline/pkg/kernel"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/marusama/semaphore/v2"
	"github.com/spf13/cast"
)

type moduleTasksCtxKey struct{}

func NewModuleTasks(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
	return ProvideModuleTasks(ctx, config, logger)
}

// ProvideModuleTasks returns the process wide worker pool so the settings handler can resize
// the pool the kernel runs.
func ProvideModuleTasks(ctx context.Context, config cfg.Config, logger log.Logger) (*ModuleTasks, error) {
	return appctx.Provide(ctx, moduleTasksCtxKey{}, func() (*ModuleTasks, error) {
		return newModuleTasks(ctx, config, logger)
	})
}

func newModuleTasks(ctx context.Context, config cfg.Config, logger log.Logger) (*ModuleTasks, error) {
	var err error
	var serviceTaskQueue *ServiceTaskQueue
	var serviceMaintenanceExecutor *ServiceMaintenanceExecutor
	var serviceHealth *ServiceHealth
	var serviceSettings *ServiceSettings

	if serviceTaskQueue, err = NewServiceTaskQueue(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create task queue service: %w", err)
	}

	if serviceMaintenanceExecutor, err = NewServiceMaintenanceExecutor(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create maintenance executor service: %w", err)
	}

	if serviceHealth, err = ProvideServiceHealth(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create health service: %w", err)
	}

	if serviceSettings, err = NewServiceSettings(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create settings service: %w", err)
	}

	defaultWorkerCount := DefaultWorkerCount(config)

	workerCount, err := serviceSettings.GetIntSetting(ctx, SettingTaskConcurrency, defaultWorkerCount)
	if err != nil {
		logger.Warn(ctx, "could not load task concurrency from settings, using default: %s", err)
		workerCount = defaultWorkerCount
	}

	pollInterval, err := config.GetDuration("tasks.poll_interval")
	if err != nil || pollInterval == 0 {
		pollInterval = time.Second
	}

	return NewModuleTasksWithInterfaces(logger, serviceTaskQueue, serviceMaintenanceExecutor, serviceHealth, pollInterval, semaphore.New(max(workerCount, 1))), nil
}

func NewModuleTasksWithInterfaces(
	logger log.Logger,
	taskClaimer TaskClaimer,
	executor MaintenanceExecutor,
	evaluator HealthEvaluator,
	pollInterval time.Duration,
	sem semaphore.Semaphore,
) *ModuleTasks {
	return &ModuleTasks{
		logger:                     logger.WithChannel("task_worker"),
		serviceTaskQueue:           taskClaimer,
		serviceMaintenanceExecutor: executor,
		serviceHealth:              evaluator,
		pollInterval:               pollInterval,
		sem:                        sem,
	}
}

// DefaultWorkerCount reads tasks.worker_count, at least 1.
func DefaultWorkerCount(config cfg.Config) int {
	count, err := config.GetInt("tasks.worker_count")
	if err != nil {
		return 1
	}

	return max(count, 1)
}

type ModuleTasks struct {
	logger                     log.Logger
	serviceTaskQueue           TaskClaimer
	serviceMaintenanceExecutor MaintenanceExecutor
	serviceHealth              HealthEvaluator
	pollInterval               time.Duration
	sem                        semaphore.Semaphore
}

func (m *ModuleTasks) Run(ctx context.Context) error {
	m.logger.Info(ctx, "starting task worker pool with %d workers", m.sem.GetLimit())

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	cfn, ctx := coffin.WithContext(ctx)
	cfn.GoWithContext(ctx, func(ctx context.Context) error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				m.tryProcessTask(ctx, cfn)
			}
		}
	})

	return cfn.Wait()
}

func (m *ModuleTasks) tryProcessTask(ctx context.Context, cfn coffin.Coffin) {
	if ok := m.sem.TryAcquire(1); !ok {
		return
	}

	task, err := m.serviceTaskQueue.ClaimTask(ctx)
	if err != nil {
		m.sem.Release(1)
		m.logger.Error(ctx, "failed to claim task: %s", err)

		return
	}

	if task == nil {
		m.sem.Release(1)

		return
	}

	m.logger.Info(ctx, "picked up task %d (%s for %s)", task.Id, task.Kind, task.Table)
	cfn.GoWithContext(ctx, func(ctx context.Context) error {
		defer m.sem.Release(1)

		if err := m.processTask(ctx, task); err != nil {
			m.logger.Error(ctx, "failed to process task %d: %s", task.Id, err)
		}

		return nil
	})
}

func (m *ModuleTasks) processTask(ctx context.Context, task *Task) error {
	var err error
	var result map[string]any

	input := task.Input.Get()

	switch task.Kind {
	case TaskKindExpireSnapshots:
		result, err = m.processExpireSnapshots(ctx, task.Table, input)
	case TaskKindOptimize:
		result, err = m.processOptimize(ctx, task.Table, input)
	default:
		err = fmt.Errorf("unknown task kind: %s", task.Kind)
	}

	if err == nil {
		m.reevaluate(ctx, task.Table, result)
	}

	if completeErr := m.serviceTaskQueue.CompleteTask(ctx, task.Id, result, err); completeErr != nil {
		m.logger.Error(ctx, "failed to complete task %d: %s", task.Id, completeErr)

		return nil
	}

	status := TaskStatusSuccess
	if err != nil {
		status = TaskStatusError
	}

	m.logger.Info(ctx, "task %d finished with status: %s", task.Id, status)

	return nil
}

// reevaluate records the table's health after maintenance. A failed evaluation does not fail the task.
func (m *ModuleTasks) reevaluate(ctx context.Context, table string, result map[string]any) {
	report, err := m.serviceHealth.Evaluate(ctx, table)
	if err != nil {
		m.logger.Warn(ctx, "failed to re-evaluate health of table %s after maintenance: %s", table, err)

		return
	}

	result["health_score"] = report.HealthScore
	result["grade"] = string(report.Grade)
}

func (m *ModuleTasks) processExpireSnapshots(ctx context.Context, table string, input map[string]any) (map[string]any, error) {
	retentionDays := cast.ToInt(input["retention_days"])
	retainLast := cast.ToInt(input["retain_last"])

	res, err := m.serviceMaintenanceExecutor.ExecuteExpireSnapshots(ctx, table, retentionDays, retainLast)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"table":                  res.Table,
		"retention_days":         res.RetentionDays,
		"retain_last":            res.RetainLast,
		"clean_expired_metadata": res.CleanExpiredMetadata,
		"status":                 res.Status,
	}, nil
}

func (m *ModuleTasks) processOptimize(ctx context.Context, table string, input map[string]any) (map[string]any, error) {
	fileSizeThresholdMb := cast.ToInt(input["file_size_threshold_mb"])

	from, err := cast.ToTimeE(input["from"])
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}

	to, err := cast.ToTimeE(input["to"])
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	res, err := m.serviceMaintenanceExecutor.ExecuteOptimize(ctx, table, fileSizeThresholdMb, from, to)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"table":                  res.Table,
		"file_size_threshold_mb": res.FileSizeThresholdMb,
		"where":                  res.Where,
		"status":                 res.Status,
	}, nil
}

// SetWorkerCount dynamically adjusts the number of workers in the pool
func (m *ModuleTasks) SetWorkerCount(newCount int) {
	m.sem.SetLimit(max(newCount, 1))
}

// GetWorkerCount returns the current worker count limit.
func (m *ModuleTasks) GetWorkerCount() int {
	return m.sem.GetLimit()
}
