package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
)

type RemediationSettings struct {
	AutoEnqueue         bool `cfg:"auto_enqueue" default:"false"`
	OptimizeThresholdMb int  `cfg:"optimize_threshold_mb" default:"128"`
	OptimizeDays        int  `cfg:"optimize_days" default:"7"`
	RetentionDays       int  `cfg:"retention_days" default:"7"`
	RetainLast          int  `cfg:"retain_last" default:"10"`
}

func ReadRemediationSettings(config cfg.Config) (*RemediationSettings, error) {
	settings := &RemediationSettings{}
	if err := config.UnmarshalKey("remediation", settings); err != nil {
		return nil, fmt.Errorf("could not unmarshal remediation settings: %w", err)
	}

	settings.OptimizeDays = max(settings.OptimizeDays, 1)
	settings.RetentionDays = max(settings.RetentionDays, minRetentionDays)
	settings.RetainLast = max(settings.RetainLast, minRetainLast)

	return settings, nil
}

// PlannedTask is a maintenance task derived from a recommendation.
type PlannedTask struct {
	Kind                string     `json:"kind"`
	Reason              string     `json:"reason"`
	FileSizeThresholdMb int        `json:"file_size_threshold_mb,omitempty"`
	From                *time.Time `json:"from,omitempty"`
	To                  *time.Time `json:"to,omitempty"`
	RetentionDays       int        `json:"retention_days,omitempty"`
	RetainLast          int        `json:"retain_last,omitempty"`
}

type RemediationPlan struct {
	Table      string        `json:"table"`
	Tasks      []PlannedTask `json:"tasks"`
	Advisories []string      `json:"advisories"`
}

type RemediationResult struct {
	Table       string        `json:"table"`
	HealthScore float64       `json:"health_score"`
	Grade       string        `json:"grade"`
	Tasks       []PlannedTask `json:"tasks"`
	Advisories  []string      `json:"advisories"`
	TaskIds     []int64       `json:"task_ids"`
	Skipped     []string      `json:"skipped"`
}

// OptimizeWindow overrides the trailing day range an optimize task covers.
type OptimizeWindow struct {
	From time.Time
	To   time.Time
}

func NewServiceRemediation(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceRemediation, error) {
	var err error
	var serviceTasks *ServiceTasks
	var serviceHealth *ServiceHealth
	var settings *RemediationSettings

	if serviceTasks, err = NewServiceTasks(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create tasks service: %w", err)
	}

	if serviceHealth, err = ProvideServiceHealth(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create health service: %w", err)
	}

	if settings, err = ReadRemediationSettings(config); err != nil {
		return nil, err
	}

	return NewServiceRemediationWithInterfaces(logger, serviceTasks, serviceHealth, settings), nil
}

func NewServiceRemediationWithInterfaces(logger log.Logger, scheduler MaintenanceScheduler, evaluator HealthEvaluator, settings *RemediationSettings) *ServiceRemediation {
	return &ServiceRemediation{
		logger:    logger.WithChannel("remediation"),
		scheduler: scheduler,
		evaluator: evaluator,
		settings:  settings,
	}
}

// ServiceRemediation turns health recommendations into queued maintenance tasks.
type ServiceRemediation struct {
	logger    log.Logger
	scheduler MaintenanceScheduler
	evaluator HealthEvaluator
	settings  *RemediationSettings
}

// Plan maps the report's recommendations to at most one task per kind. Compaction becomes an
// optimize over the trailing days ending at the evaluation date, retention becomes
// expire_snapshots. Optimization recommendations have no task and are returned as advisories.
func (s *ServiceRemediation) Plan(report *health.Report, window *OptimizeWindow) RemediationPlan {
	plan := RemediationPlan{
		Table:      report.Table,
		Tasks:      make([]PlannedTask, 0),
		Advisories: make([]string, 0),
	}
	planned := map[string]bool{}

	for _, rec := range report.Recommendations {
		switch rec.ActionType {
		case health.ActionCompaction:
			if planned[TaskKindOptimize] {
				continue
			}

			from, to := s.optimizeRange(report.EvaluatedAt, window)
			plan.Tasks = append(plan.Tasks, PlannedTask{
				Kind:                TaskKindOptimize,
				Reason:              rec.Description,
				FileSizeThresholdMb: s.settings.OptimizeThresholdMb,
				From:                &from,
				To:                  &to,
			})
			planned[TaskKindOptimize] = true
		case health.ActionRetentionPolicy:
			if planned[TaskKindExpireSnapshots] {
				continue
			}

			plan.Tasks = append(plan.Tasks, PlannedTask{
				Kind:          TaskKindExpireSnapshots,
				Reason:        rec.Description,
				RetentionDays: s.settings.RetentionDays,
				RetainLast:    s.settings.RetainLast,
			})
			planned[TaskKindExpireSnapshots] = true
		default:
			plan.Advisories = append(plan.Advisories, rec.Description)
		}
	}

	return plan
}

func (s *ServiceRemediation) optimizeRange(evaluatedAt time.Time, window *OptimizeWindow) (time.Time, time.Time) {
	if window != nil && !window.From.IsZero() && !window.To.IsZero() {
		return window.From.UTC(), window.To.UTC()
	}

	y, m, d := evaluatedAt.UTC().Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -(s.settings.OptimizeDays - 1))

	return from, to
}

// EnqueueRemediation queues the planned tasks of the report. Kinds that already have a queued
// or running task for the table are skipped.
func (s *ServiceRemediation) EnqueueRemediation(ctx context.Context, report *health.Report) (*RemediationResult, error) {
	return s.enqueue(ctx, report, nil)
}

// Remediate evaluates the table and queues the maintenance its report asks for.
func (s *ServiceRemediation) Remediate(ctx context.Context, table string, window *OptimizeWindow) (*RemediationResult, error) {
	var err error
	var report *health.Report

	if report, err = s.evaluator.Evaluate(ctx, table); err != nil {
		return nil, fmt.Errorf("could not evaluate table %s: %w", table, err)
	}

	return s.enqueue(ctx, report, window)
}

func (s *ServiceRemediation) enqueue(ctx context.Context, report *health.Report, window *OptimizeWindow) (*RemediationResult, error) {
	var err error
	var pending bool
	var taskId int64

	plan := s.Plan(report, window)
	result := &RemediationResult{
		Table:       report.Table,
		HealthScore: report.HealthScore,
		Grade:       string(report.Grade),
		Tasks:       plan.Tasks,
		Advisories:  plan.Advisories,
		TaskIds:     make([]int64, 0, len(plan.Tasks)),
		Skipped:     make([]string, 0),
	}

	for _, task := range plan.Tasks {
		if pending, err = s.scheduler.HasPendingTask(ctx, report.Table, task.Kind); err != nil {
			return nil, fmt.Errorf("could not check pending tasks of table %s: %w", report.Table, err)
		}

		if pending {
			result.Skipped = append(result.Skipped, task.Kind)

			continue
		}

		switch task.Kind {
		case TaskKindOptimize:
			taskId, err = s.scheduler.EnqueueOptimize(ctx, report.Table, task.FileSizeThresholdMb, *task.From, *task.To)
		case TaskKindExpireSnapshots:
			taskId, err = s.scheduler.EnqueueExpireSnapshots(ctx, report.Table, task.RetentionDays, task.RetainLast)
		default:
			err = fmt.Errorf("unknown task kind: %s", task.Kind)
		}

		if err != nil {
			return nil, fmt.Errorf("could not enqueue %s for table %s: %w", task.Kind, report.Table, err)
		}

		result.TaskIds = append(result.TaskIds, taskId)
	}

	if len(result.TaskIds) > 0 || len(result.Skipped) > 0 {
		s.logger.Info(ctx, "remediation for table %s: enqueued %d tasks, skipped %v", report.Table, len(result.TaskIds), result.Skipped)
	}

	return result, nil
}

// AutoEnqueue reports the configured default of the auto-remediation switch.
func (s *ServiceRemediation) AutoEnqueue() bool {
	return s.settings.AutoEnqueue
}
