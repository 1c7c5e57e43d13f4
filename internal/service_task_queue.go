package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/gosoline-project/sqlc"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/clock"
	"github.com/justtrackio/gosoline/pkg/db"
	"github.com/justtrackio/gosoline/pkg/log"
)

const defaultTaskPageSize = 20

type ServiceTaskQueue struct {
	logger    log.Logger
	sqlClient sqlc.Client
	clock     clock.Clock
}

func NewServiceTaskQueue(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceTaskQueue, error) {
	var err error
	var sqlClient sqlc.Client

	if sqlClient, err = sqlc.ProvideClient(ctx, config, logger, "default"); err != nil {
		return nil, fmt.Errorf("could not create sqlc client: %w", err)
	}

	return NewServiceTaskQueueWithInterfaces(logger, sqlClient, clock.Provider), nil
}

func NewServiceTaskQueueWithInterfaces(logger log.Logger, sqlClient sqlc.Client, clk clock.Clock) *ServiceTaskQueue {
	return &ServiceTaskQueue{
		logger:    logger.WithChannel("task_queue"),
		sqlClient: sqlClient,
		clock:     clk,
	}
}

func (s *ServiceTaskQueue) EnqueueTask(ctx context.Context, table string, kind string, input map[string]any) (int64, error) {
	var err error
	var res sqlc.Result
	var id int64

	entry := &Task{
		Table:     table,
		Kind:      kind,
		StartedAt: s.clock.Now(),
		Status:    TaskStatusQueued,
		Input:     db.NewJSON(input, db.NonNullable{}),
		Result:    db.NewJSON(map[string]any{}, db.NonNullable{}),
	}

	ins := s.sqlClient.Q().Into("tasks").Records(entry)
	if res, err = ins.Exec(ctx); err != nil {
		return 0, fmt.Errorf("could not enqueue task: %w", err)
	}

	if id, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("could not get last insert id: %w", err)
	}

	s.logger.Info(ctx, "enqueued %s task %d for table %s", kind, id, table)

	return id, nil
}

func (s *ServiceTaskQueue) ClaimTask(ctx context.Context) (*Task, error) {
	var err error
	var res sqlc.Result
	var affected int64

	// Optimistic locking loop
	for i := 0; i < 3; i++ {
		var task Task
		// 1. Find oldest queued task that doesn't have another task running for the same table
		// Use raw SQL for the NOT IN subquery since sqlc's NotIn() only supports scalar values
		err = s.sqlClient.Q().From("tasks").
			Where(sqlc.Eq{"status": TaskStatusQueued}).
			Where("`table` NOT IN (SELECT `table` FROM `tasks` WHERE `status` = ?)", TaskStatusRunning).
			OrderBy(sqlc.Col("started_at").Asc()).
			Limit(1).
			Get(ctx, &task)
		if isNoRows(err) {
			return nil, nil
		}

		if err != nil {
			return nil, fmt.Errorf("could not find queued task: %w", err)
		}

		// 2. Try to claim it atomically
		now := s.clock.Now()
		upd := s.sqlClient.Q().Update("tasks").
			Set("status", TaskStatusRunning).
			Set("picked_up_at", &now).
			Where(sqlc.Eq{"id": task.Id, "status": TaskStatusQueued})

		if res, err = upd.Exec(ctx); err != nil {
			return nil, fmt.Errorf("could not update task status to running: %w", err)
		}

		if affected, err = res.RowsAffected(); err != nil {
			return nil, fmt.Errorf("could not get rows affected: %w", err)
		}

		if affected > 0 {
			task.Status = TaskStatusRunning
			task.PickedUpAt = &now

			return &task, nil
		}
		// If affected == 0, another worker claimed it between Step 1 and 2. Retry.
	}

	return nil, nil
}

// HasPendingTask reports whether the table has a queued or running task of the given kind.
func (s *ServiceTaskQueue) HasPendingTask(ctx context.Context, table string, kind string) (bool, error) {
	var count struct {
		Total int64 `db:"total"`
	}

	cnt := s.sqlClient.Q().From("tasks").
		Column(sqlc.Col("*").Count().As("total")).
		Where(sqlc.Eq{"table": table, "kind": kind}).
		Where(sqlc.Col("status").In(TaskStatusQueued, TaskStatusRunning))

	if err := cnt.Get(ctx, &count); err != nil {
		return false, fmt.Errorf("could not count pending %s tasks of table %s: %w", kind, table, err)
	}

	return count.Total > 0, nil
}

func (s *ServiceTaskQueue) CompleteTask(ctx context.Context, id int64, result map[string]any, err error) error {
	status := TaskStatusSuccess
	var errMsg *string

	if err != nil {
		status = TaskStatusError
		msg := err.Error()
		errMsg = &msg
	}

	now := s.clock.Now()
	upd := s.sqlClient.Q().Update("tasks").
		Set("finished_at", &now).
		Set("status", status).
		Set("error_message", errMsg).
		Set("result", db.NewJSON(result, db.NonNullable{})).
		Where(sqlc.Eq{"id": id})

	if _, err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("could not complete task: %w", err)
	}

	return nil
}

// TaskFilter narrows task listings and counts. Empty fields match everything.
type TaskFilter struct {
	Table    string
	Kinds    []string
	Statuses []string
	Limit    int
	Offset   int
}

func (f TaskFilter) conditions() []any {
	conditions := make([]any, 0, 3)

	if f.Table != "" {
		conditions = append(conditions, sqlc.Eq{"table": f.Table})
	}

	if len(f.Kinds) > 0 {
		conditions = append(conditions, sqlc.Col("kind").In(toAnySlice(f.Kinds)...))
	}

	if len(f.Statuses) > 0 {
		conditions = append(conditions, sqlc.Col("status").In(toAnySlice(f.Statuses)...))
	}

	return conditions
}

func (s *ServiceTaskQueue) selectTasks(filter TaskFilter) *sqlc.SelectQueryBuilder {
	sel := s.sqlClient.Q().From("tasks")

	for _, condition := range filter.conditions() {
		sel = sel.Where(condition)
	}

	return sel
}

// TaskCounts returns the queued and running tasks, in total and per kind, optionally for a single table.
func (s *ServiceTaskQueue) TaskCounts(ctx context.Context, table string) (*TaskCounts, error) {
	var rows []struct {
		Status string `db:"status"`
		Kind   string `db:"kind"`
		Count  int64  `db:"count"`
	}

	filter := TaskFilter{
		Table:    table,
		Statuses: []string{TaskStatusQueued, TaskStatusRunning},
	}

	query := s.selectTasks(filter).
		Column(sqlc.Col("status")).
		Column(sqlc.Col("kind")).
		Column(sqlc.Col("*").Count().As("count")).
		GroupBy(sqlc.Col("status"), sqlc.Col("kind"))

	if err := query.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get task counts: %w", err)
	}

	counts := &TaskCounts{
		Kinds: map[string]TaskKindCounts{},
	}

	for _, r := range rows {
		kind := counts.Kinds[r.Kind]

		switch r.Status {
		case TaskStatusRunning:
			counts.Running += r.Count
			kind.Running += r.Count
		case TaskStatusQueued:
			counts.Queued += r.Count
			kind.Queued += r.Count
		}

		counts.Kinds[r.Kind] = kind
	}

	return counts, nil
}

func (s *ServiceTaskQueue) ListTasks(ctx context.Context, filter TaskFilter) (*PaginatedTasks, error) {
	var err error
	var tasks []Task
	var count struct {
		Total int64 `db:"total"`
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultTaskPageSize
	}

	filter.Offset = max(filter.Offset, 0)

	if err = s.selectTasks(filter).Column(sqlc.Col("*").Count().As("total")).Get(ctx, &count); err != nil {
		return nil, fmt.Errorf("could not get task count: %w", err)
	}

	sel := s.selectTasks(filter).
		OrderBy(sqlc.Col("started_at").Desc()).
		Limit(filter.Limit).
		Offset(filter.Offset)

	if err = sel.Select(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	result := &PaginatedTasks{
		Items: make([]sTask, len(tasks)),
		Total: count.Total,
	}

	for i, t := range tasks {
		result.Items[i] = newTaskDto(t)
	}

	return result, nil
}

// FlushTasks deletes finished tasks that finished before now minus olderThan. Queued and running tasks are kept.
func (s *ServiceTaskQueue) FlushTasks(ctx context.Context, olderThan time.Duration) (int64, error) {
	var err error
	var res sqlc.Result
	var affected int64

	if olderThan < 0 {
		return 0, fmt.Errorf("older than must not be negative, got %s", olderThan)
	}

	cutoff := s.clock.Now().Add(-olderThan)

	del := s.sqlClient.Q().Delete("tasks").
		Where(sqlc.Col("status").In(TaskStatusSuccess, TaskStatusError)).
		Where(sqlc.Col("finished_at").Lte(cutoff))

	if res, err = del.Exec(ctx); err != nil {
		return 0, fmt.Errorf("could not flush finished tasks: %w", err)
	}

	if affected, err = res.RowsAffected(); err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}

	s.logger.Info(ctx, "flushed %d tasks finished before %s", affected, cutoff.Format(time.RFC3339))

	return affected, nil
}

func newTaskDto(t Task) sTask {
	return sTask{
		Id:           t.Id,
		Table:        t.Table,
		Kind:         t.Kind,
		StartedAt:    t.StartedAt,
		PickedUpAt:   t.PickedUpAt,
		FinishedAt:   t.FinishedAt,
		Status:       t.Status,
		ErrorMessage: t.ErrorMessage,
		Input:        t.Input.Get(),
		Result:       t.Result.Get(),
	}
}

func toAnySlice(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}

	return result
}
