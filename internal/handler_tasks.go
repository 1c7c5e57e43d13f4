package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/spf13/cast"
)

type ListTasksInput struct {
	Table  string   `form:"table"`
	Kind   []string `form:"kind"`
	Status []string `form:"status"`
	Limit  int      `form:"limit"`
	Offset int      `form:"offset"`
}

type TaskCountsInput struct {
	Table string `form:"table"`
}

type FlushTasksInput struct {
	OlderThan string `form:"older_than"`
}

type FlushTasksResponse struct {
	Deleted int64 `json:"deleted"`
}

func NewHandlerTasks(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerTasks, error) {
	var err error
	var serviceTaskQueue *ServiceTaskQueue

	if serviceTaskQueue, err = NewServiceTaskQueue(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create task queue service: %w", err)
	}

	return &HandlerTasks{
		serviceTaskQueue: serviceTaskQueue,
	}, nil
}

type HandlerTasks struct {
	serviceTaskQueue *ServiceTaskQueue
}

func (h *HandlerTasks) ListTasks(ctx context.Context, input *ListTasksInput) (httpserver.Response, error) {
	filter := TaskFilter{
		Table:    input.Table,
		Kinds:    input.Kind,
		Statuses: input.Status,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	result, err := h.serviceTaskQueue.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerTasks) TaskCounts(ctx context.Context, input *TaskCountsInput) (httpserver.Response, error) {
	counts, err := h.serviceTaskQueue.TaskCounts(ctx, input.Table)
	if err != nil {
		return nil, fmt.Errorf("could not get task counts: %w", err)
	}

	return httpserver.NewJsonResponse(counts), nil
}

// FlushTasks deletes finished tasks. older_than accepts a duration like 72h and defaults to deleting all finished tasks.
func (h *HandlerTasks) FlushTasks(ctx context.Context, input *FlushTasksInput) (httpserver.Response, error) {
	var err error
	var olderThan time.Duration
	var deleted int64

	if input.OlderThan != "" {
		if olderThan, err = cast.ToDurationE(input.OlderThan); err != nil {
			return nil, fmt.Errorf("invalid older_than %q: %w", input.OlderThan, err)
		}
	}

	if deleted, err = h.serviceTaskQueue.FlushTasks(ctx, olderThan); err != nil {
		return nil, fmt.Errorf("could not flush tasks: %w", err)
	}

	return httpserver.NewJsonResponse(&FlushTasksResponse{
		Deleted: deleted,
	}), nil
}
