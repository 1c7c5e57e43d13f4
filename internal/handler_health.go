package internal

import (
	"context"
	"fmt"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
)

type TableSelectInput struct {
	Table string `form:"table" uri:"table"`
}

type HealthReportInput struct {
	Table  string `uri:"table"`
	Cached bool   `form:"cached"`
}

type HealthHistoryInput struct {
	Table  string `uri:"table"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type RemediateInput struct {
	Table string   `uri:"table"`
	From  DateTime `json:"from"`
	To    DateTime `json:"to"`
}

type ListTableHealthResponse struct {
	Tables []TableHealthSummary `json:"tables"`
}

func NewHandlerHealth(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerHealth, error) {
	var err error
	var serviceHealth *ServiceHealth
	var serviceReports *ServiceReports
	var serviceSnapshots *ServiceSnapshots
	var serviceRemediation *ServiceRemediation

	if serviceHealth, err = ProvideServiceHealth(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create health service: %w", err)
	}

	if serviceReports, err = NewServiceReports(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create report service: %w", err)
	}

	if serviceSnapshots, err = NewServiceSnapshots(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create snapshot service: %w", err)
	}

	if serviceRemediation, err = NewServiceRemediation(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create remediation service: %w", err)
	}

	return &HandlerHealth{
		serviceHealth:      serviceHealth,
		serviceReports:     serviceReports,
		serviceSnapshots:   serviceSnapshots,
		serviceRemediation: serviceRemediation,
	}, nil
}

type HandlerHealth struct {
	serviceHealth      *ServiceHealth
	serviceReports     *ServiceReports
	serviceSnapshots   *ServiceSnapshots
	serviceRemediation *ServiceRemediation
}

func (h *HandlerHealth) ListTables(ctx context.Context) (httpserver.Response, error) {
	var err error
	var evaluations []TableEvaluation

	if evaluations, err = h.serviceHealth.EvaluateAll(ctx); err != nil {
		return nil, fmt.Errorf("could not evaluate tables: %w", err)
	}

	response := &ListTableHealthResponse{
		Tables: make([]TableHealthSummary, len(evaluations)),
	}

	for i, e := range evaluations {
		response.Tables[i] = e.Summary()
	}

	return httpserver.NewJsonResponse(response), nil
}

// GetReport evaluates the table now, or returns the last stored report with cached=true.
func (h *HandlerHealth) GetReport(ctx context.Context, input *HealthReportInput) (httpserver.Response, error) {
	var err error
	var report *health.Report

	if input.Cached {
		if report, err = h.serviceReports.LatestReport(ctx, input.Table); err != nil {
			return nil, fmt.Errorf("could not get stored health report: %w", err)
		}

		return httpserver.NewJsonResponse(report), nil
	}

	if report, err = h.serviceHealth.Evaluate(ctx, input.Table); err != nil {
		return nil, fmt.Errorf("could not evaluate table: %w", err)
	}

	return httpserver.NewJsonResponse(report), nil
}

func (h *HandlerHealth) ListHistory(ctx context.Context, input *HealthHistoryInput) (httpserver.Response, error) {
	result, err := h.serviceReports.ListReports(ctx, input.Table, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("could not list health reports: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerHealth) ListSnapshots(ctx context.Context, input *TableSelectInput) (httpserver.Response, error) {
	result, err := h.serviceSnapshots.ListSnapshots(ctx, input.Table)
	if err != nil {
		return nil, fmt.Errorf("could not list cached snapshots: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}

func (h *HandlerHealth) Remediate(ctx context.Context, input *RemediateInput) (httpserver.Response, error) {
	var window *OptimizeWindow

	if !input.From.IsZero() || !input.To.IsZero() {
		if input.From.IsZero() || input.To.IsZero() {
			return nil, fmt.Errorf("from and to must be given together")
		}

		if input.From.After(input.To.Time) {
			return nil, fmt.Errorf("from date must be before or equal to the to date")
		}

		window = &OptimizeWindow{From: input.From.Time, To: input.To.Time}
	}

	result, err := h.serviceRemediation.Remediate(ctx, input.Table, window)
	if err != nil {
		return nil, fmt.Errorf("could not remediate table: %w", err)
	}

	return httpserver.NewJsonResponse(result), nil
}
