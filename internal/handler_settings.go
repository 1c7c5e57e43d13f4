package internal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gosoline-project/httpserver"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

type TaskConcurrencyResponse struct {
	Value int `json:"value"`
}

type SetTaskConcurrencyRequest struct {
	Value int `json:"value"`
}

type AutoRemediationResponse struct {
	Enabled bool `json:"enabled"`
}

type SetAutoRemediationRequest struct {
	Enabled bool `json:"enabled"`
}

func NewHandlerSettings(ctx context.Context, config cfg.Config, logger log.Logger) (*HandlerSettings, error) {
	var err error
	var serviceSettings *ServiceSettings
	var moduleTasks *ModuleTasks
	var remediationSettings *RemediationSettings

	if serviceSettings, err = NewServiceSettings(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create settings service: %w", err)
	}

	if moduleTasks, err = ProvideModuleTasks(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create tasks module: %w", err)
	}

	if remediationSettings, err = ReadRemediationSettings(config); err != nil {
		return nil, err
	}

	return &HandlerSettings{
		serviceSettings:        serviceSettings,
		moduleTasks:            moduleTasks,
		defaultWorkerCount:     DefaultWorkerCount(config),
		defaultAutoRemediation: remediationSettings.AutoEnqueue,
		logger:                 logger.WithChannel("handler_settings"),
	}, nil
}

type HandlerSettings struct {
	serviceSettings        *ServiceSettings
	moduleTasks            *ModuleTasks
	defaultWorkerCount     int
	defaultAutoRemediation bool
	logger                 log.Logger
}

func (h *HandlerSettings) GetTaskConcurrency(ctx context.Context) (httpserver.Response, error) {
	var err error
	var value int

	if value, err = h.serviceSettings.GetIntSetting(ctx, SettingTaskConcurrency, h.defaultWorkerCount); err != nil {
		return nil, fmt.Errorf("failed to get task concurrency setting: %w", err)
	}

	return httpserver.NewJsonResponse(&TaskConcurrencyResponse{
		Value: value,
	}), nil
}

func (h *HandlerSettings) SetTaskConcurrency(ctx context.Context, input *SetTaskConcurrencyRequest) (httpserver.Response, error) {
	if input.Value < 1 {
		return nil, fmt.Errorf("task concurrency must be at least 1")
	}

	if err := h.serviceSettings.SetSetting(ctx, SettingTaskConcurrency, strconv.Itoa(input.Value)); err != nil {
		return nil, fmt.Errorf("failed to set task concurrency: %w", err)
	}

	h.moduleTasks.SetWorkerCount(input.Value)
	h.logger.Info(ctx, "updated task concurrency to %d", input.Value)

	return httpserver.NewJsonResponse(&TaskConcurrencyResponse{
		Value: input.Value,
	}), nil
}

func (h *HandlerSettings) GetAutoRemediation(ctx context.Context) (httpserver.Response, error) {
	var err error
	var enabled bool

	if enabled, err = h.serviceSettings.GetBoolSetting(ctx, SettingAutoRemediation, h.defaultAutoRemediation); err != nil {
		return nil, fmt.Errorf("failed to get auto remediation setting: %w", err)
	}

	return httpserver.NewJsonResponse(&AutoRemediationResponse{
		Enabled: enabled,
	}), nil
}

func (h *HandlerSettings) SetAutoRemediation(ctx context.Context, input *SetAutoRemediationRequest) (httpserver.Response, error) {
	if err := h.serviceSettings.SetBoolSetting(ctx, SettingAutoRemediation, input.Enabled); err != nil {
		return nil, fmt.Errorf("failed to set auto remediation: %w", err)
	}

	return httpserver.NewJsonResponse(&AutoRemediationResponse{
		Enabled: input.Enabled,
	}), nil
}
