package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/coffin"
	"github.com/justtrackio/gosoline/pkg/kernel"
	"github.com/justtrackio/gosoline/pkg/log"
)

func NewModuleHealth(ctx context.Context, config cfg.Config, logger log.Logger) (kernel.Module, error) {
	var err error
	var serviceHealth *ServiceHealth
	var serviceRemediation *ServiceRemediation
	var serviceSettings *ServiceSettings
	var healthSettings *HealthSettings

	if serviceHealth, err = ProvideServiceHealth(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create health service: %w", err)
	}

	if serviceRemediation, err = NewServiceRemediation(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create remediation service: %w", err)
	}

	if serviceSettings, err = NewServiceSettings(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create settings service: %w", err)
	}

	if healthSettings, err = ReadHealthSettings(config); err != nil {
		return nil, err
	}

	return NewModuleHealthWithInterfaces(logger, serviceHealth, serviceRemediation, serviceSettings, healthSettings.Interval, serviceRemediation.AutoEnqueue()), nil
}

func NewModuleHealthWithInterfaces(
	logger log.Logger,
	evaluator FleetEvaluator,
	remediator Remediator,
	settings BoolSettingReader,
	interval time.Duration,
	autoRemediationDefault bool,
) *ModuleHealth {
	return &ModuleHealth{
		logger:                 logger.WithChannel("health_monitor"),
		evaluator:              evaluator,
		remediator:             remediator,
		settings:               settings,
		interval:               interval,
		autoRemediationDefault: autoRemediationDefault,
	}
}

// ModuleHealth re-evaluates all tables periodically and, if switched on, queues remediation.
type ModuleHealth struct {
	logger                 log.Logger
	evaluator              FleetEvaluator
	remediator             Remediator
	settings               BoolSettingReader
	interval               time.Duration
	autoRemediationDefault bool
}

func (m *ModuleHealth) Run(ctx context.Context) error {
	if m.interval <= 0 {
		m.logger.Info(ctx, "periodic health evaluation is disabled")

		return nil
	}

	m.logger.Info(ctx, "evaluating table health every %s", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	cfn, ctx := coffin.WithContext(ctx)
	cfn.GoWithContext(ctx, func(ctx context.Context) error {
		m.evaluate(ctx)

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				m.evaluate(ctx)
			}
		}
	})

	return cfn.Wait()
}

func (m *ModuleHealth) evaluate(ctx context.Context) {
	evaluations, err := m.evaluator.EvaluateAll(ctx)
	if err != nil {
		m.logger.Error(ctx, "could not evaluate tables: %s", err)

		return
	}

	for _, e := range evaluations {
		if e.Err != nil {
			m.logger.Warn(ctx, "could not evaluate table %s: %s", e.Table, e.Err)
		}
	}

	enabled, err := m.settings.GetBoolSetting(ctx, SettingAutoRemediation, m.autoRemediationDefault)
	if err != nil {
		m.logger.Warn(ctx, "could not load auto remediation setting, using default: %s", err)
		enabled = m.autoRemediationDefault
	}

	if !enabled {
		return
	}

	for _, e := range evaluations {
		if e.Err != nil || e.Report == nil || len(e.Report.Recommendations) == 0 {
			continue
		}

		if _, err = m.remediator.EnqueueRemediation(ctx, e.Report); err != nil {
			m.logger.Error(ctx, "could not enqueue remediation for table %s: %s", e.Table, err)
		}
	}
}
