package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/log"
)

// StatementExecutor runs maintenance statements against the query engine.
type StatementExecutor interface {
	Exec(ctx context.Context, query string, args ...any) error
	QualifiedTable(table string) string
}

func NewServiceMaintenanceExecutor(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceMaintenanceExecutor, error) {
	var err error
	var trino *TrinoClient
	var iceberg *IcebergClient

	if trino, err = ProvideTrinoClient(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create trino client: %w", err)
	}

	if iceberg, err = ProvideIcebergClient(ctx, config, logger); err != nil {
		return nil, fmt.Errorf("could not create iceberg client: %w", err)
	}

	return NewServiceMaintenanceExecutorWithInterfaces(logger, trino, iceberg), nil
}

func NewServiceMaintenanceExecutorWithInterfaces(logger log.Logger, statements StatementExecutor, partitions PartitionResolver) *ServiceMaintenanceExecutor {
	return &ServiceMaintenanceExecutor{
		logger:     logger.WithChannel("maintenance_executor"),
		statements: statements,
		partitions: partitions,
	}
}

type ServiceMaintenanceExecutor struct {
	logger     log.Logger
	statements StatementExecutor
	partitions PartitionResolver
}

// ExecuteExpireSnapshots drops snapshots older than the retention window, always keeping the newest retainLast.
func (s *ServiceMaintenanceExecutor) ExecuteExpireSnapshots(ctx context.Context, table string, retentionDays int, retainLast int) (*ExpireSnapshotsResult, error) {
	if retentionDays < 1 {
		return nil, fmt.Errorf("retention days must be at least 1")
	}

	if retainLast < 1 {
		return nil, fmt.Errorf("retain last must be at least 1")
	}

	retentionThreshold := fmt.Sprintf("%dd", retentionDays)
	query := fmt.Sprintf("ALTER TABLE %s EXECUTE expire_snapshots(retention_threshold => %s, retain_last => %d, clean_expired_metadata => true)", s.statements.QualifiedTable(table), quoteLiteral(retentionThreshold), retainLast)

	s.logger.Info(ctx, "expiring snapshots of table %s older than %s, retaining %d", table, retentionThreshold, retainLast)

	if err := s.statements.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("could not expire snapshots for table %s: %w", table, err)
	}

	return &ExpireSnapshotsResult{
		Table:                table,
		RetentionDays:        retentionDays,
		RetainLast:           retainLast,
		CleanExpiredMetadata: true,
		Status:               "ok",
	}, nil
}

// ExecuteOptimize rewrites the files of the day partitions between from and to
// that are below the size threshold.
func (s *ServiceMaintenanceExecutor) ExecuteOptimize(ctx context.Context, table string, fileSizeThresholdMb int, from time.Time, to time.Time) (*OptimizeResult, error) {
	if fileSizeThresholdMb < 1 {
		return nil, fmt.Errorf("file size threshold must be at least 1")
	}

	var partitionColumn string
	var err error

	if from.After(to) {
		return nil, fmt.Errorf("from date must be before or equal to to date")
	}

	if partitionColumn, err = s.partitions.DayPartitionColumn(ctx, table); err != nil {
		return nil, fmt.Errorf("no suitable day-partition column found for optimization: %w", err)
	}

	threshold := fmt.Sprintf("%dMB", fileSizeThresholdMb)
	column := quoteIdent(partitionColumn)

	whereClause := fmt.Sprintf("date(%s) >= date '%s' AND date(%s) <= date '%s'", column, from.Format(time.DateOnly), column, to.Format(time.DateOnly))
	query := fmt.Sprintf("ALTER TABLE %s EXECUTE optimize(file_size_threshold => %s) WHERE %s", s.statements.QualifiedTable(table), quoteLiteral(threshold), whereClause)

	s.logger.Info(ctx, "optimizing table %s range %s to %s", table, from.Format(time.DateOnly), to.Format(time.DateOnly))

	if err = s.statements.Exec(ctx, query); err != nil {
		return nil, fmt.Errorf("could not optimize table %s (range %s): %w", table, whereClause, err)
	}

	return &OptimizeResult{
		Table:               table,
		FileSizeThresholdMb: fileSizeThresholdMb,
		Where:               whereClause,
		Status:              "ok",
	}, nil
}
