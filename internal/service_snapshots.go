package internal

import (
	"context"
	"fmt"

	"github.com/gosoline-project/sqlc"
	"github.com/justtrackio/gosoline/pkg/cfg"
	"github.com/justtrackio/gosoline/pkg/db"
	"github.com/justtrackio/gosoline/pkg/funk"
	"github.com/justtrackio/gosoline/pkg/log"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/spf13/cast"
)

const snapshotInsertBatchSize = 100

func NewServiceSnapshots(ctx context.Context, config cfg.Config, logger log.Logger) (*ServiceSnapshots, error) {
	var err error
	var sqlClient sqlc.Client

	if sqlClient, err = sqlc.ProvideClient(ctx, config, logger, "default"); err != nil {
		return nil, fmt.Errorf("could not create sqlc client: %w", err)
	}

	return NewServiceSnapshotsWithInterfaces(logger, sqlClient), nil
}

func NewServiceSnapshotsWithInterfaces(logger log.Logger, sqlClient sqlc.Client) *ServiceSnapshots {
	return &ServiceSnapshots{
		logger:    logger.WithChannel("snapshots"),
		sqlClient: sqlClient,
	}
}

// ServiceSnapshots caches the snapshot history last seen in the catalog per table.
type ServiceSnapshots struct {
	logger    log.Logger
	sqlClient sqlc.Client
}

// ReplaceSnapshots swaps the cached snapshots of the table for the given ones in a single transaction.
func (s *ServiceSnapshots) ReplaceSnapshots(ctx context.Context, table string, snapshots []health.Snapshot) error {
	rows := make([]Snapshot, len(snapshots))
	for i, snap := range snapshots {
		rows[i] = SnapshotRow(table, snap)
	}

	err := s.sqlClient.WithTx(ctx, func(cttx sqlc.Tx) error {
		if _, err := s.sqlClient.Q().Delete("snapshots").Where(sqlc.Eq{"table": table}).Exec(cttx); err != nil {
			return fmt.Errorf("could not delete existing snapshots: %w", err)
		}

		for _, chunk := range funk.Chunk(rows, snapshotInsertBatchSize) {
			if _, err := s.sqlClient.Q().Into("snapshots").Replace().Records(chunk).Exec(cttx); err != nil {
				return fmt.Errorf("could not save snapshots: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not replace snapshots of table %s: %w", table, err)
	}

	s.logger.Info(ctx, "cached %d snapshots for table %s", len(rows), table)

	return nil
}

func (s *ServiceSnapshots) ListSnapshots(ctx context.Context, table string) (*SnapshotList, error) {
	var rows []Snapshot

	sel := s.sqlClient.Q().From("snapshots").
		Where(sqlc.Eq{"table": table}).
		OrderBy(sqlc.Col("committed_at").Asc())

	if err := sel.Select(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list snapshots of table %s: %w", table, err)
	}

	result := &SnapshotList{
		Table:     table,
		Snapshots: make([]sSnapshot, len(rows)),
	}

	for i, r := range rows {
		result.Snapshots[i] = sSnapshot{
			SnapshotId:   r.SnapshotId,
			ParentId:     r.ParentId,
			SchemaId:     r.SchemaId,
			CommittedAt:  NewDateTime(r.CommittedAt),
			Operation:    r.Operation,
			ManifestList: r.ManifestList,
			Summary:      r.Summary.Get(),
		}
	}

	return result, nil
}

// SnapshotRow converts an engine snapshot into its cache row. A snapshot without a summary
// keeps a NULL summary and an empty operation.
func SnapshotRow(table string, snap health.Snapshot) Snapshot {
	var operation string
	var summary map[string]any

	if snap.Summary != nil {
		operation = snap.Summary.Operation
		summary = make(map[string]any, len(snap.Summary.Properties))

		for k, v := range snap.Summary.Properties {
			summary[k] = v
		}
	}

	return Snapshot{
		Table:        table,
		CommittedAt:  snap.Timestamp(),
		SnapshotId:   snap.SnapshotID,
		ParentId:     snap.ParentSnapshotID,
		SchemaId:     snap.SchemaID,
		Operation:    operation,
		ManifestList: snap.ManifestList,
		Summary:      db.NewJSON(summary, db.Nullable{}),
	}
}

// HealthSnapshots converts listed snapshots back into the engine model. Summary values may be
// strings or JSON numbers. A snapshot with neither summary nor operation has no summary.
func (l *SnapshotList) HealthSnapshots() []health.Snapshot {
	result := make([]health.Snapshot, len(l.Snapshots))

	for i, snap := range l.Snapshots {
		result[i] = health.Snapshot{
			SnapshotID:       snap.SnapshotId,
			ParentSnapshotID: snap.ParentId,
			TimestampMs:      snap.CommittedAt.UnixMilli(),
			ManifestList:     snap.ManifestList,
			SchemaID:         snap.SchemaId,
		}

		if snap.Summary == nil && snap.Operation == "" {
			continue
		}

		properties := make(map[string]string, len(snap.Summary))
		for k, v := range snap.Summary {
			properties[k] = cast.ToString(v)
		}

		result[i].Summary = &health.Summary{
			Operation:  snap.Operation,
			Properties: properties,
		}
	}

	return result
}

type sSnapshot struct {
	SnapshotId   int64          `json:"snapshot_id"`
	ParentId     *int64         `json:"parent_id,omitempty"`
	SchemaId     *int           `json:"schema_id,omitempty"`
	CommittedAt  DateTime       `json:"committed_at"`
	Operation    string         `json:"operation"`
	ManifestList string         `json:"manifest_list"`
	Summary      map[string]any `json:"summary"`
}

type SnapshotList struct {
	Table     string      `json:"table"`
	Snapshots []sSnapshot `json:"snapshots"`
}
