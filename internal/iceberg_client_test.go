package internal_test

import (
	"testing"

	"github.com/apache/iceberg-go/table"
	"github.com/justtrackio/lakehouse-health/internal"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/stretchr/testify/assert"
)

func TestConvertSnapshots(t *testing.T) {
	parent := int64(1)
	schemaId := 3

	snapshots := []table.Snapshot{
		{
			SnapshotID:   1,
			TimestampMs:  1767225600000,
			ManifestList: "s3://lake/events/metadata/snap-1.avro",
			Summary: &table.Summary{
				Operation: table.OpAppend,
				Properties: map[string]string{
					health.SummaryAddedDataFiles: "4",
					health.SummaryTotalSize:      "1048576",
				},
			},
		},
		{
			SnapshotID:       2,
			ParentSnapshotID: &parent,
			TimestampMs:      1767229200000,
			SchemaID:         &schemaId,
		},
	}

	result := internal.ConvertSnapshots(snapshots)

	assert.Len(t, result, 2)

	assert.Equal(t, int64(1), result[0].SnapshotID)
	assert.Nil(t, result[0].ParentSnapshotID)
	assert.Equal(t, "append", result[0].Operation())
	assert.Equal(t, int64(4), result[0].Summary.Int(health.SummaryAddedDataFiles))
	assert.Equal(t, int64(1048576), result[0].Summary.Int(health.SummaryTotalSize))

	assert.Equal(t, int64(2), result[1].SnapshotID)
	assert.Equal(t, &parent, result[1].ParentSnapshotID)
	assert.Equal(t, &schemaId, result[1].SchemaID)
	assert.Nil(t, result[1].Summary)
	assert.Equal(t, "unknown", result[1].Operation())
}

func TestConvertSnapshots_CopiesProperties(t *testing.T) {
	properties := map[string]string{health.SummaryAddedDataFiles: "4"}
	snapshots := []table.Snapshot{
		{SnapshotID: 1, Summary: &table.Summary{Operation: table.OpOverwrite, Properties: properties}},
	}

	result := internal.ConvertSnapshots(snapshots)
	properties[health.SummaryAddedDataFiles] = "99"

	assert.Equal(t, "4", result[0].Summary.Properties[health.SummaryAddedDataFiles])
}
