package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotList = `{
  "table": "events",
  "snapshots": [
    {
      "snapshot_id": 1,
      "committed_at": "2026-03-09T10:00:00Z",
      "operation": "append",
      "manifest_list": "s3://lake/events/metadata/snap-1.avro",
      "summary": {"added-data-files": "400", "total-size": "4294967296"}
    },
    {
      "snapshot_id": 2,
      "parent_id": 1,
      "committed_at": "2026-03-10T10:00:00Z",
      "operation": "append",
      "manifest_list": "s3://lake/events/metadata/snap-2.avro",
      "summary": {"added-data-files": 500, "total-size": 5368709120}
    }
  ]
}`

func writeInput(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "snapshots.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	out := &bytes.Buffer{}

	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRun_Json(t *testing.T) {
	path := writeInput(t, snapshotList)

	out, err := execute(t, path, "--json", "--now", "2026-03-10T12:00:00Z")
	require.NoError(t, err)

	report := health.Report{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "events", report.Table)
	assert.Equal(t, 2, report.SnapshotCount)
	assert.True(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).Equal(report.EvaluatedAt))
	assert.Equal(t, health.GradeForScore(report.HealthScore), report.Grade)
	assert.Equal(t, int64(500), report.FileHealth.TotalFiles)
}

func TestRun_Table(t *testing.T) {
	path := writeInput(t, snapshotList)

	out, err := execute(t, path, "--now", "2026-03-10")
	require.NoError(t, err)

	assert.Contains(t, out, "Table events evaluated at 2026-03-10 00:00:00 UTC")
	assert.Contains(t, out, "Health score")
	assert.Contains(t, out, "over 2 snapshots")
	assert.Contains(t, out, "RetentionPolicy")
}

func TestRun_InvalidNow(t *testing.T) {
	path := writeInput(t, snapshotList)

	_, err := execute(t, path, "--now", "yesterday")

	assert.ErrorContains(t, err, "invalid --now")
}

func TestRun_MissingTable(t *testing.T) {
	path := writeInput(t, `{"snapshots": []}`)

	_, err := execute(t, path)

	assert.ErrorContains(t, err, "has no table name")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorContains(t, err, "could not read")
}
