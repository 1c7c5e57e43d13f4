package health

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Summary property keys as written by iceberg writers.
const (
	SummaryAddedDataFiles   = "added-data-files"
	SummaryDeletedDataFiles = "deleted-data-files"
	SummaryAddedRecords     = "added-records"
	SummaryDeletedRecords   = "deleted-records"
	SummaryTotalRecords     = "total-records"
	SummaryAddedFilesSize   = "added-files-size"
	SummaryRemovedFilesSize = "removed-files-size"
	SummaryTotalSize        = "total-size"
	SummaryOperation        = "operation"

	operationUnknown = "unknown"
)

type Summary struct {
	Operation  string            `json:"operation"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Int returns the integer value of a summary counter. Absent, malformed and
// negative values read as 0.
func (s *Summary) Int(key string) int64 {
	if s == nil {
		return 0
	}

	raw, ok := s.Properties[key]
	if !ok {
		return 0
	}

	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// Float returns the numeric value of a summary property and whether it parsed
// into a finite number.
func (s *Summary) Float(key string) (float64, bool) {
	if s == nil {
		return 0, false
	}

	raw, ok := s.Properties[key]
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

type Snapshot struct {
	SnapshotID       int64    `json:"snapshot_id"`
	ParentSnapshotID *int64   `json:"parent_snapshot_id,omitempty"`
	TimestampMs      int64    `json:"timestamp_ms"`
	ManifestList     string   `json:"manifest_list"`
	SchemaID         *int     `json:"schema_id,omitempty"`
	Summary          *Summary `json:"summary,omitempty"`
}

func (s Snapshot) Timestamp() time.Time {
	return time.UnixMilli(s.TimestampMs).UTC()
}

// Operation returns the summary's operation label or "unknown" without a summary.
func (s Snapshot) Operation() string {
	if s.Summary == nil {
		return operationUnknown
	}

	return s.Summary.Operation
}

// Table is the materialized view of an iceberg table the engine evaluates.
// DataFileSizes is optional and holds the byte sizes of the live data files
// of the current snapshot when the caller scanned the manifests.
type Table struct {
	Name              string            `json:"name"`
	Namespace         string            `json:"namespace"`
	Location          string            `json:"location"`
	CurrentSchemaID   int               `json:"current_schema_id"`
	CurrentSnapshotID *int64            `json:"current_snapshot_id,omitempty"`
	Properties        map[string]string `json:"properties,omitempty"`
	Snapshots         []Snapshot        `json:"snapshots"`
	DataFileSizes     []int64           `json:"data_file_sizes,omitempty"`
}

func (t Table) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}

	return t.Namespace + "." + t.Name
}
