package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/justtrackio/lakehouse-health/internal"
	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/spf13/cobra"
)

type options struct {
	json bool
	now  string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "health-report <snapshots.json>",
		Short: "Evaluate the health of an iceberg table from an exported snapshot list.",
		Long: `Evaluate the health of an iceberg table offline.

The input is the snapshot list served by GET /api/health/:table/snapshots.

Examples:
  # Render the report as tables
  health-report events.json

  # Evaluate as of a fixed instant and print the raw report
  health-report events.json --now 2026-03-10T12:00:00Z --json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluate as of this instant (2006-01-02 or RFC3339), defaults to the current time")

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options) error {
	var err error
	var list *internal.SnapshotList

	now := time.Now().UTC()
	if opts.now != "" {
		var at time.Time
		if at, err = internal.ParseDateTime(opts.now); err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}

		now = at
	}

	if list, err = readSnapshotList(path); err != nil {
		return err
	}

	report := evaluate(list, now)

	if opts.json {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		return encoder.Encode(report)
	}

	return writeReport(cmd.OutOrStdout(), &report)
}

func readSnapshotList(path string) (*internal.SnapshotList, error) {
	var err error
	var data []byte

	if data, err = os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	list := &internal.SnapshotList{}
	if err = json.Unmarshal(data, list); err != nil {
		return nil, fmt.Errorf("could not decode snapshot list from %s: %w", path, err)
	}

	if list.Table == "" {
		return nil, fmt.Errorf("snapshot list in %s has no table name", path)
	}

	return list, nil
}

func evaluate(list *internal.SnapshotList, now time.Time) health.Report {
	tbl := health.Table{
		Name:      list.Table,
		Snapshots: list.HealthSnapshots(),
	}

	return health.NewEngine().Analyze(tbl, now)
}
