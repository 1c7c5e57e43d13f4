package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/justtrackio/lakehouse-health/internal/health"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func writeReport(w io.Writer, report *health.Report) error {
	if _, err := fmt.Fprintf(w, "Table %s evaluated at %s\n", report.Table, report.EvaluatedAt.Format("2006-01-02 15:04:05 MST")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Health score %.1f (%s) over %d snapshots\n\n", report.HealthScore, report.Grade, report.SnapshotCount); err != nil {
		return err
	}

	if err := writeBreakdown(w, report.ScoreBreakdown); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if len(report.Alerts) == 0 {
		if _, err := fmt.Fprintln(w, "No alerts."); err != nil {
			return err
		}
	} else if err := writeAlerts(w, report.Alerts); err != nil {
		return err
	}

	if len(report.Recommendations) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return writeRecommendations(w, report.Recommendations)
}

func writeBreakdown(w io.Writer, breakdown []health.ScoreAdjustment) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Signal", "Status", "Impact"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignRight}
	})

	data := make([][]string, 0, len(breakdown))
	for _, adj := range breakdown {
		data = append(data, []string{adj.Signal, string(adj.Status), strconv.FormatFloat(adj.Impact, 'f', 1, 64)})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

func writeAlerts(w io.Writer, alerts []health.Alert) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Severity", "Category", "Message", "Value", "Threshold"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight}
	})

	data := make([][]string, 0, len(alerts))
	for _, alert := range alerts {
		data = append(data, []string{
			string(alert.Severity),
			string(alert.Category),
			alert.Message,
			strconv.FormatFloat(alert.MetricValue, 'f', 2, 64),
			strconv.FormatFloat(alert.Threshold, 'f', 2, 64),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}

func writeRecommendations(w io.Writer, recs []health.Recommendation) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Priority", "Action", "Description", "Benefit", "Effort"})

	data := make([][]string, 0, len(recs))
	for _, rec := range recs {
		data = append(data, []string{
			string(rec.Priority),
			string(rec.ActionType),
			rec.Description,
			rec.EstimatedBenefit,
			string(rec.EffortLevel),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}
