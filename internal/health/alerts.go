package health

import "time"

type Alert struct {
	Severity    AlertSeverity `json:"severity"`
	Category    AlertCategory `json:"category"`
	Message     string        `json:"message"`
	MetricValue float64       `json:"metric_value"`
	Threshold   float64       `json:"threshold"`
	DetectedAt  time.Time     `json:"detected_at"`
}

// GenerateAlerts emits one alert per threshold rule whose warning or critical
// level was crossed, in rule order.
func GenerateAlerts(m Metrics, now time.Time) []Alert {
	alerts := make([]Alert, 0)

	for _, rule := range thresholdRules {
		outcome, ok := rule.evaluate(m)
		if !ok || outcome.status == StatusGood {
			continue
		}

		severity := severityFor(outcome.status)

		alerts = append(alerts, Alert{
			Severity:    severity,
			Category:    rule.category,
			Message:     rule.message(severity, outcome.value),
			MetricValue: outcome.value,
			Threshold:   outcome.threshold,
			DetectedAt:  now,
		})
	}

	return alerts
}
