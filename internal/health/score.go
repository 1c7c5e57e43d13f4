package health

const (
	maxScore = 100.0
	minScore = 0.0

	signalFileCountTrend = "file_count_trend"
)

type ScoreAdjustment struct {
	Signal string       `json:"signal"`
	Status SignalStatus `json:"status"`
	Impact float64      `json:"impact"`
}

// ComputeScore starts at 100 and applies every threshold rule followed by the
// file count trend adjustment. The result is clamped to [0, 100].
func ComputeScore(m Metrics) (float64, []ScoreAdjustment) {
	score := maxScore
	breakdown := make([]ScoreAdjustment, 0, len(thresholdRules)+1)

	for _, rule := range thresholdRules {
		outcome, _ := rule.evaluate(m)
		score -= outcome.penalty

		breakdown = append(breakdown, ScoreAdjustment{
			Signal: rule.signal,
			Status: outcome.status,
			Impact: 0 - outcome.penalty,
		})
	}

	trend := trendAdjustment(m.Trends.FileCountTrend)
	score += trend.Impact
	breakdown = append(breakdown, trend)

	return clamp(score, minScore, maxScore), breakdown
}

func trendAdjustment(direction TrendDirection) ScoreAdjustment {
	switch direction {
	case TrendImproving:
		return ScoreAdjustment{Signal: signalFileCountTrend, Status: StatusGood, Impact: FileCountTrendAdjustment}
	case TrendDegrading:
		return ScoreAdjustment{Signal: signalFileCountTrend, Status: StatusWarning, Impact: -FileCountTrendAdjustment}
	default:
		return ScoreAdjustment{Signal: signalFileCountTrend, Status: StatusGood, Impact: 0}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
