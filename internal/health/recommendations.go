package health

type Recommendation struct {
	Priority         Priority   `json:"priority"`
	ActionType       ActionType `json:"action_type"`
	Description      string     `json:"description"`
	EstimatedBenefit string     `json:"estimated_benefit"`
	EffortLevel      Effort     `json:"effort_level"`
}

// recommendationFor maps an alert onto its maintenance action. Categories
// without an action return false.
func recommendationFor(alert Alert) (Recommendation, bool) {
	switch alert.Category {
	case CategorySmallFiles:
		priority := PriorityMedium
		if alert.Severity == SeverityCritical {
			priority = PriorityHigh
		}

		return Recommendation{
			Priority:         priority,
			ActionType:       ActionCompaction,
			Description:      "Run table compaction to merge small files into larger, more efficient files",
			EstimatedBenefit: "Improved query performance and reduced metadata overhead",
			EffortLevel:      EffortMedium,
		}, true
	case CategoryCompactionNeeded:
		return Recommendation{
			Priority:         PriorityHigh,
			ActionType:       ActionCompaction,
			Description:      "Schedule regular compaction job for this table",
			EstimatedBenefit: "Better file organisation and query performance",
			EffortLevel:      EffortMedium,
		}, true
	case CategoryHighSnapshotFrequency:
		return Recommendation{
			Priority:         PriorityMedium,
			ActionType:       ActionOptimization,
			Description:      "Review write patterns and consider batching smaller writes",
			EstimatedBenefit: "Reduced metadata overhead and improved table performance",
			EffortLevel:      EffortLow,
		}, true
	case CategoryStorageGrowth:
		return Recommendation{}, false
	default:
		return Recommendation{}, false
	}
}

var retentionRecommendation = Recommendation{
	Priority:         PriorityLow,
	ActionType:       ActionRetentionPolicy,
	Description:      "Consider implementing data retention policies to manage storage growth",
	EstimatedBenefit: "Controlled storage costs and improved performance",
	EffortLevel:      EffortHigh,
}

// GenerateRecommendations maps alerts in order and appends a retention policy
// recommendation when storage growth is degrading. Nothing is deduplicated.
func GenerateRecommendations(alerts []Alert, trends Trends) []Recommendation {
	recommendations := make([]Recommendation, 0, len(alerts)+1)

	for _, alert := range alerts {
		if rec, ok := recommendationFor(alert); ok {
			recommendations = append(recommendations, rec)
		}
	}

	if trends.StorageGrowthTrend == TrendDegrading {
		recommendations = append(recommendations, retentionRecommendation)
	}

	return recommendations
}
