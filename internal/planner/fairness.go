package planner

import (
	"math"

	"github.com/JunoAX/housepoints-planner/internal/models"
)

// ScoreFairness produces the per-member share of the week's total tasks.
// Shares are keyed by display name and written in member input order, so
// when two members share a name the later member's share wins.
func ScoreFairness(days []models.WeekPlanDay, members []models.FamilyMember) models.FairnessReport {
	taskCounts := make(map[string]int, len(members))
	pointTotals := make(map[string]int, len(members)) // accumulated but not reported
	total := 0
	for _, day := range days {
		for _, assignment := range day.Tasks {
			taskCounts[assignment.AssigneeID]++
			pointTotals[assignment.AssigneeID] += assignment.Points
			total++
		}
	}

	distribution := make(map[string]float64, len(members))
	for _, m := range members {
		share := 0.0
		if total > 0 {
			share = round2(float64(taskCounts[m.ID]) / float64(total))
		}
		distribution[m.Name] = share
	}

	return models.FairnessReport{
		Distribution: distribution,
		Notes:        "Heuristic share of weekly task count per member, from weighted round-robin by role and age; not a statistical fairness guarantee.",
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
