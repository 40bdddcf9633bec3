package planner

import (
	"sort"
	"time"

	"github.com/JunoAX/housepoints-planner/internal/models"
)

// distributeDay assigns up to maxTasks tasks to the available members for a
// single day. Members are sorted by weight descending and tasks from the
// leading subset of the catalog are handed out round-robin; the catalog is
// never rotated or consumed across days, so every day draws from the same
// leading tasks.
func distributeDay(available []models.FamilyMember, weights map[string]float64, tasks []models.ChoreTask, maxTasks int, due time.Time) []models.DailyAssignment {
	assignments := []models.DailyAssignment{}
	if len(available) == 0 || len(tasks) == 0 || maxTasks <= 0 {
		return assignments
	}

	sorted := make([]models.FamilyMember, len(available))
	copy(sorted, available)
	// Stable sort: equal weights keep their input order, so the plan is
	// deterministic for identical input.
	sort.SliceStable(sorted, func(i, j int) bool {
		return weights[sorted[i].ID] > weights[sorted[j].ID]
	})

	count := maxTasks
	if len(tasks) < count {
		count = len(tasks)
	}

	dueStamp := due.UTC().Format(time.RFC3339)
	for i := 0; i < count; i++ {
		member := sorted[i%len(sorted)]
		task := tasks[i]
		assignments = append(assignments, models.DailyAssignment{
			Title:        task.Title,
			AssigneeID:   member.ID,
			AssigneeName: member.Name,
			Due:          dueStamp,
			Points:       task.EffectivePoints(),
		})
	}

	return assignments
}
