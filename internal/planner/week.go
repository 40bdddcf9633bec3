// Package planner implements the offline weekly chore scheduler used as the
// last-resort planning tier when AI-backed planning is unavailable. It is
// pure computation over the supplied week context: no I/O, no persistence,
// no retained state, safe for concurrent callers.
package planner

import (
	"time"

	"github.com/JunoAX/housepoints-planner/internal/models"
)

const planDays = 7

const dateLayout = "2006-01-02"

// minEligibleAge is the youngest age that can receive chores. A member
// without an age on record counts as 0 here and never qualifies; weighting
// in weights.go deliberately defaults the same absent age to 18 instead.
const minEligibleAge = 6

// EligibleMembers returns the members who can receive chores at all: a
// recognized role (absent role counts as child) and age six or over.
func EligibleMembers(members []models.FamilyMember) []models.FamilyMember {
	eligible := []models.FamilyMember{}
	for _, m := range members {
		switch m.EffectiveRole() {
		case models.RoleParent, models.RoleTeen, models.RoleChild:
		default:
			continue
		}
		age := 0
		if m.Age != nil {
			age = *m.Age
		}
		if age < minEligibleAge {
			continue
		}
		eligible = append(eligible, m)
	}
	return eligible
}

// GenerateWeekPlan builds a seven-day chore plan starting today (UTC) and
// scores its fairness. It is the single entry point of the fallback
// scheduler.
func GenerateWeekPlan(week models.WeekContext) models.WeekPlanResponse {
	return generateWeekPlan(week, time.Now().UTC())
}

// generateWeekPlan is the clock-injected core of GenerateWeekPlan. The one
// now value is reused as the due stamp on every assignment of the week,
// across all seven days.
func generateWeekPlan(week models.WeekContext, now time.Time) models.WeekPlanResponse {
	eligible := EligibleMembers(week.FamilyMembers)
	if len(eligible) == 0 || len(week.Tasks) == 0 {
		return emptyWeekPlan(now)
	}

	weights := MemberWeights(week.FamilyMembers)
	maxTasks := week.Constraints.EffectiveMaxTasksPerDay()

	days := make([]models.WeekPlanDay, 0, planDays)
	for offset := 0; offset < planDays; offset++ {
		date := now.AddDate(0, 0, offset).Format(dateLayout)
		events := eventsFor(week.Calendar, date)
		available := AvailableMembers(eligible, events)
		days = append(days, models.WeekPlanDay{
			Date:  date,
			Tasks: distributeDay(available, weights, week.Tasks, maxTasks, now),
		})
	}

	return models.WeekPlanResponse{
		WeekPlan: days,
		Fairness: ScoreFairness(days, week.FamilyMembers),
	}
}

// eventsFor returns the events of the first calendar entry whose date
// matches exactly. A date with no calendar entry has no events.
func eventsFor(calendar []models.CalendarDay, date string) []string {
	for _, day := range calendar {
		if day.Date == date {
			return day.Events
		}
	}
	return nil
}

// emptyWeekPlan is the degenerate result when there is nothing to schedule:
// a full seven-day skeleton with empty task lists. Not an error.
func emptyWeekPlan(now time.Time) models.WeekPlanResponse {
	days := make([]models.WeekPlanDay, 0, planDays)
	for offset := 0; offset < planDays; offset++ {
		days = append(days, models.WeekPlanDay{
			Date:  now.AddDate(0, 0, offset).Format(dateLayout),
			Tasks: []models.DailyAssignment{},
		})
	}
	return models.WeekPlanResponse{
		WeekPlan: days,
		Fairness: models.FairnessReport{
			Distribution: map[string]float64{},
			Notes:        "No eligible members or no tasks to schedule; produced an empty weekly plan.",
		},
	}
}
