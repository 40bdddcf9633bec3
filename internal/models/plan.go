package models

// WeekContext is the snapshot an outer planning tier hands to the fallback
// scheduler: members, task catalog, calendar and constraints. The planner
// reads it and nothing else.
type WeekContext struct {
	FamilyMembers []FamilyMember `json:"familyMembers"`
	Tasks         []ChoreTask    `json:"tasks"`
	Calendar      []CalendarDay  `json:"calendar"`
	Constraints   Constraints    `json:"constraints"`
}

// DailyAssignment represents one task handed to one member for one day.
// Created fresh per (day, task) pairing; never updated.
type DailyAssignment struct {
	Title        string `json:"title"`
	AssigneeID   string `json:"assignee"`
	AssigneeName string `json:"assigneeName"`
	Due          string `json:"due"` // RFC3339 timestamp of plan generation
	Points       int    `json:"points"`
}

// WeekPlanDay is a single day entry in the weekly plan.
type WeekPlanDay struct {
	Date  string            `json:"date"`
	Tasks []DailyAssignment `json:"tasks"`
}

// WeekPlanResponse is the full output of a fallback planning run: seven day
// entries (today first) plus the fairness report for the week.
type WeekPlanResponse struct {
	WeekPlan []WeekPlanDay  `json:"weekPlan"`
	Fairness FairnessReport `json:"fairness"`
}
