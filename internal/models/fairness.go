package models

// FairnessReport summarizes how the week's tasks were shared out.
// Distribution maps member display names to their fraction of the week's
// total tasks, rounded to two decimals. Display names are not guaranteed
// unique; when two members share a name the later member's share wins.
type FairnessReport struct {
	Distribution map[string]float64 `json:"distribution"`
	Notes        string             `json:"notes"`
}

// FairnessReportRequest is the request body for re-scoring an existing week
// plan against a member list.
type FairnessReportRequest struct {
	WeekPlan      []WeekPlanDay  `json:"weekPlan"`
	FamilyMembers []FamilyMember `json:"familyMembers"`
}
