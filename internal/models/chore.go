package models

// DefaultTaskPoints is applied when a task arrives without a point value.
const DefaultTaskPoints = 10

// ChoreTask represents a recurring task from the household catalog.
// The title is the only identity the planner uses; there is no task id
// at this layer.
type ChoreTask struct {
	Title     string  `json:"title"`
	Points    *int    `json:"points,omitempty"`
	Frequency *string `json:"frequency,omitempty"` // informational, not consulted by the planner
}

// EffectivePoints returns the task's point value, defaulting when absent.
func (t ChoreTask) EffectivePoints() int {
	if t.Points == nil {
		return DefaultTaskPoints
	}
	return *t.Points
}
