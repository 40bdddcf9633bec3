package models

// CalendarDay represents one day of the family calendar with its free-text events.
type CalendarDay struct {
	Date   string   `json:"date"` // YYYY-MM-DD
	Events []string `json:"events"`
}

// DefaultMaxTasksPerDay caps daily assignments when no constraint is supplied.
const DefaultMaxTasksPerDay = 3

// Constraints carries caller-tunable planning limits.
type Constraints struct {
	MaxTasksPerDay *int `json:"maxTasksPerDay,omitempty"`
}

// EffectiveMaxTasksPerDay returns the daily cap, defaulting when absent.
// An explicit zero is honored and yields empty days.
func (c Constraints) EffectiveMaxTasksPerDay() int {
	if c.MaxTasksPerDay == nil {
		return DefaultMaxTasksPerDay
	}
	return *c.MaxTasksPerDay
}
