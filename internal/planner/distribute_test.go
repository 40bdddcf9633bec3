package planner

import (
	"testing"
	"time"

	"github.com/JunoAX/housepoints-planner/internal/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

func TestDistributeDayRoundRobin(t *testing.T) {
	available := []models.FamilyMember{
		{ID: "low", Name: "Low"},
		{ID: "high", Name: "High"},
	}
	weights := map[string]float64{"low": 0.3, "high": 0.9}
	tasks := []models.ChoreTask{
		{Title: "Dishes"},
		{Title: "Vacuum"},
		{Title: "Trash"},
	}

	assignments := distributeDay(available, weights, tasks, 3, testNow)

	require.Len(t, assignments, 3)
	// Sorted by weight descending: high, low. Task i goes to sorted[i mod 2].
	require.Equal(t, "high", assignments[0].AssigneeID)
	require.Equal(t, "low", assignments[1].AssigneeID)
	require.Equal(t, "high", assignments[2].AssigneeID)
	require.Equal(t, "Dishes", assignments[0].Title)
	require.Equal(t, "Vacuum", assignments[1].Title)
	require.Equal(t, "Trash", assignments[2].Title)
}

func TestDistributeDayStableTieOrder(t *testing.T) {
	available := []models.FamilyMember{
		{ID: "first", Name: "First"},
		{ID: "second", Name: "Second"},
	}
	weights := map[string]float64{"first": 0.8, "second": 0.8}
	tasks := []models.ChoreTask{{Title: "Dishes"}, {Title: "Vacuum"}}

	assignments := distributeDay(available, weights, tasks, 2, testNow)

	// Equal weights keep input order.
	require.Equal(t, "first", assignments[0].AssigneeID)
	require.Equal(t, "second", assignments[1].AssigneeID)
}

func TestDistributeDayCapsAtTaskCount(t *testing.T) {
	available := []models.FamilyMember{{ID: "a", Name: "A"}}
	weights := map[string]float64{"a": 0.8}
	tasks := []models.ChoreTask{{Title: "Dishes"}}

	assignments := distributeDay(available, weights, tasks, 5, testNow)

	require.Len(t, assignments, 1)
}

func TestDistributeDayLeadingSubsetOnly(t *testing.T) {
	available := []models.FamilyMember{{ID: "a", Name: "A"}}
	weights := map[string]float64{"a": 0.8}
	tasks := []models.ChoreTask{
		{Title: "Dishes"},
		{Title: "Vacuum"},
		{Title: "Trash"},
		{Title: "Laundry"},
	}

	assignments := distributeDay(available, weights, tasks, 2, testNow)

	require.Len(t, assignments, 2)
	require.Equal(t, "Dishes", assignments[0].Title)
	require.Equal(t, "Vacuum", assignments[1].Title)
}

func TestDistributeDayDefaultsAndDueStamp(t *testing.T) {
	available := []models.FamilyMember{{ID: "a", Name: "A"}}
	weights := map[string]float64{"a": 0.8}
	tasks := []models.ChoreTask{
		{Title: "Dishes"},
		{Title: "Vacuum", Points: intPtr(25)},
	}

	assignments := distributeDay(available, weights, tasks, 2, testNow)

	require.Equal(t, 10, assignments[0].Points)
	require.Equal(t, 25, assignments[1].Points)
	for _, a := range assignments {
		require.Equal(t, "2026-08-31T09:30:00Z", a.Due)
	}
}

func TestDistributeDayDegenerateInputs(t *testing.T) {
	member := []models.FamilyMember{{ID: "a", Name: "A"}}
	weights := map[string]float64{"a": 0.8}
	tasks := []models.ChoreTask{{Title: "Dishes"}}

	require.Empty(t, distributeDay(nil, weights, tasks, 3, testNow))
	require.Empty(t, distributeDay(member, weights, nil, 3, testNow))
	require.Empty(t, distributeDay(member, weights, tasks, 0, testNow))
}
