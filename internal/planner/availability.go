package planner

import (
	"strings"

	"github.com/JunoAX/housepoints-planner/internal/models"
)

// Event keywords that block a whole day for everyone.
var blockingKeywords = []string{"vacation", "training"}

// dayBlocked reports whether any of the day's events makes the family
// unavailable. The gate is day-wide: a single matching event disables the
// whole family for that day, even members unrelated to the event.
func dayBlocked(events []string) bool {
	for _, event := range events {
		lower := strings.ToLower(event)
		for _, keyword := range blockingKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// AvailableMembers returns the members who may receive work on a day with
// the given events. If filtering would leave nobody, the full eligible list
// is restored so the distributor never receives an empty pool while
// eligible members exist.
func AvailableMembers(eligible []models.FamilyMember, events []string) []models.FamilyMember {
	available := eligible
	if dayBlocked(events) {
		available = nil
	}
	if len(available) == 0 {
		available = eligible
	}
	return available
}
