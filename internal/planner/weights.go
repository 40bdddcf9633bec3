package planner

import (
	"github.com/JunoAX/housepoints-planner/internal/models"
)

// Role base weights. Parents already shoulder non-chore household duties,
// so their chore capacity is deliberately low; younger children get reduced
// capacity reflecting lower independence.
const (
	parentBaseWeight = 0.3
	teenBaseWeight   = 1.0
	childBaseWeight  = 0.8
)

// defaultWeightingAge is assumed when a member has no age on record.
// Independent of the eligibility default in week.go; the two must not be
// unified.
const defaultWeightingAge = 18

// MemberWeights computes the chore-capacity weight for each member, keyed
// by member id. Missing fields degrade via defaults and never fail.
func MemberWeights(members []models.FamilyMember) map[string]float64 {
	weights := make(map[string]float64, len(members))
	for _, m := range members {
		weights[m.ID] = roleBaseWeight(m.EffectiveRole()) * ageFactor(m.Age)
	}
	return weights
}

// roleBaseWeight maps a role to its base capacity. Unrecognized roles fall
// through to the child weight.
func roleBaseWeight(role string) float64 {
	switch role {
	case models.RoleParent:
		return parentBaseWeight
	case models.RoleTeen:
		return teenBaseWeight
	default:
		return childBaseWeight
	}
}

func ageFactor(age *int) float64 {
	a := defaultWeightingAge
	if age != nil {
		a = *age
	}
	switch {
	case a < 8:
		return 0.5
	case a < 12:
		return 0.7
	case a < 16:
		return 0.9
	default:
		return 1.0
	}
}
