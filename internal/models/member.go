package models

// FamilyMember represents a family member as supplied by the caller.
// The planner never mutates or persists it.
type FamilyMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
	Role string `json:"role,omitempty"` // parent, teen or child; treated as child when empty
}

// RoleParent, RoleTeen and RoleChild are the recognized member roles.
const (
	RoleParent = "parent"
	RoleTeen   = "teen"
	RoleChild  = "child"
)

// EffectiveRole returns the member's role, defaulting to child when absent.
func (m FamilyMember) EffectiveRole() string {
	if m.Role == "" {
		return RoleChild
	}
	return m.Role
}
