package entities

import "time"

// Role is the privilege level a user holds on one building.

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	// RoleNone is the lookup result for a user with no assignment on the
	// building. It is never persisted.
	RoleNone Role = "none"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// RoleAssignment binds (user, building) to exactly one role.
//
// Storage model (DynamoDB):
//   - PK: building_id, SK: user_id
//   - GSI1 (user_id-index): user_id
//
// This is the single role store; there is no second membership table.
type RoleAssignment struct {
	BuildingID string    `json:"building_id"`
	UserID     string    `json:"user_id"`
	Role       Role      `json:"role"`
	GrantedBy  string    `json:"granted_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
