package response

import (
	"time"

	"societyhub/internal/domain/entities"
)

type RoleResponse struct {
	BuildingID string    `json:"building_id"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	GrantedBy  string    `json:"granted_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromRoleAssignment(a entities.RoleAssignment) RoleResponse {
	return RoleResponse{
		BuildingID: a.BuildingID,
		UserID:     a.UserID,
		Role:       string(a.Role),
		GrantedBy:  a.GrantedBy,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromRoleAssignments(as []entities.RoleAssignment) []RoleResponse {
	out := make([]RoleResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromRoleAssignment(a))
	}
	return out
}
