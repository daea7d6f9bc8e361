package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IRoleRepository abstracts DynamoDB persistence for role assignments.
//
// Get returns a zero-value assignment (empty UserID) when the pair has no
// role; absence is a normal result, not an error.
type IRoleRepository interface {
	Get(ctx context.Context, buildingID, userID string) (entities.RoleAssignment, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.RoleAssignment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.RoleAssignment, error)
	// PutIfAbsent writes a new assignment; ErrConditionalCheckFailed when the
	// (building, user) pair already has one.
	PutIfAbsent(ctx context.Context, a entities.RoleAssignment) error
	// Overwrite replaces an existing assignment's role.
	Overwrite(ctx context.Context, a entities.RoleAssignment) (entities.RoleAssignment, error)
	Delete(ctx context.Context, buildingID, userID string) error
}
