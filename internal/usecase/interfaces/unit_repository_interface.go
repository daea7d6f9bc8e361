package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IUnitRepository abstracts DynamoDB persistence for unit assignments.
//
// Create is keyed on the occupancy tuple, so the at-most-one-active invariant
// holds under concurrent assignment attempts without a prior read.
type IUnitRepository interface {
	// Create writes the assignment; ErrConditionalCheckFailed when the dwelling
	// already has an active occupant.
	Create(ctx context.Context, u entities.UnitAssignment) (entities.UnitAssignment, error)
	GetByOccupancy(ctx context.Context, occupancyID string) (entities.UnitAssignment, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.UnitAssignment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.UnitAssignment, error)
}
