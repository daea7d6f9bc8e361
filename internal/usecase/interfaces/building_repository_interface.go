package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IBuildingRepository abstracts DynamoDB persistence for Building.
type IBuildingRepository interface {
	// Create writes a new building; ErrConditionalCheckFailed when the
	// generated building_id is already taken.
	Create(ctx context.Context, b entities.Building) (entities.Building, error)
	GetByID(ctx context.Context, id string) (entities.Building, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Building, error)
	// Update rewrites name/wings/wing_details/totals; ErrConditionalCheckFailed
	// when the building no longer exists.
	Update(ctx context.Context, b entities.Building) (entities.Building, error)
	UpdateStatus(ctx context.Context, id string, status entities.BuildingStatus) (entities.Building, error)
}
