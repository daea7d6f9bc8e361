package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IMaintenanceRepository abstracts DynamoDB persistence for building-level
// maintenance bills. The pending->paid flip is not here: it happens inside
// the payment repository's transaction.
type IMaintenanceRepository interface {
	Create(ctx context.Context, m entities.MaintenanceBill) (entities.MaintenanceBill, error)
	GetByID(ctx context.Context, id string) (entities.MaintenanceBill, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.MaintenanceBill, error)
	// DeletePending removes the bill; ErrConditionalCheckFailed when it is
	// already paid.
	DeletePending(ctx context.Context, id string) error
}
