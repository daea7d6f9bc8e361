package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IConnectionRepository abstracts DynamoDB persistence for connection
// requests.
type IConnectionRepository interface {
	Create(ctx context.Context, r entities.ConnectionRequest) (entities.ConnectionRequest, error)
	GetByID(ctx context.Context, id string) (entities.ConnectionRequest, error)
	ListByBuilding(ctx context.Context, buildingID string) ([]entities.ConnectionRequest, error)
	// UpdateStatusIfPending resolves the request; ErrConditionalCheckFailed
	// when it was already processed.
	UpdateStatusIfPending(ctx context.Context, id string, status entities.ConnectionStatus, processedBy string) (entities.ConnectionRequest, error)
}
