package interfaces

import (
	"context"

	"societyhub/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for user profiles.
type IUserRepository interface {
	// Create writes the profile; ErrConditionalCheckFailed when the user_id is
	// already taken.
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
