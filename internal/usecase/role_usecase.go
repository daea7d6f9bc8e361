package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"
)

var (
	ErrNotAuthorized   = errors.New("not authorized for this building")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidRoleKey  = errors.New("invalid building_id or user_id")
	ErrMemberNotFound  = errors.New("member not found")
	ErrLastAdmin       = errors.New("cannot remove the last admin")
	ErrRoleAlreadyHeld = errors.New("user already holds a role on this building")
)

// IRoleResolver answers "does user U hold role R on building B" and owns all
// role mutations. Callers never see the storage shape.

type IRoleResolver interface {
	GetRole(ctx context.Context, userID, buildingID string) (entities.Role, error)
	RequireRole(ctx context.Context, userID, buildingID string, allowed ...entities.Role) error
	AssignRole(ctx context.Context, actorID, userID, buildingID string, role entities.Role) (entities.RoleAssignment, error)
	// BootstrapAdmin grants the creator admin unconditionally; only the
	// building-creation path calls it. The conditional put keeps a concurrent
	// bootstrap from overwriting an existing assignment.
	BootstrapAdmin(ctx context.Context, userID, buildingID string) error
	ListMembers(ctx context.Context, actorID, buildingID string) ([]entities.RoleAssignment, error)
	RemoveMember(ctx context.Context, actorID, userID, buildingID string) error
}

type RoleResolver struct {
	roles interfaces.IRoleRepository
}

var _ IRoleResolver = (*RoleResolver)(nil)

func NewRoleResolver(roles interfaces.IRoleRepository) *RoleResolver {
	return &RoleResolver{roles: roles}
}

// GetRole resolves the (user, building) pair. RoleNone is a normal result.
func (r *RoleResolver) GetRole(ctx context.Context, userID, buildingID string) (entities.Role, error) {
	userID = strings.TrimSpace(userID)
	buildingID = strings.TrimSpace(buildingID)
	if userID == "" || buildingID == "" {
		return entities.RoleNone, ErrInvalidRoleKey
	}

	a, err := r.roles.Get(ctx, buildingID, userID)
	if err != nil {
		return entities.RoleNone, err
	}
	if a.UserID == "" {
		return entities.RoleNone, nil
	}
	return a.Role, nil
}

func (r *RoleResolver) RequireRole(ctx context.Context, userID, buildingID string, allowed ...entities.Role) error {
	role, err := r.GetRole(ctx, userID, buildingID)
	if err != nil {
		return err
	}
	for _, want := range allowed {
		if role == want {
			return nil
		}
	}
	return ErrNotAuthorized
}

// AssignRole grants or changes a role. The actor must be an admin of the
// building; overwriting an existing assignment is an admin-only operation by
// construction.
func (r *RoleResolver) AssignRole(ctx context.Context, actorID, userID, buildingID string, role entities.Role) (entities.RoleAssignment, error) {
	userID = strings.TrimSpace(userID)
	buildingID = strings.TrimSpace(buildingID)
	if userID == "" || buildingID == "" {
		return entities.RoleAssignment{}, ErrInvalidRoleKey
	}
	if !role.Valid() {
		return entities.RoleAssignment{}, ErrInvalidRole
	}
	if err := r.RequireRole(ctx, actorID, buildingID, entities.RoleAdmin); err != nil {
		return entities.RoleAssignment{}, err
	}

	now := time.Now().UTC()
	a := entities.RoleAssignment{
		BuildingID: buildingID,
		UserID:     userID,
		Role:       role,
		GrantedBy:  actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	existing, err := r.roles.Get(ctx, buildingID, userID)
	if err != nil {
		return entities.RoleAssignment{}, err
	}
	if existing.UserID != "" {
		a.CreatedAt = existing.CreatedAt
		updated, err := r.roles.Overwrite(ctx, a)
		if err != nil {
			return entities.RoleAssignment{}, err
		}
		log.Printf("[role][usecase] role changed building_id=%s user_id=%s role=%s by=%s", buildingID, userID, role, actorID)
		return updated, nil
	}

	if err := r.roles.PutIfAbsent(ctx, a); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.RoleAssignment{}, ErrRoleAlreadyHeld
		}
		return entities.RoleAssignment{}, err
	}
	log.Printf("[role][usecase] role granted building_id=%s user_id=%s role=%s by=%s", buildingID, userID, role, actorID)
	return a, nil
}

func (r *RoleResolver) BootstrapAdmin(ctx context.Context, userID, buildingID string) error {
	now := time.Now().UTC()
	err := r.roles.PutIfAbsent(ctx, entities.RoleAssignment{
		BuildingID: buildingID,
		UserID:     userID,
		Role:       entities.RoleAdmin,
		GrantedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
		// Someone already holds a role here; never downgrade it silently.
		return ErrRoleAlreadyHeld
	}
	return err
}

func (r *RoleResolver) ListMembers(ctx context.Context, actorID, buildingID string) ([]entities.RoleAssignment, error) {
	buildingID = strings.TrimSpace(buildingID)
	if buildingID == "" {
		return nil, ErrInvalidRoleKey
	}
	if err := r.RequireRole(ctx, actorID, buildingID, entities.RoleAdmin, entities.RoleMember); err != nil {
		return nil, err
	}
	return r.roles.ListByBuilding(ctx, buildingID)
}

// RemoveMember drops a user's role. A building must always keep at least one
// admin, so removing the last one is a conflict.
func (r *RoleResolver) RemoveMember(ctx context.Context, actorID, userID, buildingID string) error {
	userID = strings.TrimSpace(userID)
	buildingID = strings.TrimSpace(buildingID)
	if userID == "" || buildingID == "" {
		return ErrInvalidRoleKey
	}
	if err := r.RequireRole(ctx, actorID, buildingID, entities.RoleAdmin); err != nil {
		return err
	}

	target, err := r.roles.Get(ctx, buildingID, userID)
	if err != nil {
		return err
	}
	if target.UserID == "" {
		return ErrMemberNotFound
	}
	if target.Role == entities.RoleAdmin {
		members, err := r.roles.ListByBuilding(ctx, buildingID)
		if err != nil {
			return err
		}
		admins := 0
		for _, m := range members {
			if m.Role == entities.RoleAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	if err := r.roles.Delete(ctx, buildingID, userID); err != nil {
		return err
	}
	log.Printf("[role][usecase] member removed building_id=%s user_id=%s by=%s", buildingID, userID, actorID)
	return nil
}
