package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound         = errors.New("connection request not found")
	ErrInvalidRequestID        = errors.New("invalid request_id")
	ErrRequestAlreadyProcessed = errors.New("connection request already processed")
	ErrInvalidRequestAction    = errors.New("action must be approve or reject")
	ErrDuplicatePendingRequest = errors.New("a pending request for this unit already exists")
)

type ConnectionAction string

const (
	ConnectionActionApprove ConnectionAction = "approve"
	ConnectionActionReject  ConnectionAction = "reject"
)

// SubmitConnectionInput is the resident-supplied request payload.
type SubmitConnectionInput struct {
	UserID     string
	UserName   string
	UserMobile string
	BuildingID string
	Wing       string
	Floor      int
	UnitNumber string
}

// IConnectionDesk manages resident connection requests. Approval is the only
// path by which a non-creator becomes a member: it grants the member role and
// the unit assignment in one go.

type IConnectionDesk interface {
	Submit(ctx context.Context, in SubmitConnectionInput) (entities.ConnectionRequest, error)
	Process(ctx context.Context, adminID, requestID string, action ConnectionAction) (entities.ConnectionRequest, error)
	ListPending(ctx context.Context, adminID, buildingID string) ([]entities.ConnectionRequest, error)
	ListConnectedBuildings(ctx context.Context, userID string) ([]entities.Building, error)
}

type ConnectionDesk struct {
	requests  interfaces.IConnectionRepository
	buildings interfaces.IBuildingRepository
	roles     interfaces.IRoleRepository
	registry  IBuildingRegistry
	resolver  IRoleResolver
}

var _ IConnectionDesk = (*ConnectionDesk)(nil)

func NewConnectionDesk(
	requests interfaces.IConnectionRepository,
	buildings interfaces.IBuildingRepository,
	roles interfaces.IRoleRepository,
	registry IBuildingRegistry,
	resolver IRoleResolver,
) *ConnectionDesk {
	return &ConnectionDesk{
		requests:  requests,
		buildings: buildings,
		roles:     roles,
		registry:  registry,
		resolver:  resolver,
	}
}

// Submit validates the building and wing, rejects a duplicate pending
// request for the same unit by the same user, and files the request.
func (u *ConnectionDesk) Submit(ctx context.Context, in SubmitConnectionInput) (entities.ConnectionRequest, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.UserName = strings.TrimSpace(in.UserName)
	in.UserMobile = strings.TrimSpace(in.UserMobile)
	in.Wing = strings.TrimSpace(in.Wing)
	in.UnitNumber = strings.TrimSpace(in.UnitNumber)
	if in.UserID == "" || in.UserName == "" || in.UserMobile == "" || in.Wing == "" || in.UnitNumber == "" || in.Floor < 0 {
		return entities.ConnectionRequest{}, ErrInvalidRoleKey
	}

	b, err := u.buildings.GetByID(ctx, strings.TrimSpace(in.BuildingID))
	if err != nil {
		return entities.ConnectionRequest{}, err
	}
	if b.ID == "" {
		return entities.ConnectionRequest{}, ErrBuildingNotFound
	}
	if !b.HasWing(in.Wing) {
		return entities.ConnectionRequest{}, &WingValidationError{
			Wing:   in.Wing,
			Reason: fmt.Sprintf("not in building wings (%s)", strings.Join(b.Wings, ", ")),
		}
	}

	existing, err := u.requests.ListByBuilding(ctx, b.ID)
	if err != nil {
		return entities.ConnectionRequest{}, err
	}
	for _, r := range existing {
		if r.Status == entities.ConnectionStatusPending &&
			r.UserID == in.UserID && r.Wing == in.Wing &&
			r.Floor == in.Floor && r.UnitNumber == in.UnitNumber {
			return entities.ConnectionRequest{}, ErrDuplicatePendingRequest
		}
	}

	now := time.Now().UTC()
	r := entities.ConnectionRequest{
		ID:         "REQ-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		UserID:     in.UserID,
		UserName:   in.UserName,
		UserMobile: in.UserMobile,
		BuildingID: b.ID,
		Wing:       in.Wing,
		Floor:      in.Floor,
		UnitNumber: in.UnitNumber,
		Status:     entities.ConnectionStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		return entities.ConnectionRequest{}, err
	}
	log.Printf("[connection][usecase] request submitted request_id=%s building_id=%s user_id=%s", created.ID, b.ID, in.UserID)
	return created, nil
}

// Process resolves a pending request. Approval grants the member role and
// assigns the unit before the status flip; the flip is conditional on the
// request still being pending, so concurrent processors cannot both win.
func (u *ConnectionDesk) Process(ctx context.Context, adminID, requestID string, action ConnectionAction) (entities.ConnectionRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ConnectionRequest{}, ErrInvalidRequestID
	}
	if action != ConnectionActionApprove && action != ConnectionActionReject {
		return entities.ConnectionRequest{}, ErrInvalidRequestAction
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ConnectionRequest{}, err
	}
	if r.ID == "" {
		return entities.ConnectionRequest{}, ErrRequestNotFound
	}
	if err := u.resolver.RequireRole(ctx, adminID, r.BuildingID, entities.RoleAdmin); err != nil {
		return entities.ConnectionRequest{}, err
	}
	if r.Status != entities.ConnectionStatusPending {
		return entities.ConnectionRequest{}, ErrRequestAlreadyProcessed
	}

	if action == ConnectionActionReject {
		updated, err := u.requests.UpdateStatusIfPending(ctx, r.ID, entities.ConnectionStatusRejected, adminID)
		if err != nil {
			if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
				return entities.ConnectionRequest{}, ErrRequestAlreadyProcessed
			}
			return entities.ConnectionRequest{}, err
		}
		log.Printf("[connection][usecase] request rejected request_id=%s by=%s", r.ID, adminID)
		return updated, nil
	}

	if _, err := u.registry.AssignUnit(ctx, adminID, r.BuildingID, r.Wing, r.Floor, r.UnitNumber, r.UserID); err != nil {
		return entities.ConnectionRequest{}, err
	}

	now := time.Now().UTC()
	err = u.roles.PutIfAbsent(ctx, entities.RoleAssignment{
		BuildingID: r.BuildingID,
		UserID:     r.UserID,
		Role:       entities.RoleMember,
		GrantedBy:  adminID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil && !errors.Is(err, interfaces.ErrConditionalCheckFailed) {
		// An existing role (for example a second unit in the same building)
		// stays as is.
		return entities.ConnectionRequest{}, err
	}

	updated, err := u.requests.UpdateStatusIfPending(ctx, r.ID, entities.ConnectionStatusApproved, adminID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.ConnectionRequest{}, ErrRequestAlreadyProcessed
		}
		return entities.ConnectionRequest{}, err
	}
	log.Printf("[connection][usecase] request approved request_id=%s building_id=%s user_id=%s by=%s", r.ID, r.BuildingID, r.UserID, adminID)
	return updated, nil
}

func (u *ConnectionDesk) ListPending(ctx context.Context, adminID, buildingID string) ([]entities.ConnectionRequest, error) {
	buildingID = strings.TrimSpace(buildingID)
	if buildingID == "" {
		return nil, ErrInvalidBuildingID
	}
	if err := u.resolver.RequireRole(ctx, adminID, buildingID, entities.RoleAdmin); err != nil {
		return nil, err
	}

	all, err := u.requests.ListByBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	pending := make([]entities.ConnectionRequest, 0, len(all))
	for _, r := range all {
		if r.Status == entities.ConnectionStatusPending {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

// ListConnectedBuildings resolves the buildings a user holds any role on.
func (u *ConnectionDesk) ListConnectedBuildings(ctx context.Context, userID string) ([]entities.Building, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidRoleKey
	}

	assignments, err := u.roles.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	buildings := make([]entities.Building, 0, len(assignments))
	for _, a := range assignments {
		b, err := u.buildings.GetByID(ctx, a.BuildingID)
		if err != nil {
			return nil, err
		}
		if b.ID != "" {
			buildings = append(buildings, b)
		}
	}
	return buildings, nil
}
