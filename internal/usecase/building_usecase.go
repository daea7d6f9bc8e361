package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBuildingNotFound    = errors.New("building not found")
	ErrInvalidBuildingID   = errors.New("invalid building_id")
	ErrInvalidBuildingName = errors.New("building name must be at least 2 characters long")
	ErrNoWings             = errors.New("wings must be a non-empty set")
	ErrUnitOccupied        = errors.New("unit already has an active assignment")
	ErrBuildingReferenced  = errors.New("building is referenced by bills or payments")
)

// WingInput is the caller-facing wing shape for create/update.
type WingInput struct {
	TotalFloors   int
	UnitsPerFloor int
}

// WingValidationError names the offending wing, per the contract that
// validation failures identify the field that broke them.
type WingValidationError struct {
	Wing   string
	Reason string
}

func (e *WingValidationError) Error() string {
	return fmt.Sprintf("wing %s: %s", e.Wing, e.Reason)
}

// BuildingPatch carries the updatable building fields. Nil means unchanged.
type BuildingPatch struct {
	Name  *string
	Wings map[string]WingInput
}

// IBuildingRegistry owns building/wing/unit-count invariants.

type IBuildingRegistry interface {
	CreateBuilding(ctx context.Context, ownerID, name string, wings map[string]WingInput) (entities.Building, error)
	GetBuilding(ctx context.Context, id string) (entities.Building, error)
	ListBuildingsByOwner(ctx context.Context, ownerID string) ([]entities.Building, error)
	UpdateBuilding(ctx context.Context, actorID, id string, patch BuildingPatch) (entities.Building, error)
	DeleteBuilding(ctx context.Context, actorID, id string) error
	AssignUnit(ctx context.Context, actorID, buildingID, wing string, floor int, unitNumber, occupantID string) (entities.UnitAssignment, error)
	CheckUnitAvailability(ctx context.Context, buildingID, wing string, floor int, unitNumber string) (bool, error)
	ListUnitsByUser(ctx context.Context, userID string) ([]entities.UnitAssignment, error)
	ListUnitsByBuilding(ctx context.Context, actorID, buildingID string) ([]entities.UnitAssignment, error)
}

type BuildingRegistry struct {
	buildings interfaces.IBuildingRepository
	units     interfaces.IUnitRepository
	unitBills interfaces.IUnitBillRepository
	payments  interfaces.IPaymentRepository
	resolver  IRoleResolver
}

var _ IBuildingRegistry = (*BuildingRegistry)(nil)

func NewBuildingRegistry(
	buildings interfaces.IBuildingRepository,
	units interfaces.IUnitRepository,
	unitBills interfaces.IUnitBillRepository,
	payments interfaces.IPaymentRepository,
	resolver IRoleResolver,
) *BuildingRegistry {
	return &BuildingRegistry{
		buildings: buildings,
		units:     units,
		unitBills: unitBills,
		payments:  payments,
		resolver:  resolver,
	}
}

const buildingCodeAttempts = 3

// CreateBuilding validates the wing shapes, computes aggregate unit counts
// with integer math, persists the building, and bootstraps the creator as
// admin. Code collisions are retried a bounded number of times before
// falling back to a timestamp-derived code.
func (u *BuildingRegistry) CreateBuilding(ctx context.Context, ownerID, name string, wings map[string]WingInput) (entities.Building, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Building{}, ErrInvalidRoleKey
	}
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return entities.Building{}, ErrInvalidBuildingName
	}

	wingNames, details, totalUnits, err := processWings(wings)
	if err != nil {
		return entities.Building{}, err
	}

	now := time.Now().UTC()
	b := entities.Building{
		Name:        name,
		OwnerID:     ownerID,
		Wings:       wingNames,
		WingDetails: details,
		TotalWings:  len(wingNames),
		TotalUnits:  totalUnits,
		Status:      entities.BuildingStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created := entities.Building{}
	for attempt := 0; attempt <= buildingCodeAttempts; attempt++ {
		if attempt < buildingCodeAttempts {
			b.ID = newBuildingCode()
		} else {
			b.ID = fmt.Sprintf("BLD-%d", now.UnixNano())
		}
		created, err = u.buildings.Create(ctx, b)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Building{}, err
		}
		log.Printf("[building][usecase] code collision building_id=%s attempt=%d", b.ID, attempt+1)
	}
	if err != nil {
		return entities.Building{}, err
	}

	if err := u.resolver.BootstrapAdmin(ctx, ownerID, created.ID); err != nil {
		return entities.Building{}, err
	}
	log.Printf("[building][usecase] building created building_id=%s owner_id=%s total_units=%d", created.ID, ownerID, totalUnits)
	return created, nil
}

func (u *BuildingRegistry) GetBuilding(ctx context.Context, id string) (entities.Building, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Building{}, ErrInvalidBuildingID
	}
	b, err := u.buildings.GetByID(ctx, id)
	if err != nil {
		return entities.Building{}, err
	}
	if b.ID == "" {
		return entities.Building{}, ErrBuildingNotFound
	}
	return b, nil
}

func (u *BuildingRegistry) ListBuildingsByOwner(ctx context.Context, ownerID string) ([]entities.Building, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidRoleKey
	}
	return u.buildings.ListByOwner(ctx, ownerID)
}

// UpdateBuilding applies the patch and recomputes aggregate unit totals
// whenever wing details change. Admin only.
func (u *BuildingRegistry) UpdateBuilding(ctx context.Context, actorID, id string, patch BuildingPatch) (entities.Building, error) {
	b, err := u.GetBuilding(ctx, id)
	if err != nil {
		return entities.Building{}, err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.ID, entities.RoleAdmin); err != nil {
		return entities.Building{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if len(name) < 2 {
			return entities.Building{}, ErrInvalidBuildingName
		}
		b.Name = name
	}
	if patch.Wings != nil {
		wingNames, details, totalUnits, err := processWings(patch.Wings)
		if err != nil {
			return entities.Building{}, err
		}
		b.Wings = wingNames
		b.WingDetails = details
		b.TotalWings = len(wingNames)
		b.TotalUnits = totalUnits
	}
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.buildings.Update(ctx, b)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.Building{}, ErrBuildingNotFound
		}
		return entities.Building{}, err
	}
	log.Printf("[building][usecase] building updated building_id=%s total_units=%d", updated.ID, updated.TotalUnits)
	return updated, nil
}

// DeleteBuilding soft-deletes (status=inactive). It refuses while any unit
// bill or payment still references the building; refunds and reconciliation
// happen out-of-band first.
func (u *BuildingRegistry) DeleteBuilding(ctx context.Context, actorID, id string) error {
	b, err := u.GetBuilding(ctx, id)
	if err != nil {
		return err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.ID, entities.RoleAdmin); err != nil {
		return err
	}

	bills, err := u.unitBills.ListByBuilding(ctx, b.ID)
	if err != nil {
		return err
	}
	if len(bills) > 0 {
		return ErrBuildingReferenced
	}
	pays, err := u.payments.ListByBuilding(ctx, b.ID)
	if err != nil {
		return err
	}
	if len(pays) > 0 {
		return ErrBuildingReferenced
	}

	if _, err := u.buildings.UpdateStatus(ctx, b.ID, entities.BuildingStatusInactive); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ErrBuildingNotFound
		}
		return err
	}
	log.Printf("[building][usecase] building deactivated building_id=%s by=%s", b.ID, actorID)
	return nil
}

// AssignUnit creates an occupancy. Uniqueness of (building, wing, floor,
// unit_number) rides on the conditional put, not on a prior read.
func (u *BuildingRegistry) AssignUnit(ctx context.Context, actorID, buildingID, wing string, floor int, unitNumber, occupantID string) (entities.UnitAssignment, error) {
	occupantID = strings.TrimSpace(occupantID)
	unitNumber = strings.TrimSpace(unitNumber)
	wing = strings.TrimSpace(wing)
	if occupantID == "" || unitNumber == "" || wing == "" || floor < 0 {
		return entities.UnitAssignment{}, &WingValidationError{Wing: wing, Reason: "missing or invalid unit fields"}
	}

	b, err := u.GetBuilding(ctx, buildingID)
	if err != nil {
		return entities.UnitAssignment{}, err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.ID, entities.RoleAdmin); err != nil {
		return entities.UnitAssignment{}, err
	}
	if !b.HasWing(wing) {
		return entities.UnitAssignment{}, &WingValidationError{
			Wing:   wing,
			Reason: fmt.Sprintf("not in building wings (%s)", strings.Join(b.Wings, ", ")),
		}
	}

	a := entities.UnitAssignment{
		OccupancyID: entities.OccupancyID(b.ID, wing, floor, unitNumber),
		BuildingID:  b.ID,
		Wing:        wing,
		Floor:       floor,
		UnitNumber:  unitNumber,
		UserID:      occupantID,
		Status:      entities.UnitStatusActive,
		AssignedAt:  time.Now().UTC(),
	}

	created, err := u.units.Create(ctx, a)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.UnitAssignment{}, ErrUnitOccupied
		}
		return entities.UnitAssignment{}, err
	}
	log.Printf("[building][usecase] unit assigned building_id=%s wing=%s floor=%d unit=%s user_id=%s", b.ID, wing, floor, unitNumber, occupantID)
	return created, nil
}

func (u *BuildingRegistry) CheckUnitAvailability(ctx context.Context, buildingID, wing string, floor int, unitNumber string) (bool, error) {
	b, err := u.GetBuilding(ctx, buildingID)
	if err != nil {
		return false, err
	}
	if !b.HasWing(wing) {
		return false, &WingValidationError{
			Wing:   wing,
			Reason: fmt.Sprintf("not in building wings (%s)", strings.Join(b.Wings, ", ")),
		}
	}
	existing, err := u.units.GetByOccupancy(ctx, entities.OccupancyID(b.ID, wing, floor, unitNumber))
	if err != nil {
		return false, err
	}
	return existing.OccupancyID == "" || existing.Status != entities.UnitStatusActive, nil
}

func (u *BuildingRegistry) ListUnitsByUser(ctx context.Context, userID string) ([]entities.UnitAssignment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidRoleKey
	}
	return u.units.ListByUser(ctx, userID)
}

func (u *BuildingRegistry) ListUnitsByBuilding(ctx context.Context, actorID, buildingID string) ([]entities.UnitAssignment, error) {
	b, err := u.GetBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.ID, entities.RoleAdmin, entities.RoleMember); err != nil {
		return nil, err
	}
	return u.units.ListByBuilding(ctx, b.ID)
}

// processWings validates every wing shape and returns the wing set, the
// per-wing details with derived totals, and the building aggregate.
func processWings(wings map[string]WingInput) ([]string, map[string]entities.WingDetail, int, error) {
	if len(wings) == 0 {
		return nil, nil, 0, ErrNoWings
	}

	names := make([]string, 0, len(wings))
	details := make(map[string]entities.WingDetail, len(wings))
	total := 0
	for name, in := range wings {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, nil, 0, &WingValidationError{Wing: name, Reason: "wing name must be non-empty"}
		}
		if _, dup := details[trimmed]; dup {
			return nil, nil, 0, &WingValidationError{Wing: trimmed, Reason: "duplicate wing name"}
		}
		if in.TotalFloors < 1 || in.TotalFloors > 100 {
			return nil, nil, 0, &WingValidationError{Wing: trimmed, Reason: "total_floors must be between 1 and 100"}
		}
		if in.UnitsPerFloor < 1 || in.UnitsPerFloor > 20 {
			return nil, nil, 0, &WingValidationError{Wing: trimmed, Reason: "units_per_floor must be between 1 and 20"}
		}
		wingUnits := in.TotalFloors * in.UnitsPerFloor
		details[trimmed] = entities.WingDetail{
			TotalFloors:   in.TotalFloors,
			UnitsPerFloor: in.UnitsPerFloor,
			TotalUnits:    wingUnits,
		}
		names = append(names, trimmed)
		total += wingUnits
	}
	sort.Strings(names)
	return names, details, total, nil
}

func newBuildingCode() string {
	return "BLD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
