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
	ErrMaintenanceNotFound  = errors.New("maintenance bill not found")
	ErrInvalidMaintenanceID = errors.New("invalid maintenance_id")
	ErrInvalidDueDate       = errors.New("due_date is not a parseable date")
	ErrInvalidScope         = errors.New("scope must be all wings or a non-empty wing set")
	ErrNoBillLines          = errors.New("bill_lines must be non-empty")
	ErrUnitBillNotFound     = errors.New("unit maintenance bill not found")
	ErrInvalidUnitBillID    = errors.New("invalid unit_maintenance_id")
	ErrBillAlreadyAllocated = errors.New("unit bills already allocated for this maintenance bill")
	ErrUnitBillPaid         = errors.New("unit bill is already paid")
)

// BillScope is the target of a building bill: all wings, or an explicit
// non-empty subset. The two encodings are mutually exclusive.
type BillScope struct {
	AllWings bool
	Wings    []string
}

// IMaintenanceAllocator fans a building-level bill out into per-unit bills.

type IMaintenanceAllocator interface {
	CreateBuildingBill(ctx context.Context, actorID, buildingID, dueDate, description string, scope BillScope, lines []entities.BillLine) (entities.MaintenanceBill, error)
	GetBuildingBill(ctx context.Context, id string) (entities.MaintenanceBill, error)
	ListBuildingBills(ctx context.Context, buildingID string) ([]entities.MaintenanceBill, error)
	DeleteBuildingBill(ctx context.Context, actorID, id string) error
	AllocateUnitBills(ctx context.Context, actorID, maintenanceID string, overwrite bool) ([]entities.UnitMaintenanceBill, error)
	GetUnitBill(ctx context.Context, id string) (entities.UnitMaintenanceBill, error)
	ListUnitBills(ctx context.Context, buildingID, maintenanceID, userID string) ([]entities.UnitMaintenanceBill, error)
	UpdateUnitBill(ctx context.Context, actorID, unitBillID string, lines []entities.BillLine) (entities.UnitMaintenanceBill, error)
	DeleteUnitBill(ctx context.Context, actorID, unitBillID string) error
}

type MaintenanceAllocator struct {
	bills     interfaces.IMaintenanceRepository
	unitBills interfaces.IUnitBillRepository
	buildings interfaces.IBuildingRepository
	units     interfaces.IUnitRepository
	resolver  IRoleResolver
}

var _ IMaintenanceAllocator = (*MaintenanceAllocator)(nil)

func NewMaintenanceAllocator(
	bills interfaces.IMaintenanceRepository,
	unitBills interfaces.IUnitBillRepository,
	buildings interfaces.IBuildingRepository,
	units interfaces.IUnitRepository,
	resolver IRoleResolver,
) *MaintenanceAllocator {
	return &MaintenanceAllocator{
		bills:     bills,
		unitBills: unitBills,
		buildings: buildings,
		units:     units,
		resolver:  resolver,
	}
}

// CreateBuildingBill validates the scope against the building's wing set and
// derives the billing period from due_date. An unparseable due_date is an
// error, never silently replaced with the current date: defaulting would file
// the bill under the wrong billing period.
func (u *MaintenanceAllocator) CreateBuildingBill(ctx context.Context, actorID, buildingID, dueDate, description string, scope BillScope, lines []entities.BillLine) (entities.MaintenanceBill, error) {
	buildingID = strings.TrimSpace(buildingID)
	if buildingID == "" {
		return entities.MaintenanceBill{}, ErrInvalidBuildingID
	}
	if len(lines) == 0 {
		return entities.MaintenanceBill{}, ErrNoBillLines
	}

	due, err := parseDueDate(dueDate)
	if err != nil {
		return entities.MaintenanceBill{}, err
	}

	b, err := u.buildings.GetByID(ctx, buildingID)
	if err != nil {
		return entities.MaintenanceBill{}, err
	}
	if b.ID == "" {
		return entities.MaintenanceBill{}, ErrBuildingNotFound
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.ID, entities.RoleAdmin); err != nil {
		return entities.MaintenanceBill{}, err
	}

	if scope.AllWings {
		if len(scope.Wings) != 0 {
			return entities.MaintenanceBill{}, ErrInvalidScope
		}
	} else {
		if len(scope.Wings) == 0 {
			return entities.MaintenanceBill{}, ErrInvalidScope
		}
		for _, w := range scope.Wings {
			if !b.HasWing(w) {
				return entities.MaintenanceBill{}, &WingValidationError{
					Wing:   w,
					Reason: fmt.Sprintf("not in building wings (%s)", strings.Join(b.Wings, ", ")),
				}
			}
		}
	}

	now := time.Now().UTC()
	m := entities.MaintenanceBill{
		ID:          newMaintenanceCode(),
		BuildingID:  b.ID,
		CreatedBy:   actorID,
		DueDate:     due,
		Month:       int(due.Month()),
		Year:        due.Year(),
		AllWings:    scope.AllWings,
		Wings:       scope.Wings,
		Description: strings.TrimSpace(description),
		BillLines:   lines,
		Status:      entities.BillStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.bills.Create(ctx, m)
	if err != nil {
		return entities.MaintenanceBill{}, err
	}
	log.Printf("[maintenance][usecase] bill created maintenance_id=%s building_id=%s month=%d year=%d all_wings=%t", created.ID, b.ID, created.Month, created.Year, created.AllWings)
	return created, nil
}

func (u *MaintenanceAllocator) GetBuildingBill(ctx context.Context, id string) (entities.MaintenanceBill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MaintenanceBill{}, ErrInvalidMaintenanceID
	}
	m, err := u.bills.GetByID(ctx, id)
	if err != nil {
		return entities.MaintenanceBill{}, err
	}
	if m.ID == "" {
		return entities.MaintenanceBill{}, ErrMaintenanceNotFound
	}
	return m, nil
}

func (u *MaintenanceAllocator) ListBuildingBills(ctx context.Context, buildingID string) ([]entities.MaintenanceBill, error) {
	buildingID = strings.TrimSpace(buildingID)
	if buildingID == "" {
		return nil, ErrInvalidBuildingID
	}
	return u.bills.ListByBuilding(ctx, buildingID)
}

func (u *MaintenanceAllocator) DeleteBuildingBill(ctx context.Context, actorID, id string) error {
	m, err := u.GetBuildingBill(ctx, id)
	if err != nil {
		return err
	}
	if err := u.resolver.RequireRole(ctx, actorID, m.BuildingID, entities.RoleAdmin); err != nil {
		return err
	}
	if err := u.bills.DeletePending(ctx, m.ID); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ErrUnitBillPaid
		}
		return err
	}
	log.Printf("[maintenance][usecase] bill deleted maintenance_id=%s by=%s", m.ID, actorID)
	return nil
}

// AllocateUnitBills produces one unit bill per active unit assignment in the
// building bill's scope. IDs are deterministic per dwelling, so a re-run
// without overwrite hits the existence condition and fails as a conflict
// instead of double-charging; with overwrite, pending bills are replaced and
// paid bills are left untouched.
func (u *MaintenanceAllocator) AllocateUnitBills(ctx context.Context, actorID, maintenanceID string, overwrite bool) ([]entities.UnitMaintenanceBill, error) {
	m, err := u.GetBuildingBill(ctx, maintenanceID)
	if err != nil {
		return nil, err
	}
	if err := u.resolver.RequireRole(ctx, actorID, m.BuildingID, entities.RoleAdmin); err != nil {
		return nil, err
	}

	assignments, err := u.units.ListByBuilding(ctx, m.BuildingID)
	if err != nil {
		return nil, err
	}

	lines := make([]entities.ResolvedBillLine, 0, len(m.BillLines))
	for _, l := range m.BillLines {
		lines = append(lines, entities.ResolvedBillLine{Name: l.Name, Amount: l.Resolve()})
	}
	total := entities.SumResolvedLines(lines)

	now := time.Now().UTC()
	allocated := make([]entities.UnitMaintenanceBill, 0, len(assignments))
	for _, a := range assignments {
		if a.Status != entities.UnitStatusActive || !m.CoversWing(a.Wing) {
			continue
		}

		bill := entities.UnitMaintenanceBill{
			ID:            entities.UnitBillID(m.ID, a.Wing, a.Floor, a.UnitNumber),
			MaintenanceID: m.ID,
			BuildingID:    m.BuildingID,
			UserID:        a.UserID,
			Wing:          a.Wing,
			Floor:         a.Floor,
			UnitNumber:    a.UnitNumber,
			BillLines:     lines,
			TotalAmount:   total,
			Status:        entities.BillStatusPending,
			PaymentStatus: entities.PaymentStatusUnpaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if overwrite {
			err = u.unitBills.PutOverwriteUnpaid(ctx, bill)
			if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
				// Paid bill: keep it as is.
				continue
			}
		} else {
			err = u.unitBills.PutNew(ctx, bill)
			if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
				return nil, ErrBillAlreadyAllocated
			}
		}
		if err != nil {
			return nil, err
		}
		allocated = append(allocated, bill)
	}

	log.Printf("[maintenance][usecase] allocation done maintenance_id=%s unit_bills=%d overwrite=%t", m.ID, len(allocated), overwrite)
	return allocated, nil
}

func (u *MaintenanceAllocator) GetUnitBill(ctx context.Context, id string) (entities.UnitMaintenanceBill, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.UnitMaintenanceBill{}, ErrInvalidUnitBillID
	}
	b, err := u.unitBills.GetByID(ctx, id)
	if err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	if b.ID == "" {
		return entities.UnitMaintenanceBill{}, ErrUnitBillNotFound
	}
	return b, nil
}

// ListUnitBills filters by building, then optionally by maintenance bill and
// occupant.
func (u *MaintenanceAllocator) ListUnitBills(ctx context.Context, buildingID, maintenanceID, userID string) ([]entities.UnitMaintenanceBill, error) {
	buildingID = strings.TrimSpace(buildingID)
	if buildingID == "" {
		return nil, ErrInvalidBuildingID
	}

	var bills []entities.UnitMaintenanceBill
	var err error
	if maintenanceID = strings.TrimSpace(maintenanceID); maintenanceID != "" {
		bills, err = u.unitBills.ListByMaintenance(ctx, maintenanceID)
	} else {
		bills, err = u.unitBills.ListByBuilding(ctx, buildingID)
	}
	if err != nil {
		return nil, err
	}

	userID = strings.TrimSpace(userID)
	out := make([]entities.UnitMaintenanceBill, 0, len(bills))
	for _, b := range bills {
		if b.BuildingID != buildingID {
			continue
		}
		if userID != "" && b.UserID != userID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// UpdateUnitBill replaces the bill lines and recomputes the total. A paid
// bill's amount is immutable.
func (u *MaintenanceAllocator) UpdateUnitBill(ctx context.Context, actorID, unitBillID string, lines []entities.BillLine) (entities.UnitMaintenanceBill, error) {
	if len(lines) == 0 {
		return entities.UnitMaintenanceBill{}, ErrNoBillLines
	}
	b, err := u.GetUnitBill(ctx, unitBillID)
	if err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.BuildingID, entities.RoleAdmin); err != nil {
		return entities.UnitMaintenanceBill{}, err
	}
	if b.PaymentStatus == entities.PaymentStatusPaid {
		return entities.UnitMaintenanceBill{}, ErrUnitBillPaid
	}

	resolved := make([]entities.ResolvedBillLine, 0, len(lines))
	for _, l := range lines {
		resolved = append(resolved, entities.ResolvedBillLine{Name: l.Name, Amount: l.Resolve()})
	}
	total := entities.SumResolvedLines(resolved)

	updated, err := u.unitBills.UpdateLines(ctx, b.ID, resolved, total)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return entities.UnitMaintenanceBill{}, ErrUnitBillPaid
		}
		return entities.UnitMaintenanceBill{}, err
	}
	log.Printf("[maintenance][usecase] unit bill updated unit_maintenance_id=%s total=%s", updated.ID, total.StringFixed(2))
	return updated, nil
}

func (u *MaintenanceAllocator) DeleteUnitBill(ctx context.Context, actorID, unitBillID string) error {
	b, err := u.GetUnitBill(ctx, unitBillID)
	if err != nil {
		return err
	}
	if err := u.resolver.RequireRole(ctx, actorID, b.BuildingID, entities.RoleAdmin); err != nil {
		return err
	}
	if err := u.unitBills.DeleteUnpaid(ctx, b.ID); err != nil {
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ErrUnitBillPaid
		}
		return err
	}
	log.Printf("[maintenance][usecase] unit bill deleted unit_maintenance_id=%s by=%s", b.ID, actorID)
	return nil
}

// parseDueDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDueDate
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDueDate
}

func newMaintenanceCode() string {
	return "MAINT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
