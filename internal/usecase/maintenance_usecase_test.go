package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase/interfaces"
	mock_interfaces "societyhub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type maintenanceMocks struct {
	bills     *mock_interfaces.MockIMaintenanceRepository
	unitBills *mock_interfaces.MockIUnitBillRepository
	buildings *mock_interfaces.MockIBuildingRepository
	units     *mock_interfaces.MockIUnitRepository
	roles     *mock_interfaces.MockIRoleRepository
}

func newMaintenanceAllocatorForTest(ctrl *gomock.Controller) (*MaintenanceAllocator, maintenanceMocks) {
	m := maintenanceMocks{
		bills:     mock_interfaces.NewMockIMaintenanceRepository(ctrl),
		unitBills: mock_interfaces.NewMockIUnitBillRepository(ctrl),
		buildings: mock_interfaces.NewMockIBuildingRepository(ctrl),
		units:     mock_interfaces.NewMockIUnitRepository(ctrl),
		roles:     mock_interfaces.NewMockIRoleRepository(ctrl),
	}
	uc := NewMaintenanceAllocator(m.bills, m.unitBills, m.buildings, m.units, NewRoleResolver(m.roles))
	return uc, m
}

func (m maintenanceMocks) expectRole(buildingID, userID string, role entities.Role) {
	a := entities.RoleAssignment{}
	if role != entities.RoleNone {
		a = entities.RoleAssignment{BuildingID: buildingID, UserID: userID, Role: role}
	}
	m.roles.EXPECT().Get(gomock.Any(), buildingID, userID).Return(a, nil)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestMaintenanceAllocator_CreateBuildingBill(t *testing.T) {
	building := entities.Building{ID: "BLD-1", Wings: []string{"A", "B"}}
	lines := []entities.BillLine{{Name: "Maintenance", FixedAmount: dec("1200")}}

	t.Run("no bill lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newMaintenanceAllocatorForTest(ctrl)

		_, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", "2026-09-10", "", BillScope{AllWings: true}, nil)
		if !errors.Is(err, ErrNoBillLines) {
			t.Fatalf("expected ErrNoBillLines, got %v", err)
		}
	})

	t.Run("unparseable due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newMaintenanceAllocatorForTest(ctrl)

		for _, due := range []string{"", "next month", "10-09-2026"} {
			_, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", due, "", BillScope{AllWings: true}, lines)
			if !errors.Is(err, ErrInvalidDueDate) {
				t.Fatalf("due %q: expected ErrInvalidDueDate, got %v", due, err)
			}
		}
	})

	t.Run("scope both encodings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.buildings.EXPECT().GetByID(gomock.Any(), "BLD-1").Return(building, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)

		_, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", "2026-09-10", "", BillScope{AllWings: true, Wings: []string{"A"}}, lines)
		if !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("scope neither encoding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.buildings.EXPECT().GetByID(gomock.Any(), "BLD-1").Return(building, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)

		_, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", "2026-09-10", "", BillScope{}, lines)
		if !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("scope wing outside building", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.buildings.EXPECT().GetByID(gomock.Any(), "BLD-1").Return(building, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)

		_, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", "2026-09-10", "", BillScope{Wings: []string{"Z"}}, lines)
		var wve *WingValidationError
		if !errors.As(err, &wve) || wve.Wing != "Z" {
			t.Fatalf("expected WingValidationError for Z, got %v", err)
		}
	})

	t.Run("success derives billing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.buildings.EXPECT().GetByID(gomock.Any(), "BLD-1").Return(building, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.bills.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MaintenanceBill{})).DoAndReturn(
			func(_ context.Context, b entities.MaintenanceBill) (entities.MaintenanceBill, error) {
				if b.Month != 9 || b.Year != 2026 {
					t.Fatalf("unexpected period: month=%d year=%d", b.Month, b.Year)
				}
				if b.ID == "" || b.Status != entities.BillStatusPending || !b.AllWings {
					t.Fatalf("unexpected bill: %+v", b)
				}
				return b, nil
			},
		)

		created, err := uc.CreateBuildingBill(context.Background(), "admin-1", "BLD-1", "2026-09-10", " September dues ", BillScope{AllWings: true}, lines)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Description != "September dues" {
			t.Fatalf("unexpected description: %q", created.Description)
		}
	})
}

func TestMaintenanceAllocator_AllocateUnitBills(t *testing.T) {
	bill := entities.MaintenanceBill{
		ID:         "MAINT-1",
		BuildingID: "BLD-1",
		AllWings:   false,
		Wings:      []string{"A"},
		BillLines: []entities.BillLine{
			{Name: "Maintenance", FixedAmount: dec("1000")},
			{Name: "Water", RatePerUnit: dec("12.5"), UnitsConsumed: dec("4")},
		},
		Status: entities.BillStatusPending,
	}
	assignments := []entities.UnitAssignment{
		{OccupancyID: "UNIT#BLD-1#A#1#101", BuildingID: "BLD-1", Wing: "A", Floor: 1, UnitNumber: "101", UserID: "u-1", Status: entities.UnitStatusActive},
		{OccupancyID: "UNIT#BLD-1#A#1#102", BuildingID: "BLD-1", Wing: "A", Floor: 1, UnitNumber: "102", UserID: "u-2", Status: entities.UnitStatusInactive},
		{OccupancyID: "UNIT#BLD-1#B#1#101", BuildingID: "BLD-1", Wing: "B", Floor: 1, UnitNumber: "101", UserID: "u-3", Status: entities.UnitStatusActive},
	}

	t.Run("fans out to in-scope active units only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.units.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(assignments, nil)
		m.unitBills.EXPECT().PutNew(gomock.Any(), gomock.AssignableToTypeOf(entities.UnitMaintenanceBill{})).DoAndReturn(
			func(_ context.Context, b entities.UnitMaintenanceBill) error {
				if b.ID != "UMB#MAINT-1#A#1#101" {
					t.Fatalf("unexpected unit bill id: %s", b.ID)
				}
				if !b.TotalAmount.Equal(decimal.RequireFromString("1050")) {
					t.Fatalf("unexpected total: %s", b.TotalAmount)
				}
				if b.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("unexpected payment status: %s", b.PaymentStatus)
				}
				return nil
			},
		)

		allocated, err := uc.AllocateUnitBills(context.Background(), "admin-1", "MAINT-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(allocated) != 1 || allocated[0].UserID != "u-1" {
			t.Fatalf("unexpected allocation: %+v", allocated)
		}
	})

	t.Run("re-run without overwrite conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.units.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(assignments, nil)
		m.unitBills.EXPECT().PutNew(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionalCheckFailed)

		_, err := uc.AllocateUnitBills(context.Background(), "admin-1", "MAINT-1", false)
		if !errors.Is(err, ErrBillAlreadyAllocated) {
			t.Fatalf("expected ErrBillAlreadyAllocated, got %v", err)
		}
	})

	t.Run("overwrite skips paid bills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.units.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(assignments, nil)
		m.unitBills.EXPECT().PutOverwriteUnpaid(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionalCheckFailed)

		allocated, err := uc.AllocateUnitBills(context.Background(), "admin-1", "MAINT-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(allocated) != 0 {
			t.Fatalf("expected no allocations, got %d", len(allocated))
		}
	})
}

func TestMaintenanceAllocator_ListUnitBills(t *testing.T) {
	bills := []entities.UnitMaintenanceBill{
		{ID: "UMB#MAINT-1#A#1#101", MaintenanceID: "MAINT-1", BuildingID: "BLD-1", UserID: "u-1"},
		{ID: "UMB#MAINT-1#A#1#102", MaintenanceID: "MAINT-1", BuildingID: "BLD-1", UserID: "u-2"},
		{ID: "UMB#MAINT-2#A#1#101", MaintenanceID: "MAINT-2", BuildingID: "BLD-2", UserID: "u-1"},
	}

	t.Run("by building", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.unitBills.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(bills[:2], nil)

		out, err := uc.ListUnitBills(context.Background(), "BLD-1", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 bills, got %d", len(out))
		}
	})

	t.Run("by maintenance filters other buildings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.unitBills.EXPECT().ListByMaintenance(gomock.Any(), "MAINT-2").Return(bills[2:], nil)

		out, err := uc.ListUnitBills(context.Background(), "BLD-1", "MAINT-2", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no bills, got %d", len(out))
		}
	})

	t.Run("by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.unitBills.EXPECT().ListByBuilding(gomock.Any(), "BLD-1").Return(bills[:2], nil)

		out, err := uc.ListUnitBills(context.Background(), "BLD-1", "", "u-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].UserID != "u-2" {
			t.Fatalf("unexpected bills: %+v", out)
		}
	})
}

func TestMaintenanceAllocator_UpdateUnitBill(t *testing.T) {
	unpaid := entities.UnitMaintenanceBill{
		ID: "UMB#MAINT-1#A#1#101", MaintenanceID: "MAINT-1", BuildingID: "BLD-1",
		UserID: "u-1", PaymentStatus: entities.PaymentStatusUnpaid,
	}

	t.Run("paid bill is immutable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		paid := unpaid
		paid.PaymentStatus = entities.PaymentStatusPaid
		m.unitBills.EXPECT().GetByID(gomock.Any(), paid.ID).Return(paid, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)

		_, err := uc.UpdateUnitBill(context.Background(), "admin-1", paid.ID, []entities.BillLine{{Name: "x", FixedAmount: dec("1")}})
		if !errors.Is(err, ErrUnitBillPaid) {
			t.Fatalf("expected ErrUnitBillPaid, got %v", err)
		}
	})

	t.Run("lost race against payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.unitBills.EXPECT().GetByID(gomock.Any(), unpaid.ID).Return(unpaid, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.unitBills.EXPECT().UpdateLines(gomock.Any(), unpaid.ID, gomock.Any(), gomock.Any()).
			Return(entities.UnitMaintenanceBill{}, interfaces.ErrConditionalCheckFailed)

		_, err := uc.UpdateUnitBill(context.Background(), "admin-1", unpaid.ID, []entities.BillLine{{Name: "x", FixedAmount: dec("1")}})
		if !errors.Is(err, ErrUnitBillPaid) {
			t.Fatalf("expected ErrUnitBillPaid, got %v", err)
		}
	})

	t.Run("recomputes total from lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.unitBills.EXPECT().GetByID(gomock.Any(), unpaid.ID).Return(unpaid, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.unitBills.EXPECT().UpdateLines(gomock.Any(), unpaid.ID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, lines []entities.ResolvedBillLine, total decimal.Decimal) (entities.UnitMaintenanceBill, error) {
				if len(lines) != 2 || !total.Equal(decimal.RequireFromString("1550.5")) {
					t.Fatalf("unexpected update: lines=%+v total=%s", lines, total)
				}
				out := unpaid
				out.BillLines = lines
				out.TotalAmount = total
				return out, nil
			},
		)

		updated, err := uc.UpdateUnitBill(context.Background(), "admin-1", unpaid.ID, []entities.BillLine{
			{Name: "Maintenance", FixedAmount: dec("1500")},
			{Name: "Water", RatePerUnit: dec("10.1"), UnitsConsumed: dec("5")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.TotalAmount.Equal(decimal.RequireFromString("1550.5")) {
			t.Fatalf("unexpected total: %s", updated.TotalAmount)
		}
	})
}

func TestMaintenanceAllocator_DeleteBuildingBill(t *testing.T) {
	bill := entities.MaintenanceBill{ID: "MAINT-1", BuildingID: "BLD-1", Status: entities.BillStatusPending}

	t.Run("paid bill conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.bills.EXPECT().DeletePending(gomock.Any(), "MAINT-1").Return(interfaces.ErrConditionalCheckFailed)

		err := uc.DeleteBuildingBill(context.Background(), "admin-1", "MAINT-1")
		if !errors.Is(err, ErrUnitBillPaid) {
			t.Fatalf("expected ErrUnitBillPaid, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newMaintenanceAllocatorForTest(ctrl)
		m.bills.EXPECT().GetByID(gomock.Any(), "MAINT-1").Return(bill, nil)
		m.expectRole("BLD-1", "admin-1", entities.RoleAdmin)
		m.bills.EXPECT().DeletePending(gomock.Any(), "MAINT-1").Return(nil)

		if err := uc.DeleteBuildingBill(context.Background(), "admin-1", "MAINT-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParseDueDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseDueDate("2026-09-10T15:04:05Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Month() != time.September || got.Year() != 2026 {
			t.Fatalf("unexpected date: %v", got)
		}
	})

	t.Run("plain date", func(t *testing.T) {
		got, err := parseDueDate(" 2026-02-28 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Day() != 28 || got.Month() != time.February {
			t.Fatalf("unexpected date: %v", got)
		}
	})
}
