package repository

import (
	"strings"
	"testing"
	"time"

	"societyhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPaymentItem(t *testing.T) {
	t.Run("round trip preserves amount", func(t *testing.T) {
		p := entities.Payment{
			ID:            "PAY-1",
			UnitBillID:    "UMB#MAINT-1#A#1#101",
			BuildingID:    "BLD-1",
			UserID:        "u-1",
			Amount:        decimal.RequireFromString("1050.50"),
			Method:        entities.PaymentMethodCash,
			TransactionID: "CASH-1",
			PaidAt:        time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		}

		got, err := fromPaymentItem(toPaymentItem(p))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Amount.Equal(p.Amount) {
			t.Fatalf("expected amount %s, got %s", p.Amount, got.Amount)
		}
		if got.ID != p.ID || got.UnitBillID != p.UnitBillID {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})

	t.Run("corrupt stored amount is rejected", func(t *testing.T) {
		it := paymentItem{ID: "PAY-1", Amount: "not-a-number"}

		if _, err := fromPaymentItem(it); err == nil {
			t.Fatal("expected error, got nil")
		} else if !strings.Contains(err.Error(), "PAY-1") {
			t.Fatalf("error should name the payment: %v", err)
		}
	})
}

func TestFromUnitBillItem(t *testing.T) {
	t.Run("round trip preserves line amounts and total", func(t *testing.T) {
		b := entities.UnitMaintenanceBill{
			ID:            "UMB#MAINT-1#A#1#101",
			MaintenanceID: "MAINT-1",
			BuildingID:    "BLD-1",
			BillLines: []entities.ResolvedBillLine{
				{Name: "Maintenance", Amount: decimal.RequireFromString("1000")},
				{Name: "Water", Amount: decimal.RequireFromString("50.50")},
			},
			TotalAmount:   decimal.RequireFromString("1050.50"),
			Status:        entities.BillStatusPending,
			PaymentStatus: entities.PaymentStatusUnpaid,
		}

		got, err := fromUnitBillItem(toUnitBillItem(b))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.TotalAmount.Equal(b.TotalAmount) {
			t.Fatalf("expected total %s, got %s", b.TotalAmount, got.TotalAmount)
		}
		if len(got.BillLines) != 2 || !got.BillLines[1].Amount.Equal(b.BillLines[1].Amount) {
			t.Fatalf("unexpected bill lines: %+v", got.BillLines)
		}
	})

	t.Run("corrupt stored total is rejected", func(t *testing.T) {
		it := unitBillItem{ID: "UMB#MAINT-1#A#1#101", TotalAmount: "NaNaNa"}

		if _, err := fromUnitBillItem(it); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("corrupt stored line amount is rejected", func(t *testing.T) {
		it := unitBillItem{
			ID:          "UMB#MAINT-1#A#1#101",
			BillLines:   []resolvedLineItem{{Name: "Maintenance", Amount: "oops"}},
			TotalAmount: "1000",
		}

		if _, err := fromUnitBillItem(it); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestFromMaintenanceItem(t *testing.T) {
	t.Run("round trip preserves optional line fields", func(t *testing.T) {
		fixed := decimal.RequireFromString("1000")
		rate := decimal.RequireFromString("12.5")
		units := decimal.RequireFromString("4")
		m := entities.MaintenanceBill{
			ID:         "MAINT-1",
			BuildingID: "BLD-1",
			AllWings:   true,
			BillLines: []entities.BillLine{
				{Name: "Maintenance", FixedAmount: &fixed},
				{Name: "Water", RatePerUnit: &rate, UnitsConsumed: &units},
			},
			Status: entities.BillStatusPending,
		}

		got, err := fromMaintenanceItem(toMaintenanceItem(m))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.BillLines[0].FixedAmount == nil || !got.BillLines[0].FixedAmount.Equal(fixed) {
			t.Fatalf("unexpected fixed amount: %+v", got.BillLines[0])
		}
		if got.BillLines[1].RatePerUnit == nil || !got.BillLines[1].RatePerUnit.Equal(rate) {
			t.Fatalf("unexpected rate: %+v", got.BillLines[1])
		}
		if got.BillLines[1].FixedAmount != nil {
			t.Fatal("absent fixed amount should stay nil")
		}
	})

	t.Run("corrupt stored rate is rejected", func(t *testing.T) {
		it := maintenanceItem{
			ID:        "MAINT-1",
			BillLines: []billLineItem{{Name: "Water", RatePerUnit: "twelve"}},
		}

		if _, err := fromMaintenanceItem(it); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
