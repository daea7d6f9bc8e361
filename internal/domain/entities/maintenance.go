package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// BillLine is one charge on a building-level bill. Exactly one pricing shape
// applies: a fixed amount, or a per-unit rate multiplied by consumption
// (UnitsConsumed defaults to 1 when the rate shape is used without it).
type BillLine struct {
	Name          string           `json:"name"`
	FixedAmount   *decimal.Decimal `json:"fixed_amount,omitempty"`
	RatePerUnit   *decimal.Decimal `json:"rate_per_unit,omitempty"`
	UnitsConsumed *decimal.Decimal `json:"units_consumed,omitempty"`
}

// Resolve reduces the line to a concrete amount, 2-place round-half-up.
func (l BillLine) Resolve() decimal.Decimal {
	if l.FixedAmount != nil {
		return l.FixedAmount.Round(2)
	}
	if l.RatePerUnit != nil {
		units := decimal.NewFromInt(1)
		if l.UnitsConsumed != nil {
			units = *l.UnitsConsumed
		}
		return l.RatePerUnit.Mul(units).Round(2)
	}
	return decimal.Zero
}

// ResolvedBillLine is a BillLine after resolution on a unit bill.
type ResolvedBillLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// MaintenanceBill is the building-level billing event.
//
// Storage model (DynamoDB):
//   - PK: maintenance_id
//   - GSI1 (building_id-index): building_id
//
// Scope encoding is mutually exclusive: AllWings true with an empty Wings
// slice, or AllWings false with a non-empty subset of the building's wings.
// Month/Year are derived from DueDate at creation, never defaulted.
type MaintenanceBill struct {
	ID          string     `json:"maintenance_id"`
	BuildingID  string     `json:"building_id"`
	CreatedBy   string     `json:"created_by"`
	DueDate     time.Time  `json:"due_date"`
	Month       int        `json:"month"`
	Year        int        `json:"year"`
	AllWings    bool       `json:"is_all_wings"`
	Wings       []string   `json:"wings"`
	Description string     `json:"description"`
	BillLines   []BillLine `json:"bill_lines"`
	Status      BillStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CoversWing reports whether the bill's scope includes the wing.
func (m MaintenanceBill) CoversWing(wing string) bool {
	if m.AllWings {
		return true
	}
	for _, w := range m.Wings {
		if w == wing {
			return true
		}
	}
	return false
}

// UnitMaintenanceBill is the per-unit share of a MaintenanceBill.
//
// Storage model (DynamoDB):
//   - PK: unit_maintenance_id = UMB#<maintenance_id>#<wing>#<floor>#<unit_no>
//   - GSI1 (building_id-index): building_id
//   - GSI2 (maintenance_id-index): maintenance_id
//   - GSI3 (user_id-index): user_id
//
// The deterministic PK makes allocation idempotent: re-running it for the
// same building bill conditionally re-puts the same keys instead of minting
// duplicates. TotalAmount always equals the sum of BillLines.
type UnitMaintenanceBill struct {
	ID            string             `json:"unit_maintenance_id"`
	MaintenanceID string             `json:"maintenance_id"`
	BuildingID    string             `json:"building_id"`
	UserID        string             `json:"user_id"`
	Wing          string             `json:"wing"`
	Floor         int                `json:"floor"`
	UnitNumber    string             `json:"unit_number"`
	BillLines     []ResolvedBillLine `json:"bill_lines"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        BillStatus         `json:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// UnitBillID derives the deterministic unit-bill key for one dwelling under
// one building bill.
func UnitBillID(maintenanceID, wing string, floor int, unitNumber string) string {
	return fmt.Sprintf("UMB#%s#%s#%d#%s", maintenanceID, wing, floor, unitNumber)
}

// SumResolvedLines recomputes a unit bill total from its lines.
func SumResolvedLines(lines []ResolvedBillLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total.Round(2)
}
