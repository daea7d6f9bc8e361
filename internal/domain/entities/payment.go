package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodOnline
}

// Payment records one completed payment against exactly one bill.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//   - GSI1 (bill_id-index): bill_id (unit or building bill id)
//   - GSI2 (building_id-index): building_id
//
// Amount is copied from the referenced bill at recording time; a
// caller-supplied amount is never trusted. Failed payments are not persisted,
// so the only status is completed.
type Payment struct {
	ID            string          `json:"payment_id"`
	MaintenanceID string          `json:"maintenance_id,omitempty"`
	UnitBillID    string          `json:"unit_maintenance_id,omitempty"`
	BuildingID    string          `json:"building_id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Wing          string          `json:"wing,omitempty"`
	Floor         int             `json:"floor,omitempty"`
	UnitNumber    string          `json:"unit_number,omitempty"`
	PaidAt        time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BillID is the GSI key: the unit bill when present, else the building bill.
func (p Payment) BillID() string {
	if p.UnitBillID != "" {
		return p.UnitBillID
	}
	return p.MaintenanceID
}
