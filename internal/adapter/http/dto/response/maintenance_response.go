package response

import (
	"time"

	"societyhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BillLineResponse struct {
	Name          string           `json:"name"`
	FixedAmount   *decimal.Decimal `json:"fixed_amount,omitempty"`
	RatePerUnit   *decimal.Decimal `json:"price_per_unit,omitempty"`
	UnitsConsumed *decimal.Decimal `json:"units_consumed,omitempty"`
}

type ResolvedLineResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type MaintenanceResponse struct {
	MaintenanceID string             `json:"maintenance_id"`
	BuildingID    string             `json:"building_id"`
	CreatedBy     string             `json:"created_by"`
	DueDate       time.Time          `json:"due_date"`
	Month         int                `json:"month"`
	Year          int                `json:"year"`
	AllWings      bool               `json:"all_wings"`
	Wings         []string           `json:"wings,omitempty"`
	Description   string             `json:"description,omitempty"`
	BillLines     []BillLineResponse `json:"bill_lines"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type UnitBillResponse struct {
	UnitBillID    string                 `json:"unit_maintenance_id"`
	MaintenanceID string                 `json:"maintenance_id"`
	BuildingID    string                 `json:"building_id"`
	UserID        string                 `json:"user_id"`
	Wing          string                 `json:"wing"`
	Floor         int                    `json:"floor"`
	UnitNumber    string                 `json:"unit_number"`
	BillLines     []ResolvedLineResponse `json:"bill_lines"`
	TotalAmount   decimal.Decimal        `json:"total_amount"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"payment_status"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromMaintenanceBill(m entities.MaintenanceBill) MaintenanceResponse {
	lines := make([]BillLineResponse, 0, len(m.BillLines))
	for _, l := range m.BillLines {
		lines = append(lines, BillLineResponse{
			Name:          l.Name,
			FixedAmount:   l.FixedAmount,
			RatePerUnit:   l.RatePerUnit,
			UnitsConsumed: l.UnitsConsumed,
		})
	}
	return MaintenanceResponse{
		MaintenanceID: m.ID,
		BuildingID:    m.BuildingID,
		CreatedBy:     m.CreatedBy,
		DueDate:       m.DueDate,
		Month:         m.Month,
		Year:          m.Year,
		AllWings:      m.AllWings,
		Wings:         m.Wings,
		Description:   m.Description,
		BillLines:     lines,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromMaintenanceBills(ms []entities.MaintenanceBill) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaintenanceBill(m))
	}
	return out
}

func FromUnitBill(b entities.UnitMaintenanceBill) UnitBillResponse {
	lines := make([]ResolvedLineResponse, 0, len(b.BillLines))
	for _, l := range b.BillLines {
		lines = append(lines, ResolvedLineResponse{Name: l.Name, Amount: l.Amount})
	}
	return UnitBillResponse{
		UnitBillID:    b.ID,
		MaintenanceID: b.MaintenanceID,
		BuildingID:    b.BuildingID,
		UserID:        b.UserID,
		Wing:          b.Wing,
		Floor:         b.Floor,
		UnitNumber:    b.UnitNumber,
		BillLines:     lines,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func FromUnitBills(bs []entities.UnitMaintenanceBill) []UnitBillResponse {
	out := make([]UnitBillResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromUnitBill(b))
	}
	return out
}
