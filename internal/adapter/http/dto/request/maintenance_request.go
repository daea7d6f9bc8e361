package request

import (
	"societyhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BillLineRequest carries one charge: either a fixed amount, or a per-unit
// rate with an optional consumption count.
type BillLineRequest struct {
	Name          string           `json:"name" binding:"required"`
	FixedAmount   *decimal.Decimal `json:"fixed_amount"`
	RatePerUnit   *decimal.Decimal `json:"price_per_unit"`
	UnitsConsumed *decimal.Decimal `json:"units_consumed"`
}

type CreateMaintenanceRequest struct {
	BuildingID  string            `json:"building_id" binding:"required"`
	DueDate     string            `json:"due_date" binding:"required"`
	Description string            `json:"description"`
	AllWings    bool              `json:"all_wings"`
	Wings       []string          `json:"wings"`
	BillLines   []BillLineRequest `json:"bill_lines" binding:"required"`
}

type AllocateUnitBillsRequest struct {
	Overwrite bool `json:"overwrite"`
}

type UpdateUnitBillRequest struct {
	BillLines []BillLineRequest `json:"bill_lines" binding:"required"`
}

func ToBillLines(lines []BillLineRequest) []entities.BillLine {
	out := make([]entities.BillLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.BillLine{
			Name:          l.Name,
			FixedAmount:   l.FixedAmount,
			RatePerUnit:   l.RatePerUnit,
			UnitsConsumed: l.UnitsConsumed,
		})
	}
	return out
}
