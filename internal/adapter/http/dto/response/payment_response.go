package response

import (
	"time"

	"societyhub/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	PaymentID     string          `json:"payment_id"`
	MaintenanceID string          `json:"maintenance_id,omitempty"`
	UnitBillID    string          `json:"unit_maintenance_id,omitempty"`
	BuildingID    string          `json:"building_id"`
	UserID        string          `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Wing          string          `json:"wing,omitempty"`
	Floor         int             `json:"floor,omitempty"`
	UnitNumber    string          `json:"unit_number,omitempty"`
	PaidAt        time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.ID,
		MaintenanceID: p.MaintenanceID,
		UnitBillID:    p.UnitBillID,
		BuildingID:    p.BuildingID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		TransactionID: p.TransactionID,
		Wing:          p.Wing,
		Floor:         p.Floor,
		UnitNumber:    p.UnitNumber,
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
