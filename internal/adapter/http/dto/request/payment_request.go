package request

// CreatePaymentRequest references exactly one bill. The amount is never part
// of the payload; it is read from the bill server-side.
type CreatePaymentRequest struct {
	MaintenanceID string `json:"maintenance_id"`
	UnitBillID    string `json:"unit_maintenance_id"`
	Method        string `json:"payment_method" binding:"required"`
}
