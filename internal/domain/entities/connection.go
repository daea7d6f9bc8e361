package entities

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusApproved ConnectionStatus = "approved"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// ConnectionRequest is a resident's request to be linked to one unit.
//
// Storage model (DynamoDB):
//   - PK: request_id
//   - GSI1 (building_id-index): building_id
//
// Approval produces a member role and a unit assignment; the status update is
// conditional on the request still being pending so it is processed once.
type ConnectionRequest struct {
	ID          string           `json:"request_id"`
	UserID      string           `json:"user_id"`
	UserName    string           `json:"user_name"`
	UserMobile  string           `json:"user_mobile"`
	BuildingID  string           `json:"building_id"`
	Wing        string           `json:"wing"`
	Floor       int              `json:"floor"`
	UnitNumber  string           `json:"unit_number"`
	Status      ConnectionStatus `json:"status"`
	ProcessedBy string           `json:"processed_by,omitempty"`
	ProcessedAt time.Time        `json:"processed_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
