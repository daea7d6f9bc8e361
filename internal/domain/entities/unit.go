package entities

import (
	"fmt"
	"time"
)

type UnitStatus string

const (
	UnitStatusActive   UnitStatus = "active"
	UnitStatusInactive UnitStatus = "inactive"
)

// UnitAssignment links an occupant to one dwelling.
//
// Storage model (DynamoDB):
//   - PK: occupancy_id = UNIT#<building_id>#<wing>#<floor>#<unit_no>
//   - GSI1 (building_id-index): building_id
//   - GSI2 (user_id-index): user_id
//
// The occupancy key IS the uniqueness invariant: a conditional put on it
// guarantees at most one active assignment per (building, wing, floor, unit)
// without a read-then-write race.
type UnitAssignment struct {
	OccupancyID string     `json:"occupancy_id"`
	BuildingID  string     `json:"building_id"`
	Wing        string     `json:"wing"`
	Floor       int        `json:"floor"`
	UnitNumber  string     `json:"unit_number"`
	UserID      string     `json:"user_id"`
	Status      UnitStatus `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
}

// OccupancyID derives the storage key for one dwelling.
func OccupancyID(buildingID, wing string, floor int, unitNumber string) string {
	return fmt.Sprintf("UNIT#%s#%s#%d#%s", buildingID, wing, floor, unitNumber)
}
