package entities

import "time"

// BuildingStatus is the lifecycle state of a building record.

type BuildingStatus string

const (
	BuildingStatusActive   BuildingStatus = "active"
	BuildingStatusInactive BuildingStatus = "inactive"
)

// WingDetail describes one named wing of a building.
//
// TotalUnits is always TotalFloors * UnitsPerFloor, recomputed whenever the
// wing changes; it is never written independently.
type WingDetail struct {
	TotalFloors   int `json:"total_floors"`
	UnitsPerFloor int `json:"units_per_floor"`
	TotalUnits    int `json:"total_units"`
}

// Building is the registry record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: building_id
//   - GSI1 (owner_id-index): owner_id
//
// Wings is the authoritative wing set; every wing referenced by a unit
// assignment or a maintenance scope must be present in it.
type Building struct {
	ID          string                `json:"building_id"`
	Name        string                `json:"name"`
	OwnerID     string                `json:"owner_id"`
	Wings       []string              `json:"wings"`
	WingDetails map[string]WingDetail `json:"wing_details"`
	TotalWings  int                   `json:"total_wings"`
	TotalUnits  int                   `json:"total_units_of_building"`
	Status      BuildingStatus        `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// HasWing reports whether name is one of the building's wings.
func (b Building) HasWing(name string) bool {
	for _, w := range b.Wings {
		if w == name {
			return true
		}
	}
	return false
}
