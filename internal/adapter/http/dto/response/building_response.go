package response

import (
	"time"

	"societyhub/internal/domain/entities"
)

type WingDetailResponse struct {
	TotalFloors   int `json:"total_floors"`
	UnitsPerFloor int `json:"units_per_floor"`
	TotalUnits    int `json:"total_units"`
}

type BuildingResponse struct {
	BuildingID  string                        `json:"building_id"`
	Name        string                        `json:"name"`
	OwnerID     string                        `json:"owner_id"`
	Wings       []string                      `json:"wings"`
	WingDetails map[string]WingDetailResponse `json:"wing_details"`
	TotalWings  int                           `json:"total_wings"`
	TotalUnits  int                           `json:"total_units"`
	Status      string                        `json:"status"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

type UnitResponse struct {
	OccupancyID string    `json:"occupancy_id"`
	BuildingID  string    `json:"building_id"`
	Wing        string    `json:"wing"`
	Floor       int       `json:"floor"`
	UnitNumber  string    `json:"unit_number"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	AssignedAt  time.Time `json:"assigned_at"`
}

type UnitAvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromBuilding(b entities.Building) BuildingResponse {
	details := make(map[string]WingDetailResponse, len(b.WingDetails))
	for name, d := range b.WingDetails {
		details[name] = WingDetailResponse{
			TotalFloors:   d.TotalFloors,
			UnitsPerFloor: d.UnitsPerFloor,
			TotalUnits:    d.TotalUnits,
		}
	}
	return BuildingResponse{
		BuildingID:  b.ID,
		Name:        b.Name,
		OwnerID:     b.OwnerID,
		Wings:       b.Wings,
		WingDetails: details,
		TotalWings:  b.TotalWings,
		TotalUnits:  b.TotalUnits,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBuildings(bs []entities.Building) []BuildingResponse {
	out := make([]BuildingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBuilding(b))
	}
	return out
}

func FromUnit(u entities.UnitAssignment) UnitResponse {
	return UnitResponse{
		OccupancyID: u.OccupancyID,
		BuildingID:  u.BuildingID,
		Wing:        u.Wing,
		Floor:       u.Floor,
		UnitNumber:  u.UnitNumber,
		UserID:      u.UserID,
		Status:      string(u.Status),
		AssignedAt:  u.AssignedAt,
	}
}

func FromUnits(us []entities.UnitAssignment) []UnitResponse {
	out := make([]UnitResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUnit(u))
	}
	return out
}
