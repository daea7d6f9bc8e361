package request

import "societyhub/internal/usecase"

type WingRequest struct {
	TotalFloors   int `json:"total_floors" binding:"required"`
	UnitsPerFloor int `json:"units_per_floor" binding:"required"`
}

type CreateBuildingRequest struct {
	Name  string                 `json:"name" binding:"required"`
	Wings map[string]WingRequest `json:"wings" binding:"required"`
}

// UpdateBuildingRequest is a partial update: absent fields stay unchanged.
type UpdateBuildingRequest struct {
	Name  *string                `json:"name"`
	Wings map[string]WingRequest `json:"wings"`
}

type AssignUnitRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Wing       string `json:"wing" binding:"required"`
	Floor      int    `json:"floor"`
	UnitNumber string `json:"unit_number" binding:"required"`
}

func ToWingInputs(wings map[string]WingRequest) map[string]usecase.WingInput {
	if wings == nil {
		return nil
	}
	out := make(map[string]usecase.WingInput, len(wings))
	for name, w := range wings {
		out[name] = usecase.WingInput{TotalFloors: w.TotalFloors, UnitsPerFloor: w.UnitsPerFloor}
	}
	return out
}
