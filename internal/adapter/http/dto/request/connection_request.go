package request

type SubmitConnectionRequest struct {
	UserName   string `json:"user_name" binding:"required"`
	UserMobile string `json:"user_mobile" binding:"required"`
	BuildingID string `json:"building_id" binding:"required"`
	Wing       string `json:"wing" binding:"required"`
	Floor      int    `json:"floor"`
	UnitNumber string `json:"unit_number" binding:"required"`
}

type ProcessConnectionRequest struct {
	Action string `json:"action" binding:"required"`
}
