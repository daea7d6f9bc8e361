package response

import (
	"time"

	"societyhub/internal/domain/entities"
)

type ConnectionResponse struct {
	RequestID   string     `json:"request_id"`
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name"`
	UserMobile  string     `json:"user_mobile"`
	BuildingID  string     `json:"building_id"`
	Wing        string     `json:"wing"`
	Floor       int        `json:"floor"`
	UnitNumber  string     `json:"unit_number"`
	Status      string     `json:"status"`
	ProcessedBy string     `json:"processed_by,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromConnection(r entities.ConnectionRequest) ConnectionResponse {
	resp := ConnectionResponse{
		RequestID:   r.ID,
		UserID:      r.UserID,
		UserName:    r.UserName,
		UserMobile:  r.UserMobile,
		BuildingID:  r.BuildingID,
		Wing:        r.Wing,
		Floor:       r.Floor,
		UnitNumber:  r.UnitNumber,
		Status:      string(r.Status),
		ProcessedBy: r.ProcessedBy,
		CreatedAt:   r.CreatedAt,
	}
	if !r.ProcessedAt.IsZero() {
		t := r.ProcessedAt
		resp.ProcessedAt = &t
	}
	return resp
}

func FromConnections(rs []entities.ConnectionRequest) []ConnectionResponse {
	out := make([]ConnectionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromConnection(r))
	}
	return out
}
