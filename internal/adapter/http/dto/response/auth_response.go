package response

import (
	"time"

	"societyhub/internal/domain/entities"
	"societyhub/internal/usecase"
)

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	UserType  string    `json:"user_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	IDToken     string       `json:"id_token"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Name:      u.Name,
		Mobile:    u.Mobile,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

func FromAuthResult(r usecase.AuthResult) LoginResponse {
	return LoginResponse{
		User:        FromUser(r.User),
		AccessToken: r.AccessToken,
		IDToken:     r.IDToken,
	}
}
