package entities

import "time"

// User is the profile record kept alongside the identity provider account.
// Credentials live in the identity provider only; this table never sees a
// password.
//
// Storage model (DynamoDB):
//   - PK: user_id
type User struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
