package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"` //nolint:tagliatelle
	Role         Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
