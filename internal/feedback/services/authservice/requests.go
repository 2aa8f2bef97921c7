package authservice

import "github.com/Leopold1975/feedback_control/internal/feedback/domain/models"

type LoginRequest struct {
	Username string
	Password string
	Role     models.Role
}

type Session struct {
	User  models.User
	Token string
}
