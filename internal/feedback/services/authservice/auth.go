package authservice

import (
	"errors"
	"fmt"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/Leopold1975/feedback_control/internal/pkg/jwtauth"
)

// ErrInvalidCredentials is returned for every failed login so callers cannot
// tell an unknown user from a wrong password or role.
var ErrInvalidCredentials = errors.New("invalid credentials")

var ErrNotAllowed = errors.New("admin role required")

type AuthService struct {
	users Authenticator
	cfg   config.Auth
}

type Authenticator interface {
	AuthenticateUser(username, password string) (models.User, bool)
}

func New(users Authenticator, cfg config.Auth) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

func (as *AuthService) Login(req LoginRequest) (Session, error) {
	u, ok := as.users.AuthenticateUser(req.Username, req.Password)
	if !ok || u.Role != req.Role {
		return Session{}, ErrInvalidCredentials
	}

	token, err := jwtauth.GetToken(u, as.cfg.TTL, as.cfg.Secret)
	if err != nil {
		return Session{}, fmt.Errorf("can't get token error: %w", err)
	}

	return Session{User: u, Token: token}, nil
}

// Auth returns the identity carried by a session token. PasswordHash is not
// part of the token and is left empty.
func (as *AuthService) Auth(token string) (models.User, error) {
	claims, err := jwtauth.ValidateToken(token, as.cfg.Secret)
	if err != nil {
		return models.User{}, fmt.Errorf("validate token error: %w", err)
	}

	return models.User{Username: claims.Username, Role: claims.Role}, nil
}

func (as *AuthService) IsAdmin(token string) (bool, error) {
	role, err := jwtauth.ValidateTokenRole(token, as.cfg.Secret)
	if err != nil {
		return false, fmt.Errorf("validate token role error: %w", err)
	}

	return role == models.RoleAdmin, nil
}

// RequireAdmin fails with ErrNotAllowed unless token belongs to an admin.
func (as *AuthService) RequireAdmin(token string) error {
	isAdmin, err := as.IsAdmin(token)
	if err != nil {
		return err
	}

	if !isAdmin {
		return ErrNotAllowed
	}

	return nil
}
