package memory

import (
	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/userrepo"
	"github.com/Leopold1975/feedback_control/internal/pkg/cow"
)

type Hasher interface {
	Hash(plaintext string) string
}

type UsersMemoryRepo struct {
	users  *cow.List[models.User]
	hasher Hasher
}

func New(h Hasher) *UsersMemoryRepo {
	return &UsersMemoryRepo{
		users:  cow.New[models.User](),
		hasher: h,
	}
}

func (ur *UsersMemoryRepo) Authenticate(username, password string) (models.User, error) {
	hash := ur.hasher.Hash(password)

	for _, u := range ur.users.Load() {
		if u.Username == username && u.PasswordHash == hash {
			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}

func (ur *UsersMemoryRepo) CreateUser(username, password string, role models.Role) error {
	u := models.User{
		Username:     username,
		PasswordHash: ur.hasher.Hash(password),
		Role:         role,
	}

	ok := ur.users.Update(func(cur []models.User) ([]models.User, bool) {
		if indexOf(cur, username) != -1 {
			return nil, false
		}

		return cow.AppendCopy(cur, u), true
	})
	if !ok {
		return userrepo.ErrAlreadyExists
	}

	return nil
}

// DeleteUser removes every record named username. Deleting an unknown user is
// not an error.
func (ur *UsersMemoryRepo) DeleteUser(username string) {
	ur.users.RemoveFunc(func(u models.User) bool {
		return u.Username == username
	})
}

func (ur *UsersMemoryRepo) UpdatePassword(username, newPassword string) error {
	hash := ur.hasher.Hash(newPassword)

	ok := ur.users.Update(func(cur []models.User) ([]models.User, bool) {
		i := indexOf(cur, username)
		if i == -1 {
			return nil, false
		}

		next := make([]models.User, len(cur))
		copy(next, cur)
		next[i].PasswordHash = hash

		return next, true
	})
	if !ok {
		return userrepo.ErrNotFound
	}

	return nil
}

func (ur *UsersMemoryRepo) GetUser(username string) (models.User, error) {
	users := ur.users.Load()

	i := indexOf(users, username)
	if i == -1 {
		return models.User{}, userrepo.ErrNotFound
	}

	return users[i], nil
}

func (ur *UsersMemoryRepo) ListUsers() []models.User {
	users := ur.users.Load()

	out := make([]models.User, len(users))
	copy(out, users)

	return out
}

func indexOf(users []models.User, username string) int {
	for i, u := range users {
		if u.Username == username {
			return i
		}
	}

	return -1
}
