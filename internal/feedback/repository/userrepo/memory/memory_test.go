package memory

import (
	"fmt"
	"testing"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/userrepo"
	"github.com/Leopold1975/feedback_control/internal/pkg/hasher"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type UsersRepoSuite struct {
	suite.Suite
	repo *UsersMemoryRepo
	h    hasher.Hasher
}

func TestUsersRepo(t *testing.T) {
	suite.Run(t, new(UsersRepoSuite))
}

func (s *UsersRepoSuite) SetupTest() {
	h, err := hasher.New(hasher.SHA256)
	s.Require().NoError(err)

	s.h = h
	s.repo = New(h)
	s.Require().NoError(s.repo.CreateUser("admin", "123", models.RoleAdmin))
}

func (s *UsersRepoSuite) TestAuthenticate() {
	u, err := s.repo.Authenticate("admin", "123")
	s.Require().NoError(err)
	s.Equal("admin", u.Username)
	s.Equal(models.RoleAdmin, u.Role)
	s.Equal(s.h.Hash("123"), u.PasswordHash)

	_, err = s.repo.Authenticate("admin", "wrong")
	s.ErrorIs(err, userrepo.ErrNotFound)

	_, err = s.repo.Authenticate("nobody", "123")
	s.ErrorIs(err, userrepo.ErrNotFound)

	_, err = s.repo.Authenticate("Admin", "123")
	s.ErrorIs(err, userrepo.ErrNotFound, "usernames are case-sensitive")
}

func (s *UsersRepoSuite) TestCreateDuplicateKeepsFirst() {
	err := s.repo.CreateUser("admin", "x", models.RoleUser)
	s.ErrorIs(err, userrepo.ErrAlreadyExists)

	u, err := s.repo.GetUser("admin")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, u.Role)
	s.Equal(s.h.Hash("123"), u.PasswordHash)
	s.Len(s.repo.ListUsers(), 1)
}

func (s *UsersRepoSuite) TestDeleteIsIdempotent() {
	s.Require().NoError(s.repo.CreateUser("dev", "123", models.RoleUser))

	s.repo.DeleteUser("dev")
	s.repo.DeleteUser("dev")
	s.repo.DeleteUser("never-existed")

	_, err := s.repo.GetUser("dev")
	s.ErrorIs(err, userrepo.ErrNotFound)
	s.Len(s.repo.ListUsers(), 1)
}

func (s *UsersRepoSuite) TestUpdatePassword() {
	s.Require().NoError(s.repo.UpdatePassword("admin", "456"))

	_, err := s.repo.Authenticate("admin", "123")
	s.ErrorIs(err, userrepo.ErrNotFound)

	_, err = s.repo.Authenticate("admin", "456")
	s.NoError(err)

	s.ErrorIs(s.repo.UpdatePassword("ghost", "1"), userrepo.ErrNotFound)
}

func (s *UsersRepoSuite) TestListIsSnapshot() {
	users := s.repo.ListUsers()
	users[0].Role = models.RoleUser

	s.Require().NoError(s.repo.UpdatePassword("admin", "new"))

	u, err := s.repo.GetUser("admin")
	s.Require().NoError(err)
	s.Equal(models.RoleAdmin, u.Role)
	s.Equal(s.h.Hash("123"), users[0].PasswordHash, "old snapshot keeps old digest")
}

func (s *UsersRepoSuite) TestConcurrentCreate() {
	const n = 100

	before := len(s.repo.ListUsers())

	var g errgroup.Group

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("user-%d", i)

		g.Go(func() error {
			return s.repo.CreateUser(name, "pw", models.RoleUser)
		})
	}

	s.Require().NoError(g.Wait())
	s.Len(s.repo.ListUsers(), before+n)

	for i := 0; i < n; i++ {
		_, err := s.repo.Authenticate(fmt.Sprintf("user-%d", i), "pw")
		s.NoError(err)
	}
}

func (s *UsersRepoSuite) TestConcurrentDuplicateCreate() {
	const n = 50

	var g errgroup.Group

	results := make([]error, n)

	for i := 0; i < n; i++ {
		i := i

		g.Go(func() error {
			results[i] = s.repo.CreateUser("racer", fmt.Sprint(i), models.RoleUser)

			return nil
		})
	}

	s.Require().NoError(g.Wait())

	created := 0

	for _, err := range results {
		if err == nil {
			created++
		} else {
			s.ErrorIs(err, userrepo.ErrAlreadyExists)
		}
	}

	s.Equal(1, created)
}
