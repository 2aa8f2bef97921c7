package console

import (
	"errors"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/feedbackrepo"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/formrepo"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/authservice"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/dataservice"
	"github.com/Leopold1975/feedback_control/internal/pkg/jwtauth"
)

var (
	errLoginRequired = errors.New("login required")
	errUserExists    = errors.New("user already exists")
	errNoSuchUser    = errors.New("no such user")
)

type usageError struct {
	usage string
}

func (e usageError) Error() string {
	return "usage: " + e.usage
}

// handleError prints the user facing message for err. An expired session is
// dropped so the user has to log in again.
func (c *Console) handleError(err error) {
	var ue usageError

	switch {
	case errors.Is(err, authservice.ErrInvalidCredentials):
		c.printf("%s\n", msgInvalidCredentials)
	case errors.Is(err, jwtauth.ErrExpiredToken):
		c.session = nil
		c.printf("%s\n", msgLoginRequired)
	case errors.Is(err, errLoginRequired):
		c.printf("%s\n", msgLoginRequired)
	case errors.Is(err, authservice.ErrNotAllowed):
		c.printf("%s\n", msgAdminRequired)
	case errors.Is(err, feedbackrepo.ErrAlreadySubmitted):
		c.printf("%s\n", msgAlreadySubmitted)
	case errors.Is(err, models.ErrInvalidEmail):
		c.printf("%s\n", msgInvalidEmail)
	case errors.Is(err, errUserExists):
		c.printf("%s\n", msgUserExists)
	case errors.Is(err, errNoSuchUser):
		c.printf("%s\n", msgNoSuchUser)
	case errors.Is(err, dataservice.ErrFormNotFound):
		c.printf("%s\n", msgNoSuchForm)
	case errors.As(err, &ue):
		c.printf("Usage: %s\n", ue.usage)
	case errors.Is(err, models.ErrInvalidRating), errors.Is(err, dataservice.ErrInvalidRating),
		errors.Is(err, formrepo.ErrNoCategories):
		c.printf("Invalid input: %s\n", err.Error())
	default:
		c.printf("Error: %s\n", err.Error())
	}
}
