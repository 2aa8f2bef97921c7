package dataservice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/formrepo"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/userrepo"
	"github.com/Leopold1975/feedback_control/pkg/logger"
)

var (
	ErrFormNotFound  = errors.New("form not found")
	ErrInvalidRating = errors.New("ratings do not match form categories")
)

type DataService struct {
	users    UserRepository
	forms    FormRepository
	feedback FeedbackRepository
	lg       logger.Logger
}

type UserRepository interface {
	Authenticate(username, password string) (models.User, error)
	CreateUser(username, password string, role models.Role) error
	DeleteUser(username string)
	UpdatePassword(username, newPassword string) error
	ListUsers() []models.User
}

type FormRepository interface {
	CreateForm(formrepo.CreateFormRequest) (models.Form, error)
	DeleteForm(id string)
	GetForm(id string) (models.Form, error)
	ListForms() []models.Form
}

type FeedbackRepository interface {
	AddFeedback(models.Feedback)
	SubmitFeedback(models.Feedback) error
	HasSubmitted(userName, formID string) bool
	ListFeedback() []models.Feedback
	ListFeedbackByForm(formID string) []models.Feedback
	Clear()
}

func NewWithRepos(users UserRepository, forms FormRepository, feedback FeedbackRepository,
	lg logger.Logger,
) *DataService {
	return &DataService{
		users:    users,
		forms:    forms,
		feedback: feedback,
		lg:       lg,
	}
}

// AuthenticateUser reports false for an unknown user and for a wrong password
// alike.
func (ds *DataService) AuthenticateUser(username, password string) (models.User, bool) {
	u, err := ds.users.Authenticate(username, password)
	if err != nil {
		ds.lg.Debugf("authenticate %q: %s", username, err.Error())

		return models.User{}, false
	}

	return u, true
}

func (ds *DataService) AddUser(username, password string, role models.Role) bool {
	if err := ds.users.CreateUser(username, password, role); err != nil {
		ds.lg.Debugf("add user %q: %s", username, err.Error())

		return false
	}

	ds.lg.Debugf("user %q added with role %s", username, role)

	return true
}

// DeleteUser is a no-op for an unknown username, unlike UpdateUserPassword
// which reports it.
func (ds *DataService) DeleteUser(username string) {
	ds.users.DeleteUser(username)
	ds.lg.Debugf("user %q deleted", username)
}

func (ds *DataService) UpdateUserPassword(username, newPassword string) bool {
	if err := ds.users.UpdatePassword(username, newPassword); err != nil {
		if !errors.Is(err, userrepo.ErrNotFound) {
			ds.lg.Errorf("update password %q: %s", username, err.Error())
		}

		return false
	}

	return true
}

func (ds *DataService) GetUsers() []models.User {
	return ds.users.ListUsers()
}

func (ds *DataService) AddForm(title, description string, categories []string) (models.Form, error) {
	f, err := ds.forms.CreateForm(formrepo.CreateFormRequest{
		Title:       title,
		Description: description,
		Categories:  categories,
	})
	if err != nil {
		return models.Form{}, fmt.Errorf("create form error: %w", err)
	}

	ds.lg.Debugf("form %q created with id %s", f.Title, f.ID)

	return f, nil
}

// DeleteForm leaves feedback that references the form in place.
func (ds *DataService) DeleteForm(form models.Form) {
	ds.forms.DeleteForm(form.ID)
	ds.lg.Debugf("form %s deleted", form.ID)
}

func (ds *DataService) GetForms() []models.Form {
	return ds.forms.ListForms()
}

func (ds *DataService) GetForm(id string) (models.Form, error) {
	f, err := ds.forms.GetForm(id)
	if err != nil {
		if errors.Is(err, formrepo.ErrNotFound) {
			return models.Form{}, ErrFormNotFound
		}

		return models.Form{}, fmt.Errorf("get form error: %w", err)
	}

	return f, nil
}

// AddFeedback appends fb unconditionally. Callers that need the
// one-submission-per-form rule must use SubmitFeedback, since
// HasUserSubmittedForm followed by AddFeedback is not atomic.
func (ds *DataService) AddFeedback(fb models.Feedback) {
	ds.feedback.AddFeedback(fb)
	ds.lg.Debugf("feedback added for form %s by %q", fb.FormID, fb.UserName)
}

// SubmitFeedback validates fb against its form and stores it unless the same
// user already submitted that form. FormTitle is taken from the form when
// empty.
func (ds *DataService) SubmitFeedback(fb models.Feedback) error {
	form, err := ds.GetForm(fb.FormID)
	if err != nil {
		return err
	}

	if err := fb.Validate(); err != nil {
		return fmt.Errorf("validate error: %w", err)
	}

	if err := checkRatings(form, fb.Ratings); err != nil {
		return err
	}

	if fb.FormTitle == "" {
		fb.FormTitle = form.Title
	}

	if err := ds.feedback.SubmitFeedback(fb); err != nil {
		return fmt.Errorf("submit feedback error: %w", err)
	}

	ds.lg.Debugf("feedback submitted for form %s by %q", fb.FormID, fb.UserName)

	return nil
}

func (ds *DataService) HasUserSubmittedForm(user models.User, form models.Form) bool {
	return ds.feedback.HasSubmitted(user.Username, form.ID)
}

func (ds *DataService) GetFeedback() []models.Feedback {
	return ds.feedback.ListFeedback()
}

// GetFormFeedback returns the feedback for form whose user name contains
// nameFilter, ignoring case. An empty filter matches everything.
func (ds *DataService) GetFormFeedback(form models.Form, nameFilter string) []models.Feedback {
	records := ds.feedback.ListFeedbackByForm(form.ID)
	if nameFilter == "" {
		return records
	}

	nameFilter = strings.ToLower(nameFilter)
	out := records[:0]

	for _, fb := range records {
		if strings.Contains(strings.ToLower(fb.UserName), nameFilter) {
			out = append(out, fb)
		}
	}

	return out
}

func (ds *DataService) ClearAllFeedback() {
	ds.feedback.Clear()
	ds.lg.Infof("all feedback cleared")
}

func checkRatings(form models.Form, ratings map[string]int) error {
	if len(ratings) != len(form.RatingCategories) {
		return fmt.Errorf("%w: want %d ratings, got %d", ErrInvalidRating, len(form.RatingCategories), len(ratings))
	}

	for _, c := range form.RatingCategories {
		if _, ok := ratings[c]; !ok {
			return fmt.Errorf("%w: missing %q", ErrInvalidRating, c)
		}
	}

	return nil
}
