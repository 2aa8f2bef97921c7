package formrepo

import "errors"

var (
	ErrNotFound     = errors.New("form not found")
	ErrNoCategories = errors.New("form needs at least one rating category")
)

type CreateFormRequest struct {
	Title       string
	Description string
	Categories  []string
}
