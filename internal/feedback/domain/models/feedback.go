package models

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidRating = errors.New("rating out of range")
)

// Feedback is one user's response to a form. FormTitle is the title at
// submission time and is not updated afterwards.
type Feedback struct {
	UserName  string         `json:"user_name"`  //nolint:tagliatelle
	UserEmail string         `json:"user_email"` //nolint:tagliatelle
	Ratings   map[string]int `json:"ratings"`
	Comments  string         `json:"comments"`
	FormID    string         `json:"form_id"`    //nolint:tagliatelle
	FormTitle string         `json:"form_title"` //nolint:tagliatelle
}

func (fb Feedback) Clone() Feedback {
	fb.Ratings = maps.Clone(fb.Ratings)

	return fb
}

func (fb Feedback) Validate() error {
	if fb.UserEmail == "" || !strings.Contains(fb.UserEmail, "@") {
		return ErrInvalidEmail
	}

	for category, r := range fb.Ratings {
		if r < MinRating || r > MaxRating {
			return fmt.Errorf("%w: %s=%d", ErrInvalidRating, category, r)
		}
	}

	return nil
}
