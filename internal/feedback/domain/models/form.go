package models

import "slices"

type Form struct {
	ID               string   `json:"form_id"` //nolint:tagliatelle
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	RatingCategories []string `json:"rating_categories"` //nolint:tagliatelle
}

// Clone returns a copy that shares no memory with f.
func (f Form) Clone() Form {
	f.RatingCategories = slices.Clone(f.RatingCategories)

	return f
}

func (f Form) String() string {
	return f.Title
}
