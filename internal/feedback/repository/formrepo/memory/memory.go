package memory

import (
	"slices"
	"strings"

	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/formrepo"
	"github.com/Leopold1975/feedback_control/internal/pkg/cow"
	"github.com/google/uuid"
)

type FormsMemoryRepo struct {
	forms *cow.List[models.Form]
	newID func() string
}

func New() *FormsMemoryRepo {
	return &FormsMemoryRepo{
		forms: cow.New[models.Form](),
		newID: uuid.NewString,
	}
}

// CreateForm stores a new form under a freshly generated id. Blank and
// repeated category names are dropped, keeping first occurrence order; at least
// one must remain.
func (fr *FormsMemoryRepo) CreateForm(req formrepo.CreateFormRequest) (models.Form, error) {
	categories := make([]string, 0, len(req.Categories))

	for _, c := range req.Categories {
		if c = strings.TrimSpace(c); c != "" && !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
	}

	if len(categories) == 0 {
		return models.Form{}, formrepo.ErrNoCategories
	}

	f := models.Form{
		ID:               fr.newID(),
		Title:            req.Title,
		Description:      req.Description,
		RatingCategories: categories,
	}

	fr.forms.Append(f)

	return f.Clone(), nil
}

func (fr *FormsMemoryRepo) DeleteForm(id string) {
	fr.forms.RemoveFunc(func(f models.Form) bool {
		return f.ID == id
	})
}

func (fr *FormsMemoryRepo) GetForm(id string) (models.Form, error) {
	for _, f := range fr.forms.Load() {
		if f.ID == id {
			return f.Clone(), nil
		}
	}

	return models.Form{}, formrepo.ErrNotFound
}

func (fr *FormsMemoryRepo) ListForms() []models.Form {
	forms := fr.forms.Load()

	out := make([]models.Form, len(forms))
	for i, f := range forms {
		out[i] = f.Clone()
	}

	return out
}
