package memory

import (
	"github.com/Leopold1975/feedback_control/internal/feedback/domain/models"
	"github.com/Leopold1975/feedback_control/internal/feedback/repository/feedbackrepo"
	"github.com/Leopold1975/feedback_control/internal/pkg/cow"
)

type FeedbackMemoryRepo struct {
	records *cow.List[models.Feedback]
}

func New() *FeedbackMemoryRepo {
	return &FeedbackMemoryRepo{
		records: cow.New[models.Feedback](),
	}
}

// AddFeedback appends fb without checking for an earlier submission of the
// same form by the same user. Use SubmitFeedback for the checked path.
func (fr *FeedbackMemoryRepo) AddFeedback(fb models.Feedback) {
	fr.records.Append(fb.Clone())
}

// SubmitFeedback appends fb unless a record for the same (form, user) pair is
// already stored. Check and insert happen under one writer lock.
func (fr *FeedbackMemoryRepo) SubmitFeedback(fb models.Feedback) error {
	fb = fb.Clone()

	ok := fr.records.Update(func(cur []models.Feedback) ([]models.Feedback, bool) {
		if submitted(cur, fb.UserName, fb.FormID) {
			return nil, false
		}

		return cow.AppendCopy(cur, fb), true
	})
	if !ok {
		return feedbackrepo.ErrAlreadySubmitted
	}

	return nil
}

func (fr *FeedbackMemoryRepo) HasSubmitted(userName, formID string) bool {
	return submitted(fr.records.Load(), userName, formID)
}

func (fr *FeedbackMemoryRepo) ListFeedback() []models.Feedback {
	records := fr.records.Load()

	out := make([]models.Feedback, len(records))
	for i, fb := range records {
		out[i] = fb.Clone()
	}

	return out
}

func (fr *FeedbackMemoryRepo) ListFeedbackByForm(formID string) []models.Feedback {
	var out []models.Feedback

	for _, fb := range fr.records.Load() {
		if fb.FormID == formID {
			out = append(out, fb.Clone())
		}
	}

	return out
}

func (fr *FeedbackMemoryRepo) Clear() {
	fr.records.Clear()
}

func submitted(records []models.Feedback, userName, formID string) bool {
	for _, fb := range records {
		if fb.FormID == formID && fb.UserName == userName {
			return true
		}
	}

	return false
}
