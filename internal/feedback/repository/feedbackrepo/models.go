package feedbackrepo

import "errors"

var ErrAlreadySubmitted = errors.New("feedback already submitted for this form")
