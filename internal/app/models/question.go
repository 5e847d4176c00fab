package models

import "errors"

var (
	errQuestionHasNoOptions    = errors.New("question has no options")
	errQuestionOptionsMismatch = errors.New("options and scores differ in length")
)

// Question is one assessment prompt. Options and Scores are parallel slices.
type Question struct {
	ID          int      `json:"id" validate:"required"`
	Domain      string   `json:"domain" validate:"required"`
	DomainName  string   `json:"domain_name,omitempty"`
	TherapyCode string   `json:"therapy_code,omitempty"`
	Text        string   `json:"text" validate:"required"`
	Options     []string `json:"options" validate:"required,min=1"`
	Scores      []int    `json:"scores" validate:"required,min=1"`
}

// CheckOptions reports whether every option has exactly one score.
func (q Question) CheckOptions() error {
	if len(q.Options) == 0 {
		return errQuestionHasNoOptions
	}
	if len(q.Options) != len(q.Scores) {
		return errQuestionOptionsMismatch
	}
	return nil
}

func (q Question) OptionCount() int {
	return len(q.Options)
}
