package Entities

import (
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Tag struct {
	Id   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func (t *Tag) Validate() error {
	var violations []string

	if t.Name == "" {
		violations = append(violations, "Tag name can't be empty")
	} else if n := utf8.RuneCountInString(t.Name); n < 1 || n > 20 {
		violations = append(violations, "Tag name must be between 1 and 20 in length")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
