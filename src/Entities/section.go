package Entities

import (
	"time"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Section struct {
	Id       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	PlacedAt time.Time `json:"placed_at" db:"placed_at"`
}

func (s *Section) Validate() error {
	var violations []string

	if s.Name == "" {
		violations = append(violations, "Section name can't be empty")
	} else if n := utf8.RuneCountInString(s.Name); n < 1 || n > 100 {
		violations = append(violations, "Section name must be between 1 and 100 in length")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
