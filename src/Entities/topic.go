package Entities

import (
	"time"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Topic struct {
	Id        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	PlacedAt  time.Time  `json:"placed_at" db:"placed_at"`
	Views     int64      `json:"views" db:"views"`
	UserId    *int64     `json:"user_id" db:"user_id"` // nil after author account removal
	SectionId int64      `json:"section_id" db:"section_id"`
	Tags      []Tag      `json:"tags" db:"-"`
	LastReply *time.Time `json:"last_reply,omitempty" db:"last_reply"`
}

func (t *Topic) Validate() error {
	var violations []string

	if t.Name == "" {
		violations = append(violations, "Topic name can't be empty")
	} else if n := utf8.RuneCountInString(t.Name); n < 1 || n > 100 {
		violations = append(violations, "Topic name must be between 1 and 100 in length")
	}

	if t.SectionId == 0 {
		violations = append(violations, "Parent section can't be null")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
