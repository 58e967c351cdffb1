package Entities

import (
	"time"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Comment struct {
	Id              int64     `json:"id" db:"id"`
	Text            string    `json:"text" db:"text"`
	TextHtml        string    `json:"text_html,omitempty" db:"-"`
	PlacedAt        time.Time `json:"placed_at" db:"placed_at"`
	UserId          *int64    `json:"user_id" db:"user_id"` // nil after author account removal
	TopicId         int64     `json:"topic_id" db:"topic_id"`
	ParentCommentId *int64    `json:"parent_comment_id" db:"parent_comment_id"`
}

func (c *Comment) Validate() error {
	var violations []string

	if c.Text == "" {
		violations = append(violations, "Message can't be empty")
	} else if n := utf8.RuneCountInString(c.Text); n < 1 || n > 1000 {
		violations = append(violations, "Comment must be between 1 and 1000 in length")
	}

	if c.TopicId == 0 {
		violations = append(violations, "Parent topic can't be null")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
