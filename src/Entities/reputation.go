package Entities

import (
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

type Reputation struct {
	Id           int64   `json:"id" db:"id"`
	Msg          *string `json:"msg" db:"msg"`
	UserId       int64   `json:"user_id" db:"user_id"`
	TargetUserId int64   `json:"target_user_id" db:"target_user_id"`
}

func (r *Reputation) Validate() error {
	var violations []string

	if r.Msg != nil && utf8.RuneCountInString(*r.Msg) > 100 {
		violations = append(violations, "Reputation message must be no longer than 100 characters")
	}

	if r.TargetUserId == 0 {
		violations = append(violations, "Target user can't be null")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
