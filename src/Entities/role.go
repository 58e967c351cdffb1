package Entities

import (
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"
)

// AdminRoleName can never be renamed or deleted.
const AdminRoleName = "ROLE_ADMIN"

const DefaultRoleName = "ROLE_USER"

type Role struct {
	Id    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color int    `json:"color" db:"color"`
}

func (r *Role) Validate() error {
	var violations []string

	if r.Name == "" {
		violations = append(violations, "Role name can't be empty")
	} else if n := utf8.RuneCountInString(r.Name); n < 1 || n > 20 {
		violations = append(violations, "Role name must be between 1 and 20 in length")
	}

	if r.Color < 0x000000 || r.Color > 0xFFFFFF {
		violations = append(violations, "Wrong color value")
	}

	if violations != nil {
		return &Errors.ValidationFailed{Violations: violations}
	}
	return nil
}
