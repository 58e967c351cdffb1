package Services

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type RolePatch struct {
	Name  *string `json:"name"`
	Color *int    `json:"color"`
}

func GetAllRoles(db *sqlx.DB) ([]Entities.Role, error) {
	roles := make([]Entities.Role, 0)
	err := db.Select(&roles, "SELECT id, name, color FROM role ORDER BY id")
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func GetRole(db *sqlx.DB, id int64) (*Entities.Role, error) {
	var role Entities.Role
	err := db.Get(&role, "SELECT id, name, color FROM role WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Role with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func GetRoleByName(db *sqlx.DB, name string) (*Entities.Role, error) {
	var role Entities.Role
	err := db.Get(&role, "SELECT id, name, color FROM role WHERE name = ?", name)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Role with name %s doesn't exist", name))
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func CreateRole(db *sqlx.DB, p Principal, role *Entities.Role) (*Entities.Role, error) {
	if err := CanMutate(p, ResourceRole, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	taken, err := NameTaken(db, "role", "name", role.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Role with name %s already exists", role.Name))
	}

	res, err := db.Exec("INSERT INTO role (name, color) VALUES (?, ?)", role.Name, role.Color)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Role with name %s already exists", role.Name))
	}
	if err != nil {
		return nil, err
	}

	role.Id, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return role, nil
}

func PatchRole(db *sqlx.DB, p Principal, id int64, patch *RolePatch) (*Entities.Role, error) {
	role, err := GetRole(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceRole, ActionPatch, nil); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if role.Name == Entities.AdminRoleName {
			return nil, Errors.NotAllowed("Admin role can't be renamed")
		}

		if strings.TrimSpace(*patch.Name) == "" {
			return nil, Errors.NotAllowed("Role name mustn't be blank")
		}

		if utf8.RuneCountInString(*patch.Name) > 20 {
			return nil, &Errors.ValidationFailed{Violations: []string{"Role name must be between 1 and 20 in length"}}
		}

		if role.Name != *patch.Name {
			taken, err := NameTaken(db, "role", "name", *patch.Name, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, Errors.AlreadyExists(fmt.Sprintf("Role with name %s already exists", *patch.Name))
			}
		}

		role.Name = *patch.Name
	}

	if patch.Color != nil {
		if *patch.Color < 0x000000 || *patch.Color > 0xFFFFFF {
			return nil, &Errors.ValidationFailed{Violations: []string{"Wrong color value"}}
		}
		role.Color = *patch.Color
	}

	query, args, err := sq.Update("role").
		Set("name", role.Name).
		Set("color", role.Color).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(query, args...)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists(fmt.Sprintf("Role with name %s already exists", role.Name))
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}

func DeleteRole(db *sqlx.DB, p Principal, id int64) error {
	role, err := GetRole(db, id)
	if err != nil {
		return err
	}

	if err := CanMutate(p, ResourceRole, ActionDelete, nil); err != nil {
		return err
	}

	if role.Name == Entities.AdminRoleName {
		return Errors.NotAllowed("Admin role can't be removed")
	}

	_, err = db.Exec("DELETE FROM role WHERE id = ?", id)
	return err
}
