package Services

import (
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// UserProfilePatch is partitioned by who may set what: role and username are
// admin territory, email and password belong to the account holder,
// information and avatar to both.
type UserProfilePatch struct {
	RoleId      *int64  `json:"role_id"`
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	OldPassword *string `json:"old_password"`
	Information *string `json:"information"`
	Avatar      []byte  `json:"avatar"`
}

type userRow struct {
	Id               int64          `db:"id"`
	Username         string         `db:"username"`
	Password         string         `db:"password"`
	Information      string         `db:"information"`
	Email            string         `db:"email"`
	RegistrationDate time.Time      `db:"registration_date"`
	Avatar           []byte         `db:"avatar"`
	NonLocked        bool           `db:"non_locked"`
	RoleId           sql.NullInt64  `db:"role_id"`
	RoleName         sql.NullString `db:"role_name"`
	RoleColor        sql.NullInt64  `db:"role_color"`
}

func (r *userRow) toUser() *Entities.User {
	user := &Entities.User{
		Id:               r.Id,
		Username:         r.Username,
		Password:         r.Password,
		Information:      r.Information,
		Email:            r.Email,
		RegistrationDate: r.RegistrationDate,
		Avatar:           r.Avatar,
		NonLocked:        r.NonLocked,
	}
	if r.RoleId.Valid {
		user.Role = &Entities.Role{
			Id:    r.RoleId.Int64,
			Name:  r.RoleName.String,
			Color: int(r.RoleColor.Int64),
		}
	}
	return user
}

const userSelect = "SELECT u.id, u.username, u.password, u.information, u.email, " +
	"u.registration_date, u.avatar, u.non_locked, " +
	"r.id AS role_id, r.name AS role_name, r.color AS role_color " +
	"FROM user_info u LEFT JOIN role r ON r.id = u.role_id"

func GetAllUsers(db *sqlx.DB) ([]Entities.User, error) {
	var rows []userRow
	if err := db.Select(&rows, userSelect+" ORDER BY u.id"); err != nil {
		return nil, err
	}

	users := make([]Entities.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].toUser())
	}
	return users, nil
}

func GetUser(db *sqlx.DB, id int64) (*Entities.User, error) {
	var row userRow
	err := db.Get(&row, userSelect+" WHERE u.id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("User with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

func GetUserByUsername(db *sqlx.DB, username string) (*Entities.User, error) {
	var row userRow
	err := db.Get(&row, userSelect+" WHERE u.username = ?", username)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("User with name %s doesn't exist", username))
	}
	if err != nil {
		return nil, err
	}
	return row.toUser(), nil
}

// RegisterUser creates an account with the default role. password is the
// plaintext; only its bcrypt hash is stored.
func RegisterUser(db *sqlx.DB, user *Entities.User, password string) (*Entities.User, error) {
	if err := user.ValidateNew(password); err != nil {
		return nil, err
	}

	taken, err := NameTaken(db, "user_info", "username", user.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Errors.AlreadyExists(fmt.Sprintf("User with name %s already exists", user.Username))
	}

	if err := user.HashPassword(password); err != nil {
		return nil, err
	}

	role, err := GetRoleByName(db, Entities.DefaultRoleName)
	if err != nil {
		return nil, err
	}

	res, err := db.Exec(
		"INSERT INTO user_info (username, password, information, email, registration_date, avatar, role_id, non_locked) "+
			"VALUES (?, ?, ?, ?, NOW(), ?, ?, TRUE)",
		user.Username, user.Password, user.Information, user.Email, user.Avatar, role.Id)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists(fmt.Sprintf("User with name %s already exists", user.Username))
	}
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return GetUser(db, id)
}

// PatchUser applies the sparse profile update. The returned bool reports
// whether the principal patched their own account, in which case the caller
// must re-issue the session credentials so the session sees the new identity.
func PatchUser(db *sqlx.DB, p Principal, id int64, patch *UserProfilePatch) (*Entities.User, bool, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, false, err
	}

	if err := CanMutate(p, ResourceUser, ActionPatch, &user.Id); err != nil {
		return nil, false, err
	}

	sameUser := p.Id == id

	// Admin only patches
	if p.IsAdmin() {
		if patch.RoleId != nil {
			role, err := GetRole(db, *patch.RoleId)
			if err != nil {
				return nil, false, err
			}
			user.Role = role
		}

		if patch.Username != nil {
			if n := utf8.RuneCountInString(*patch.Username); n < 4 || n > 20 {
				return nil, false, &Errors.ValidationFailed{Violations: []string{"Name must be between 4 and 20 in length"}}
			}

			if user.Username != *patch.Username {
				taken, err := NameTaken(db, "user_info", "username", *patch.Username, id)
				if err != nil {
					return nil, false, err
				}
				if taken {
					return nil, false, Errors.AlreadyExists(fmt.Sprintf("User with name %s already exists", *patch.Username))
				}
			}

			user.Username = *patch.Username
		}
	}

	// User only patches
	if sameUser {
		if patch.Email != nil {
			if !Entities.ValidEmail(*patch.Email) {
				return nil, false, &Errors.ValidationFailed{Violations: []string{"Wrong email"}}
			}
			user.Email = *patch.Email
		}

		if patch.Password != nil {
			if patch.OldPassword == nil || user.CheckPassword(*patch.OldPassword) != nil {
				return nil, false, Errors.NotAllowed("Old password doesn't match current password")
			}

			if !Entities.ValidPassword(*patch.Password) {
				return nil, false, Entities.PasswordRuleViolation()
			}

			if err := user.HashPassword(*patch.Password); err != nil {
				return nil, false, err
			}
		}
	}

	if patch.Information != nil {
		if utf8.RuneCountInString(*patch.Information) > 1000 {
			return nil, false, &Errors.ValidationFailed{Violations: []string{"Information mustn't be longer than 1000 in length"}}
		}
		user.Information = *patch.Information
	}

	if patch.Avatar != nil {
		user.Avatar = patch.Avatar
	}

	var roleId interface{}
	if user.Role != nil {
		roleId = user.Role.Id
	}

	query, args, err := sq.Update("user_info").
		Set("username", user.Username).
		Set("password", user.Password).
		Set("information", user.Information).
		Set("email", user.Email).
		Set("avatar", user.Avatar).
		Set("role_id", roleId).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, false, err
	}

	_, err = db.Exec(query, args...)
	if IsDuplicateEntry(err) {
		return nil, false, Errors.AlreadyExists(fmt.Sprintf("User with name %s already exists", user.Username))
	}
	if err != nil {
		return nil, false, err
	}

	return user, sameUser, nil
}

// DeleteUser removes the account. Authored topics and comments stay behind
// with an anonymized author; likes and reputations go with the account.
func DeleteUser(db *sqlx.DB, p Principal, id int64) error {
	user, err := GetUser(db, id)
	if err != nil {
		return err
	}

	if err := CanMutate(p, ResourceUser, ActionDelete, &user.Id); err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM user_info WHERE id = ?", id)
	return err
}

// ToggleUserLock flips the locked flag; locked accounts are refused at login.
func ToggleUserLock(db *sqlx.DB, p Principal, id int64) (*Entities.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceUser, ActionLock, nil); err != nil {
		return nil, err
	}

	user.NonLocked = !user.NonLocked
	if _, err := db.Exec("UPDATE user_info SET non_locked = ? WHERE id = ?", user.NonLocked, id); err != nil {
		return nil, err
	}
	return user, nil
}
