package Services

import (
	"database/sql"
	"testing"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectRoleById(mock sqlmock.Sqlmock, id int64, name string, color int) {
	mock.ExpectQuery(`SELECT id, name, color FROM role WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color"}).AddRow(id, name, color))
}

func TestCreateRoleRequiresAdmin(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := CreateRole(db, userPrincipal(5), &Entities.Role{Name: "ROLE_MODERATOR"})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRoleDuplicateAtInsert(t *testing.T) {
	db, mock := newMockDB(t)

	// The uniqueness read passes but a concurrent writer wins the insert;
	// the constraint violation comes back as the same conflict.
	mock.ExpectQuery(`SELECT id FROM role WHERE name = \?`).
		WithArgs("ROLE_MODERATOR").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO role \(name, color\) VALUES \(\?, \?\)`).
		WithArgs("ROLE_MODERATOR", 0x00FF00).
		WillReturnError(&mysql.MySQLError{Number: 1062})

	_, err := CreateRole(db, adminPrincipal(), &Entities.Role{Name: "ROLE_MODERATOR", Color: 0x00FF00})
	assert.IsType(t, &Errors.ItemAlreadyExists{}, err)
	assert.EqualError(t, err, "Role with name ROLE_MODERATOR already exists")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleAdminRoleImmutable(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 1, Entities.AdminRoleName, 0xFF0000)

	_, err := PatchRole(db, adminPrincipal(), 1, &RolePatch{Name: strPtr("ROLE_SUPREME")})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)
	assert.EqualError(t, err, "Admin role can't be renamed")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleRenameToTakenName(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 3, "ROLE_MODERATOR", 0x00FF00)
	mock.ExpectQuery(`SELECT id FROM role WHERE name = \? AND id <> \?`).
		WithArgs("ROLE_USER", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	_, err := PatchRole(db, adminPrincipal(), 3, &RolePatch{Name: strPtr("ROLE_USER")})
	assert.IsType(t, &Errors.ItemAlreadyExists{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleRenameToCurrentNameIsNoConflict(t *testing.T) {
	db, mock := newMockDB(t)

	// Renaming to the current name must not trip over the role's own row.
	expectRoleById(mock, 3, "ROLE_MODERATOR", 0x00FF00)
	mock.ExpectExec(`UPDATE role SET name = \?, color = \? WHERE id = \?`).
		WithArgs("ROLE_MODERATOR", 0x00FF00, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	role, err := PatchRole(db, adminPrincipal(), 3, &RolePatch{Name: strPtr("ROLE_MODERATOR")})
	require.NoError(t, err)
	assert.Equal(t, "ROLE_MODERATOR", role.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleBlankName(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 3, "ROLE_MODERATOR", 0x00FF00)

	_, err := PatchRole(db, adminPrincipal(), 3, &RolePatch{Name: strPtr("   ")})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)
	assert.EqualError(t, err, "Role name mustn't be blank")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleColorOutOfRange(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 3, "ROLE_MODERATOR", 0x00FF00)

	badColor := 0x1000000
	_, err := PatchRole(db, adminPrincipal(), 3, &RolePatch{Color: &badColor})

	var validation *Errors.ValidationFailed
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Violations, "Wrong color value")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchRoleEmptyPatchStillWrites(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 3, "ROLE_MODERATOR", 0x00FF00)
	mock.ExpectExec(`UPDATE role SET name = \?, color = \? WHERE id = \?`).
		WithArgs("ROLE_MODERATOR", 0x00FF00, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	role, err := PatchRole(db, adminPrincipal(), 3, &RolePatch{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), role.Id)
	assert.Equal(t, 0x00FF00, role.Color)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRoleAdminRoleImmutable(t *testing.T) {
	db, mock := newMockDB(t)

	expectRoleById(mock, 1, Entities.AdminRoleName, 0xFF0000)

	err := DeleteRole(db, adminPrincipal(), 1)
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)
	assert.EqualError(t, err, "Admin role can't be removed")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRole(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, color FROM role WHERE id = \?`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	err := DeleteRole(db, adminPrincipal(), 42)
	assert.IsType(t, &Errors.ItemNotFound{}, err)
	assert.EqualError(t, err, "Role with id 42 doesn't exist")

	require.NoError(t, mock.ExpectationsWereMet())
}
