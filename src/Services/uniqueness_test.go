package Services

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ROLE_USER' for key 'name'"}

	assert.True(t, IsDuplicateEntry(dup))
	assert.True(t, IsDuplicateEntry(fmt.Errorf("insert role: %w", dup)))
	assert.False(t, IsDuplicateEntry(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicateEntry(sql.ErrNoRows))
	assert.False(t, IsDuplicateEntry(nil))
}

func TestNameTaken(t *testing.T) {
	db, mock := newMockDB(t)

	t.Run("free name", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM role WHERE name = \?`).
			WithArgs("ROLE_MODERATOR").
			WillReturnError(sql.ErrNoRows)

		taken, err := NameTaken(db, "role", "name", "ROLE_MODERATOR", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("taken name", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM role WHERE name = \?`).
			WithArgs("ROLE_USER").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		taken, err := NameTaken(db, "role", "name", "ROLE_USER", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("user uniqueness reads the username column", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM user_info WHERE username = \?`).
			WithArgs("member").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		taken, err := NameTaken(db, "user_info", "username", "member", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("own row excluded on rename", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM role WHERE name = \? AND id <> \?`).
			WithArgs("ROLE_USER", int64(2)).
			WillReturnError(sql.ErrNoRows)

		taken, err := NameTaken(db, "role", "name", "ROLE_USER", 2)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
