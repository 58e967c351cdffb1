package Services

import (
	"testing"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReputationForSelf(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := CreateReputation(db, userPrincipal(5), &Entities.Reputation{TargetUserId: 5})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)
	assert.EqualError(t, err, "You can't increase your own reputation")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReputation(t *testing.T) {
	db, mock := newMockDB(t)

	expectUserById(t, mock, 7, "target", "Curr3nt#pw")
	mock.ExpectExec(`INSERT INTO reputation \(msg, user_id, target_user_id\) VALUES \(\?, \?, \?\)`).
		WithArgs("well argued", int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(12, 1))

	rep, err := CreateReputation(db, userPrincipal(5), &Entities.Reputation{
		Msg:          strPtr("well argued"),
		TargetUserId: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), rep.Id)
	assert.Equal(t, int64(5), rep.UserId)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReputationRequiresAdmin(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, msg, user_id, target_user_id FROM reputation WHERE id = \?`).
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "msg", "user_id", "target_user_id"}).
			AddRow(12, "well argued", 5, 7))

	err := DeleteReputation(db, userPrincipal(5), 12)
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}
