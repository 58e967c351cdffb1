package Services

import (
	"database/sql"
	"testing"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLike(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(3), 10)
	mock.ExpectExec("INSERT INTO `like` \\(user_id, comment_id\\) VALUES \\(\\?, \\?\\)").
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	like, err := CreateLike(db, userPrincipal(5), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), like.UserId)
	assert.Equal(t, int64(7), like.CommentId)

	require.NoError(t, mock.ExpectationsWereMet())
}

// The composite primary key turns a double like into a conflict.
func TestCreateLikeTwice(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(3), 10)
	mock.ExpectExec("INSERT INTO `like`").
		WithArgs(int64(5), int64(7)).
		WillReturnError(&mysql.MySQLError{Number: 1062})

	_, err := CreateLike(db, userPrincipal(5), 7)
	assert.IsType(t, &Errors.ItemAlreadyExists{}, err)
	assert.EqualError(t, err, "Comment is already liked")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLikeMissingComment(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, text, placed_at, user_id, topic_id, parent_comment_id FROM comment WHERE id = \?`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := CreateLike(db, userPrincipal(5), 42)
	assert.IsType(t, &Errors.ItemNotFound{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLikeOnlyTouchesOwnRow(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(3), 10)
	mock.ExpectExec("DELETE FROM `like` WHERE comment_id = \\? AND user_id = \\?").
		WithArgs(int64(7), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteLike(db, userPrincipal(5), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
