package Services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"id", "text", "placed_at", "user_id", "topic_id", "parent_comment_id"}

func expectCommentById(mock sqlmock.Sqlmock, id int64, userId *int64, topicId int64) {
	mock.ExpectQuery(`SELECT id, text, placed_at, user_id, topic_id, parent_comment_id FROM comment WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(id, "[b]hello[/b]", time.Now(), userId, topicId, nil))
}

func expectTopicById(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery(`SELECT id, name, placed_at, views, user_id, section_id FROM topic WHERE id = \?`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "placed_at", "views", "user_id", "section_id"}).
			AddRow(id, "A topic", time.Now(), 0, 1, 1))
	expectEmptyTopicTags(mock)
}

func expectEmptyTopicTags(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT tt\.topic_id, t\.id, t\.name FROM topic_tag tt JOIN tag t ON t\.id = tt\.tag_id WHERE tt\.topic_id IN \(\?\)`).
		WillReturnRows(sqlmock.NewRows([]string{"topic_id", "id", "name"}))
}

func TestCreateCommentParentInAnotherTopic(t *testing.T) {
	db, mock := newMockDB(t)

	expectTopicById(mock, 10)
	// The parent lives in topic 99, not the requested topic 10.
	mock.ExpectQuery(`SELECT id, text, placed_at, user_id, topic_id, parent_comment_id FROM comment WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(7, "parent text", time.Now(), 3, 99, nil))

	_, err := CreateComment(db, userPrincipal(5), &Entities.Comment{
		Text:            "a reply",
		TopicId:         10,
		ParentCommentId: int64Ptr(7),
	})
	assert.IsType(t, &Errors.ItemNotFound{}, err)
	assert.EqualError(t, err, "Invalid parent comment")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentMissingParent(t *testing.T) {
	db, mock := newMockDB(t)

	expectTopicById(mock, 10)
	mock.ExpectQuery(`SELECT id, text, placed_at, user_id, topic_id, parent_comment_id FROM comment WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := CreateComment(db, userPrincipal(5), &Entities.Comment{
		Text:            "a reply",
		TopicId:         10,
		ParentCommentId: int64Ptr(7),
	})
	assert.IsType(t, &Errors.ItemNotFound{}, err)
	assert.EqualError(t, err, "Parent comment with id 7 doesn't exist")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentMissingTopic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, name, placed_at, views, user_id, section_id FROM topic WHERE id = \?`).
		WithArgs(int64(10)).
		WillReturnError(sql.ErrNoRows)

	_, err := CreateComment(db, userPrincipal(5), &Entities.Comment{
		Text:    "a reply",
		TopicId: 10,
	})
	assert.IsType(t, &Errors.ItemNotFound{}, err)
	assert.EqualError(t, err, "Topic with id 10 doesn't exist")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommentValidation(t *testing.T) {
	db, mock := newMockDB(t)

	_, err := CreateComment(db, userPrincipal(5), &Entities.Comment{})

	var validation *Errors.ValidationFailed
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Violations, "Message can't be empty")
	assert.Contains(t, validation.Violations, "Parent topic can't be null")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchCommentByStrangerDenied(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(3), 10)

	_, err := PatchComment(db, userPrincipal(5), 7, &CommentPatch{Text: strPtr("edited")})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A comment whose author account was removed has no owner anymore; only an
// admin may still touch it.
func TestPatchAnonymizedCommentAdminOnly(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, nil, 10)

	_, err := PatchComment(db, userPrincipal(5), 7, &CommentPatch{Text: strPtr("edited")})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchCommentBlankText(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(5), 10)

	_, err := PatchComment(db, userPrincipal(5), 7, &CommentPatch{Text: strPtr("  ")})
	assert.IsType(t, &Errors.ActionNotAllowed{}, err)
	assert.EqualError(t, err, "Message mustn't be blank")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchOwnComment(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(5), 10)
	mock.ExpectExec(`UPDATE comment SET text = \? WHERE id = \?`).
		WithArgs("edited", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	comment, err := PatchComment(db, userPrincipal(5), 7, &CommentPatch{Text: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Text)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentRendersBBCode(t *testing.T) {
	db, mock := newMockDB(t)

	expectCommentById(mock, 7, int64Ptr(5), 10)

	comment, err := GetComment(db, 7)
	require.NoError(t, err)
	assert.Equal(t, "<b>hello</b>", comment.TextHtml)

	require.NoError(t, mock.ExpectationsWereMet())
}
