package Services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/frustra/bbcode"
	"github.com/jmoiron/sqlx"
)

type CommentPatch struct {
	Text *string `json:"text"`
}

var bbcodeCompiler = bbcode.NewCompiler(true, true)

// RenderCommentHtml fills TextHtml from the bbcode source text.
func RenderCommentHtml(comment *Entities.Comment) {
	comment.TextHtml = bbcodeCompiler.Compile(comment.Text)
}

func GetComments(db *sqlx.DB, page, pageSize int) ([]Entities.Comment, error) {
	query, args, err := commentSelect().
		OrderBy("placed_at ASC", "id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectComments(db, query, args...)
}

// GetTopicComments pages a topic's comment thread, newest first.
func GetTopicComments(db *sqlx.DB, topicId int64, page, pageSize int) ([]Entities.Comment, error) {
	if _, err := fetchTopic(db, topicId); err != nil {
		return nil, err
	}

	query, args, err := commentSelect().
		Where(sq.Eq{"topic_id": topicId}).
		OrderBy("placed_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}
	return selectComments(db, query, args...)
}

func GetComment(db *sqlx.DB, id int64) (*Entities.Comment, error) {
	var comment Entities.Comment
	err := db.Get(&comment,
		"SELECT id, text, placed_at, user_id, topic_id, parent_comment_id FROM comment WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, Errors.NotFound(fmt.Sprintf("Comment with id %d doesn't exist", id))
	}
	if err != nil {
		return nil, err
	}
	RenderCommentHtml(&comment)
	return &comment, nil
}

// CreateComment validates the thread hierarchy before inserting: the parent
// comment, when given, must exist and belong to the same topic, since
// comment threads are scoped per topic.
func CreateComment(db *sqlx.DB, p Principal, comment *Entities.Comment) (*Entities.Comment, error) {
	if err := CanMutate(p, ResourceComment, ActionCreate, nil); err != nil {
		return nil, err
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if _, err := fetchTopic(db, comment.TopicId); err != nil {
		return nil, err
	}

	if comment.ParentCommentId != nil {
		parent, err := GetComment(db, *comment.ParentCommentId)
		if err != nil {
			var notFound *Errors.ItemNotFound
			if errors.As(err, &notFound) {
				return nil, Errors.NotFound(fmt.Sprintf("Parent comment with id %d doesn't exist", *comment.ParentCommentId))
			}
			return nil, err
		}

		if parent.TopicId != comment.TopicId {
			return nil, Errors.NotFound("Invalid parent comment")
		}
	}

	res, err := db.Exec(
		"INSERT INTO comment (text, placed_at, user_id, topic_id, parent_comment_id) VALUES (?, NOW(), ?, ?, ?)",
		comment.Text, p.Id, comment.TopicId, comment.ParentCommentId)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return GetComment(db, id)
}

func PatchComment(db *sqlx.DB, p Principal, id int64, patch *CommentPatch) (*Entities.Comment, error) {
	comment, err := GetComment(db, id)
	if err != nil {
		return nil, err
	}

	if err := CanMutate(p, ResourceComment, ActionPatch, comment.UserId); err != nil {
		return nil, err
	}

	if patch.Text != nil {
		if strings.TrimSpace(*patch.Text) == "" {
			return nil, Errors.NotAllowed("Message mustn't be blank")
		}

		if utf8.RuneCountInString(*patch.Text) > 1000 {
			return nil, &Errors.ValidationFailed{Violations: []string{"Comment must be between 1 and 1000 in length"}}
		}

		comment.Text = *patch.Text
	}

	if _, err := db.Exec("UPDATE comment SET text = ? WHERE id = ?", comment.Text, id); err != nil {
		return nil, err
	}

	RenderCommentHtml(comment)
	return comment, nil
}

func DeleteComment(db *sqlx.DB, p Principal, id int64) error {
	comment, err := GetComment(db, id)
	if err != nil {
		return err
	}

	if err := CanMutate(p, ResourceComment, ActionDelete, comment.UserId); err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM comment WHERE id = ?", id)
	return err
}

func commentSelect() sq.SelectBuilder {
	return sq.Select("id", "text", "placed_at", "user_id", "topic_id", "parent_comment_id").From("comment")
}

func selectComments(db *sqlx.DB, query string, args ...interface{}) ([]Entities.Comment, error) {
	comments := make([]Entities.Comment, 0)
	if err := db.Select(&comments, query, args...); err != nil {
		return nil, err
	}
	for i := range comments {
		RenderCommentHtml(&comments[i])
	}
	return comments, nil
}
