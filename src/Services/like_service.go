package Services

import (
	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/jmoiron/sqlx"
)

func GetAllLikes(db *sqlx.DB) ([]Entities.Like, error) {
	likes := make([]Entities.Like, 0)
	err := db.Select(&likes, "SELECT user_id, comment_id FROM `like` ORDER BY comment_id, user_id")
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func GetCommentLikes(db *sqlx.DB, commentId int64) ([]Entities.Like, error) {
	if _, err := GetComment(db, commentId); err != nil {
		return nil, err
	}

	likes := make([]Entities.Like, 0)
	err := db.Select(&likes, "SELECT user_id, comment_id FROM `like` WHERE comment_id = ?", commentId)
	if err != nil {
		return nil, err
	}
	return likes, nil
}

// CreateLike inserts the principal's like for a comment. The composite
// primary key on (user_id, comment_id) is the authority against concurrent
// duplicates; its violation comes back as the same "already liked" outcome.
func CreateLike(db *sqlx.DB, p Principal, commentId int64) (*Entities.Like, error) {
	if err := CanMutate(p, ResourceLike, ActionCreate, nil); err != nil {
		return nil, err
	}

	if _, err := GetComment(db, commentId); err != nil {
		return nil, err
	}

	_, err := db.Exec("INSERT INTO `like` (user_id, comment_id) VALUES (?, ?)", p.Id, commentId)
	if IsDuplicateEntry(err) {
		return nil, Errors.AlreadyExists("Comment is already liked")
	}
	if err != nil {
		return nil, err
	}

	return &Entities.Like{UserId: p.Id, CommentId: commentId}, nil
}

// DeleteLike removes the principal's own like from a comment.
func DeleteLike(db *sqlx.DB, p Principal, commentId int64) error {
	if _, err := GetComment(db, commentId); err != nil {
		return err
	}

	if err := CanMutate(p, ResourceLike, ActionDelete, &p.Id); err != nil {
		return err
	}

	_, err := db.Exec("DELETE FROM `like` WHERE comment_id = ? AND user_id = ?", commentId, p.Id)
	return err
}
