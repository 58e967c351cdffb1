package Entities

// Like is identified by its (user, comment) pair; the composite primary key
// in storage guarantees at most one like per pair.
type Like struct {
	UserId    int64 `json:"user_id" db:"user_id"`
	CommentId int64 `json:"comment_id" db:"comment_id"`
}
