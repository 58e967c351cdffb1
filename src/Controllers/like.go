package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetAllLikes(c *gin.Context, db *sqlx.DB) {
	likes, err := Services.GetAllLikes(db)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func GetCommentLikes(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	likes, err := Services.GetCommentLikes(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// CreateLike marks the comment as liked by the caller. Liking twice is a conflict.
func CreateLike(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	like, err := Services.CreateLike(db, principal, id)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "like")
	c.JSON(http.StatusCreated, like)
}

// DeleteLike removes the caller's own like from the comment.
func DeleteLike(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteLike(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "like")
	c.Status(http.StatusNoContent)
}
