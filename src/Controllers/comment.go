package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetComments(c *gin.Context, db *sqlx.DB) {
	comments, err := Services.GetComments(db, pageParam(c), Cfg.CommentsPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func GetComment(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	comment, err := Services.GetComment(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func CreateComment(c *gin.Context, db *sqlx.DB) {
	var comment Entities.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateComment(db, principal, &comment)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "comment")
	c.JSON(http.StatusCreated, created)
}

func PatchComment(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.CommentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	comment, err := Services.PatchComment(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "comment")
	c.JSON(http.StatusOK, comment)
}

func DeleteComment(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteComment(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "comment")
	c.Status(http.StatusNoContent)
}
