package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetAllTags(c *gin.Context, db *sqlx.DB) {
	tags, err := Services.GetAllTags(db)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, Services.PrincipalFromContext(c), "get", "tag")
	c.JSON(http.StatusOK, tags)
}

func GetTag(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	tag, err := Services.GetTag(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, Services.PrincipalFromContext(c), "get", "tag")
	c.JSON(http.StatusOK, tag)
}

func CreateTag(c *gin.Context, db *sqlx.DB) {
	var tag Entities.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateTag(db, principal, &tag)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "tag")
	c.JSON(http.StatusCreated, created)
}

func PatchTag(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.TagPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	tag, err := Services.PatchTag(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "tag")
	c.JSON(http.StatusOK, tag)
}

func DeleteTag(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteTag(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "tag")
	c.Status(http.StatusNoContent)
}
