package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetSections(c *gin.Context, db *sqlx.DB) {
	sections, err := Services.GetSections(db, pageParam(c), Cfg.SectionsPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

func GetSection(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	section, err := Services.GetSection(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// GetSectionTopics returns the section's topics ranked by latest activity.
func GetSectionTopics(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	topics, err := Services.GetSectionTopics(db, id, pageParam(c), Cfg.TopicsPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

func CreateSection(c *gin.Context, db *sqlx.DB) {
	var section Entities.Section
	if err := c.ShouldBindJSON(&section); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateSection(db, principal, &section)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "section")
	c.JSON(http.StatusCreated, created)
}

func PatchSection(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	section, err := Services.PatchSection(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "section")
	c.JSON(http.StatusOK, section)
}

func DeleteSection(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteSection(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "section")
	c.Status(http.StatusNoContent)
}
