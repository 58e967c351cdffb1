package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetTopics(c *gin.Context, db *sqlx.DB) {
	topics, err := Services.GetTopics(db, pageParam(c), Cfg.TopicsPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

// GetTopic bumps the view counter as a side effect of the read.
func GetTopic(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	topic, err := Services.GetTopic(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

func GetTopicComments(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	comments, err := Services.GetTopicComments(db, id, pageParam(c), Cfg.CommentsPageSize)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func CreateTopic(c *gin.Context, db *sqlx.DB) {
	var topic Entities.Topic
	if err := c.ShouldBindJSON(&topic); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateTopic(db, principal, &topic)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "topic")
	c.JSON(http.StatusCreated, created)
}

func PatchTopic(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.TopicPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	topic, err := Services.PatchTopic(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "topic")
	c.JSON(http.StatusOK, topic)
}

func DeleteTopic(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteTopic(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "topic")
	c.Status(http.StatusNoContent)
}
