package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetAllReputations(c *gin.Context, db *sqlx.DB) {
	reps, err := Services.GetAllReputations(db)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reps)
}

func GetReputation(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	rep, err := Services.GetReputation(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func CreateReputation(c *gin.Context, db *sqlx.DB) {
	var rep Entities.Reputation
	if err := c.ShouldBindJSON(&rep); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateReputation(db, principal, &rep)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "reputation")
	c.JSON(http.StatusCreated, created)
}

func DeleteReputation(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteReputation(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "reputation")
	c.Status(http.StatusNoContent)
}
