package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// GetLogs exposes the audit trail. Admin only.
func GetLogs(c *gin.Context, db *sqlx.DB) {
	principal := Services.PrincipalFromContext(c)
	logs, err := Services.GetLogs(db, principal)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
