package Controllers

import (
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Entities"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetAllRoles(c *gin.Context, db *sqlx.DB) {
	roles, err := Services.GetAllRoles(db)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, Services.PrincipalFromContext(c), "get", "role")
	c.JSON(http.StatusOK, roles)
}

func GetRole(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	role, err := Services.GetRole(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, Services.PrincipalFromContext(c), "get", "role")
	c.JSON(http.StatusOK, role)
}

func CreateRole(c *gin.Context, db *sqlx.DB) {
	var role Entities.Role
	if err := c.ShouldBindJSON(&role); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	created, err := Services.CreateRole(db, principal, &role)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "post", "role")
	c.JSON(http.StatusCreated, created)
}

func PatchRole(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.RolePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	role, err := Services.PatchRole(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "role")
	c.JSON(http.StatusOK, role)
}

func DeleteRole(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteRole(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "role")
	c.Status(http.StatusNoContent)
}
