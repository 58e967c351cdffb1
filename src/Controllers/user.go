package Controllers

import (
	"net/http"
	"time"

	"github.com/DF-Mephisto/Rest-Forum/src/Middlewares"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

func GetAllUsers(c *gin.Context, db *sqlx.DB) {
	users, err := Services.GetAllUsers(db)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	user, err := Services.GetUser(db, id)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// PatchUser applies a profile patch. When the caller edits their own account
// the response carries a fresh token, since the old one may name a stale
// username or a password that no longer works.
func PatchUser(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	var patch Services.UserProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	principal := Services.PrincipalFromContext(c)
	user, sameUser, err := Services.PatchUser(db, principal, id, &patch)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "patch", "user")

	if sameUser {
		accessToken, err := IssueToken(user, 24*time.Hour)
		if err != nil {
			fail(c, &Middlewares.AppError{Code: http.StatusInternalServerError, Message: "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user":         user,
			"access_token": accessToken,
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	if err := Services.DeleteUser(db, principal, id); err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "delete", "user")
	c.Status(http.StatusNoContent)
}

// LockUser flips the account's lock flag.
func LockUser(c *gin.Context, db *sqlx.DB) {
	id, ok := pathId(c)
	if !ok {
		return
	}

	principal := Services.PrincipalFromContext(c)
	user, err := Services.ToggleUserLock(db, principal, id)
	if err != nil {
		fail(c, err)
		return
	}

	Services.Audit(db, principal, "lock", "user")
	c.JSON(http.StatusOK, user)
}
