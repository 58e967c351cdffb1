package Services

import (
	"github.com/DF-Mephisto/Rest-Forum/src/Entities"

	"github.com/gin-gonic/gin"
)

// Principal is the authenticated actor of a single request. It is passed
// explicitly into every policy and patch call; services never read it from
// ambient state.
type Principal struct {
	Id       int64
	Username string
	Role     string
}

func (p Principal) Authenticated() bool {
	return p.Id != 0
}

func (p Principal) IsAdmin() bool {
	return p.Role == Entities.AdminRoleName
}

// PrincipalFromContext builds the Principal from the claims the auth
// middleware stored in the gin context. A zero Principal means guest.
func PrincipalFromContext(c *gin.Context) Principal {
	var p Principal
	if id, exists := c.Get("user_id"); exists {
		p.Id, _ = id.(int64)
	}
	if name, exists := c.Get("username"); exists {
		p.Username, _ = name.(string)
	}
	if role, exists := c.Get("role"); exists {
		p.Role, _ = role.(string)
	}
	return p
}
