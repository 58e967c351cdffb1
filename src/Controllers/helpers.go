package Controllers

import (
	"net/http"
	"strconv"

	"github.com/DF-Mephisto/Rest-Forum/config"
	"github.com/DF-Mephisto/Rest-Forum/src/Middlewares"

	"github.com/gin-gonic/gin"
)

// Cfg holds page sizes and token settings; main assigns it at startup.
var Cfg = &config.AppConfig{
	SectionsPageSize: 10,
	TopicsPageSize:   10,
	CommentsPageSize: 10,
}

func pathId(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(&Middlewares.AppError{Code: http.StatusBadRequest, Message: "Invalid ID"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// fail records the error for the error middleware and stops the handler
// chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func badRequest(c *gin.Context, msg string) {
	fail(c, &Middlewares.AppError{Code: http.StatusBadRequest, Message: msg})
}
