package Router

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// RouteDefinition carries a human-readable description per registered route;
// the list is printed at startup as a living route table.
type RouteDefinition struct {
	Method     string
	Path       string
	Definition string
}

type CustomRouter struct {
	router      *gin.RouterGroup
	definitions []RouteDefinition
}

func NewCustomRouter(router *gin.RouterGroup) *CustomRouter {
	return &CustomRouter{
		router:      router,
		definitions: []RouteDefinition{},
	}
}

func (cr *CustomRouter) handle(method, relativePath, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	cr.definitions = append(cr.definitions, RouteDefinition{
		Method:     method,
		Path:       relativePath,
		Definition: definition,
	})
	return cr.router.Handle(method, relativePath, handlers...)
}

func (cr *CustomRouter) GET(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return cr.handle("GET", relativePath, definition, handlers...)
}

func (cr *CustomRouter) POST(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return cr.handle("POST", relativePath, definition, handlers...)
}

func (cr *CustomRouter) PATCH(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return cr.handle("PATCH", relativePath, definition, handlers...)
}

func (cr *CustomRouter) DELETE(relativePath string, definition string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return cr.handle("DELETE", relativePath, definition, handlers...)
}

func (cr *CustomRouter) PrintRoutes() {
	for _, def := range cr.definitions {
		fmt.Printf("%s - %s - %s\n", def.Path, def.Method, def.Definition)
	}
}
