package main

import (
	"log"
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/config"
	"github.com/DF-Mephisto/Rest-Forum/src/Controllers"
	"github.com/DF-Mephisto/Rest-Forum/src/Install"
	"github.com/DF-Mephisto/Rest-Forum/src/Middlewares"
	"github.com/DF-Mephisto/Rest-Forum/src/Router"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"
	"github.com/DF-Mephisto/Rest-Forum/src/Websockets"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadAppConfig("forum.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	Controllers.Cfg = cfg
	Middlewares.SetJwtKey(cfg.JwtSecret)

	Services.InitDB()
	Services.RegisterEventHandlers(Services.DB)

	// Start WebSocket Hub
	go Websockets.MainHub.Run()

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// Apply error middleware globally
	r.Use(Middlewares.ErrorMiddleware())

	// Public routes
	publicRouter := Router.NewCustomRouter(r.Group("/"))

	publicRouter.POST("/register", "Register a new user account", func(c *gin.Context) {
		Controllers.Register(c, Services.DB)
	})
	publicRouter.POST("/login", "Login with user credentials", func(c *gin.Context) {
		Controllers.Login(c, Services.DB)
	})
	publicRouter.POST("/refresh", "Exchange a refresh token for a new access token", func(c *gin.Context) {
		Controllers.RefreshToken(c, Services.DB)
	})
	publicRouter.GET("/ping", "Health check endpoint", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	publicRouter.GET("/install", "Install default database tables", func(c *gin.Context) {
		if err := Install.ExecuteSQLFile(Services.DB, "./src/Install/default_tables.sql"); err != nil {
			log.Println(err.Error())
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	// Optional auth routes: the Principal is populated when a token is
	// present, otherwise these serve guests.
	optionalAuthGroup := r.Group("/")
	optionalAuthGroup.Use(Middlewares.OptionalAuthMiddleware())
	optionalAuthRouter := Router.NewCustomRouter(optionalAuthGroup)

	optionalAuthRouter.GET("/sections", "Get sections by page", func(c *gin.Context) {
		Controllers.GetSections(c, Services.DB)
	})
	optionalAuthRouter.GET("/sections/:id", "Get section by ID", func(c *gin.Context) {
		Controllers.GetSection(c, Services.DB)
	})
	optionalAuthRouter.GET("/sections/:id/topics", "Get section topics ranked by latest activity", func(c *gin.Context) {
		Controllers.GetSectionTopics(c, Services.DB)
	})
	optionalAuthRouter.GET("/topics", "Get topics by page", func(c *gin.Context) {
		Controllers.GetTopics(c, Services.DB)
	})
	optionalAuthRouter.GET("/topics/:id", "Get topic by ID and count the view", func(c *gin.Context) {
		Controllers.GetTopic(c, Services.DB)
	})
	optionalAuthRouter.GET("/topics/:id/comments", "Get topic comments by page", func(c *gin.Context) {
		Controllers.GetTopicComments(c, Services.DB)
	})
	optionalAuthRouter.GET("/comments", "Get comments by page", func(c *gin.Context) {
		Controllers.GetComments(c, Services.DB)
	})
	optionalAuthRouter.GET("/comments/:id", "Get comment by ID", func(c *gin.Context) {
		Controllers.GetComment(c, Services.DB)
	})
	optionalAuthRouter.GET("/comments/:id/likes", "Get likes of a comment", func(c *gin.Context) {
		Controllers.GetCommentLikes(c, Services.DB)
	})
	optionalAuthRouter.GET("/likes", "Get all likes", func(c *gin.Context) {
		Controllers.GetAllLikes(c, Services.DB)
	})
	optionalAuthRouter.GET("/reputations", "Get all reputation entries", func(c *gin.Context) {
		Controllers.GetAllReputations(c, Services.DB)
	})
	optionalAuthRouter.GET("/reputations/:id", "Get reputation entry by ID", func(c *gin.Context) {
		Controllers.GetReputation(c, Services.DB)
	})
	optionalAuthRouter.GET("/role", "Get all roles", func(c *gin.Context) {
		Controllers.GetAllRoles(c, Services.DB)
	})
	optionalAuthRouter.GET("/role/:id", "Get role by ID", func(c *gin.Context) {
		Controllers.GetRole(c, Services.DB)
	})
	optionalAuthRouter.GET("/tag", "Get all tags", func(c *gin.Context) {
		Controllers.GetAllTags(c, Services.DB)
	})
	optionalAuthRouter.GET("/tag/:id", "Get tag by ID", func(c *gin.Context) {
		Controllers.GetTag(c, Services.DB)
	})
	optionalAuthRouter.GET("/user", "Get all users", func(c *gin.Context) {
		Controllers.GetAllUsers(c, Services.DB)
	})
	optionalAuthRouter.GET("/user/:id", "Get user by ID", func(c *gin.Context) {
		Controllers.GetUser(c, Services.DB)
	})
	optionalAuthRouter.GET("/activity/:type/:id", "Get users viewing a page", func(c *gin.Context) {
		Controllers.GetUsersOnPage(c)
	})

	// Protected routes
	protectedGroup := r.Group("/")
	protectedGroup.Use(Middlewares.AuthMiddleware())
	protectedRouter := Router.NewCustomRouter(protectedGroup)

	protectedRouter.POST("/role", "Create a new role", func(c *gin.Context) {
		Controllers.CreateRole(c, Services.DB)
	})
	protectedRouter.PATCH("/role/:id", "Update role by ID", func(c *gin.Context) {
		Controllers.PatchRole(c, Services.DB)
	})
	protectedRouter.DELETE("/role/:id", "Delete role by ID", func(c *gin.Context) {
		Controllers.DeleteRole(c, Services.DB)
	})

	protectedRouter.POST("/tag", "Create a new tag", func(c *gin.Context) {
		Controllers.CreateTag(c, Services.DB)
	})
	protectedRouter.PATCH("/tag/:id", "Update tag by ID", func(c *gin.Context) {
		Controllers.PatchTag(c, Services.DB)
	})
	protectedRouter.DELETE("/tag/:id", "Delete tag by ID", func(c *gin.Context) {
		Controllers.DeleteTag(c, Services.DB)
	})

	protectedRouter.POST("/sections", "Create a new section", func(c *gin.Context) {
		Controllers.CreateSection(c, Services.DB)
	})
	protectedRouter.PATCH("/sections/:id", "Update section by ID", func(c *gin.Context) {
		Controllers.PatchSection(c, Services.DB)
	})
	protectedRouter.DELETE("/sections/:id", "Delete section by ID", func(c *gin.Context) {
		Controllers.DeleteSection(c, Services.DB)
	})

	protectedRouter.POST("/topics", "Create a new topic", func(c *gin.Context) {
		Controllers.CreateTopic(c, Services.DB)
	})
	protectedRouter.PATCH("/topics/:id", "Update topic by ID", func(c *gin.Context) {
		Controllers.PatchTopic(c, Services.DB)
	})
	protectedRouter.DELETE("/topics/:id", "Delete topic by ID", func(c *gin.Context) {
		Controllers.DeleteTopic(c, Services.DB)
	})

	protectedRouter.POST("/comments", "Create a new comment", func(c *gin.Context) {
		Controllers.CreateComment(c, Services.DB)
	})
	protectedRouter.PATCH("/comments/:id", "Update comment by ID", func(c *gin.Context) {
		Controllers.PatchComment(c, Services.DB)
	})
	protectedRouter.DELETE("/comments/:id", "Delete comment by ID", func(c *gin.Context) {
		Controllers.DeleteComment(c, Services.DB)
	})
	protectedRouter.POST("/comments/:id/likes", "Like a comment", func(c *gin.Context) {
		Controllers.CreateLike(c, Services.DB)
	})
	protectedRouter.DELETE("/comments/:id/likes", "Remove own like from a comment", func(c *gin.Context) {
		Controllers.DeleteLike(c, Services.DB)
	})

	protectedRouter.POST("/reputations", "Increase another user's reputation", func(c *gin.Context) {
		Controllers.CreateReputation(c, Services.DB)
	})
	protectedRouter.DELETE("/reputations/:id", "Delete a reputation entry", func(c *gin.Context) {
		Controllers.DeleteReputation(c, Services.DB)
	})

	protectedRouter.PATCH("/user/:id", "Update user profile by ID", func(c *gin.Context) {
		Controllers.PatchUser(c, Services.DB)
	})
	protectedRouter.DELETE("/user/:id", "Delete user by ID", func(c *gin.Context) {
		Controllers.DeleteUser(c, Services.DB)
	})
	protectedRouter.POST("/user/:id/lock", "Toggle a user's account lock", func(c *gin.Context) {
		Controllers.LockUser(c, Services.DB)
	})

	protectedRouter.GET("/log", "Get the audit log", func(c *gin.Context) {
		Controllers.GetLogs(c, Services.DB)
	})
	protectedRouter.GET("/active-users", "Get users with an open presence connection", func(c *gin.Context) {
		Controllers.GetActiveUsers(c)
	})

	// WebSocket: browsers can't set Authorization headers on upgrades, so
	// this one authenticates via the token query parameter.
	wsGroup := r.Group("/")
	wsGroup.Use(Middlewares.WebSocketAuthMiddleware())
	wsRouter := Router.NewCustomRouter(wsGroup)
	wsRouter.GET("/ws", "WebSocket presence endpoint", func(c *gin.Context) {
		Controllers.HandleWebSocket(c)
	})

	publicRouter.PrintRoutes()
	optionalAuthRouter.PrintRoutes()
	protectedRouter.PrintRoutes()
	wsRouter.PrintRoutes()

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
