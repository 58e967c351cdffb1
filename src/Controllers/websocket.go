package Controllers

import (
	"encoding/json"
	"net/http"

	"github.com/DF-Mephisto/Rest-Forum/src/Middlewares"
	"github.com/DF-Mephisto/Rest-Forum/src/Services"
	"github.com/DF-Mephisto/Rest-Forum/src/Websockets"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// locationUpdate is what clients push over the socket when they navigate,
// e.g. {"page_type": "topic", "page_id": "42"}.
type locationUpdate struct {
	PageType string `json:"page_type"`
	PageId   string `json:"page_id"`
}

func HandleWebSocket(c *gin.Context) {
	principal := Services.PrincipalFromContext(c)
	if !principal.Authenticated() {
		_ = c.Error(&Middlewares.AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		c.Abort()
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &Websockets.Client{
		Hub:    Websockets.MainHub,
		Conn:   conn,
		Send:   make(chan interface{}, 256),
		UserID: principal.Id,
	}

	Websockets.MainHub.Register(client)
	Services.ActivityStorage.AddUser(principal.Id, principal.Username)

	// Read loop: keeps the connection alive, detects disconnects and feeds
	// location updates into the presence storage.
	go func() {
		defer func() {
			Websockets.MainHub.Unregister(client)
			Services.ActivityStorage.RemoveUser(principal.Id)
			conn.Close()
		}()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				break
			}

			var update locationUpdate
			if err := json.Unmarshal(message, &update); err != nil {
				continue
			}
			Services.ActivityStorage.UpdateUserLocation(principal.Id, update.PageType, update.PageId)
		}
	}()
}

// GetUsersOnPage reports who is currently viewing a given page,
// e.g. GET /activity/topic/42.
func GetUsersOnPage(c *gin.Context) {
	pageType := c.Param("type")
	pageId := c.Param("id")
	c.JSON(http.StatusOK, Services.ActivityStorage.GetUsersOnPage(pageType, pageId))
}

// GetActiveUsers lists everyone with an open presence connection.
func GetActiveUsers(c *gin.Context) {
	c.JSON(http.StatusOK, Services.ActivityStorage.GetActiveUsers())
}
