package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"fleetdesk/internal/hub"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the CORS middleware
	},
}

type EventController struct {
	Hub *hub.EventHub
}

func NewEventController(h *hub.EventHub) *EventController {
	return &EventController{Hub: h}
}

// HandleEventsWebSocket streams write events to the client until it disconnects.
// Messages from the client are read and discarded.
func (h *EventController) HandleEventsWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade to WebSocket")
		return
	}

	h.Hub.Register(conn)
	logrus.WithField("remote", conn.RemoteAddr().String()).Info("event subscriber connected")
	defer func() {
		h.Hub.Unregister(conn)
		logrus.WithField("remote", conn.RemoteAddr().String()).Info("event subscriber disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).Warn("event subscriber closed unexpectedly")
			}
			return
		}
	}
}
