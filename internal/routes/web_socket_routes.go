package routes

import (
	"github.com/gin-gonic/gin"

	"fleetdesk/internal/controllers"
	"fleetdesk/internal/hub"
)

func WebSocketRoutes(r *gin.Engine, deps Deps) {
	h := controllers.NewEventController(deps.Hub)
	wsRoutes := r.Group("/ws")
	{
		wsRoutes.GET("/events", h.HandleEventsWebSocket)
	}
}

// publisher avoids handing controllers a typed nil *EventHub.
func publisher(deps Deps) hub.Publisher {
	if deps.Hub == nil {
		return nil
	}
	return deps.Hub
}
