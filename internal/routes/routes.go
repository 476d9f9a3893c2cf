package routes

import (
	"github.com/gin-gonic/gin"

	"fleetdesk/internal/controllers"
	"fleetdesk/internal/hub"
	"fleetdesk/internal/logger"
	"fleetdesk/internal/middleware"
)

// Deps are the collaborators the router wires into controllers.
type Deps struct {
	Store            controllers.Store
	Hub              *hub.EventHub
	ContactRecipient string
	CORSOrigins      []string
}

// SetupRouter builds the gin engine with every route registered.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.EnableCORS(deps.CORSOrigins))

	r.GET("/health", controllers.Health)

	CompanyRoutes(r, deps)
	DriverRoutes(r, deps)
	ContactRoutes(r, deps)
	PageRoutes(r)
	ReportRoutes(r, deps)
	if deps.Hub != nil {
		WebSocketRoutes(r, deps)
	}

	return r
}
