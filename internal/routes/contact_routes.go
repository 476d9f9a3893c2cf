package routes

import (
	"github.com/gin-gonic/gin"

	"fleetdesk/internal/controllers"
)

func ContactRoutes(r *gin.Engine, deps Deps) {
	h := controllers.NewContactController(deps.ContactRecipient)
	r.POST("/api/contact", h.ComposeMessage)
}

func PageRoutes(r *gin.Engine) {
	r.GET("/about", controllers.ServePage("about"))
	r.GET("/privacy", controllers.ServePage("privacy"))
}

func ReportRoutes(r *gin.Engine, deps Deps) {
	h := controllers.NewReportController(deps.Store)
	r.GET("/reports/roster.xlsx", h.Roster)
}
