package routes

import (
	"github.com/gin-gonic/gin"

	"fleetdesk/internal/controllers"
)

func DriverRoutes(r *gin.Engine, deps Deps) {
	h := controllers.NewDriverController(deps.Store, publisher(deps))
	drivers := r.Group("/api/drivers")
	{
		drivers.GET("", h.ListDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)
	}
}
