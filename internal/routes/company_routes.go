package routes

import (
	"github.com/gin-gonic/gin"

	"fleetdesk/internal/controllers"
)

func CompanyRoutes(r *gin.Engine, deps Deps) {
	h := controllers.NewCompanyController(deps.Store, publisher(deps))
	companies := r.Group("/api/companies")
	{
		companies.GET("", h.ListCompanies)
		companies.POST("", h.CreateCompany)
		companies.PUT("/:id", h.UpdateCompany)
		companies.DELETE("/:id", h.DeleteCompany)
	}
}
