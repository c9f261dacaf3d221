package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func MaintenanceRoutes(r *gin.Engine) {
	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.RequireAuth())
	{
		maintenance.GET("", controllers.ListMaintenanceLogs)
		maintenance.POST("", controllers.CreateMaintenanceLog)
		maintenance.PATCH("/:id/status", controllers.UpdateMaintenanceStatus)
	}
}
