package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.RequireAuth())
	{
		vehicles.GET("", controllers.ListVehicles)
		vehicles.POST("", controllers.CreateVehicle)
		vehicles.PATCH("/:id/status", controllers.UpdateVehicleStatus)
	}
}
