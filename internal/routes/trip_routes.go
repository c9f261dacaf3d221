package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func TripRoutes(r *gin.Engine) {
	trips := r.Group("/trips")
	trips.Use(middleware.RequireAuth())
	{
		trips.GET("", controllers.ListTrips)
		trips.POST("", controllers.CreateTrip)
		trips.PATCH("/:id/status", controllers.UpdateTripStatus)
	}
}
