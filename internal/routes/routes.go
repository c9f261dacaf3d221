package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/logger"
)

// SetupRouter wires every route group onto a fresh engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
	})

	AuthRoutes(r)
	VehicleRoutes(r)
	DriverRoutes(r)
	TripRoutes(r)
	MaintenanceRoutes(r)
	ExpenseRoutes(r)

	return r
}
