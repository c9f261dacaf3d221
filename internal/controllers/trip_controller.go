package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/models"
)

var validTripStatuses = []string{"Draft", "Dispatched", "Completed", "Cancelled"}

func ListTrips(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var trips []models.Trip
	if err := scopedList(c, config.DB.Model(&models.Trip{}), orgID).Find(&trips).Error; err != nil {
		logger.AppLogger().WithError(err).Error("trips: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

// CreateTrip creates a trip in Draft, whatever status the client supplies.
// Numeric fields default to 0 and never go negative.
func CreateTrip(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var input struct {
		VehicleID     uint   `json:"vehicleId"`
		DriverID      uint   `json:"driverId"`
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		Status        string `json:"status"` // ignored, trips always start as Draft
		DepartureTime string `json:"departureTime"`
		ETA           string `json:"eta"`
		CargoWeight   *int   `json:"cargoWeight"`
		EstimatedCost *int   `json:"estimatedCost"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip input: " + err.Error()})
		return
	}

	if input.VehicleID == 0 || input.DriverID == 0 || input.Origin == "" || input.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: vehicleId, driverId, origin, destination"})
		return
	}

	trip := models.Trip{
		OrganisationID: orgID,
		VehicleID:      input.VehicleID,
		DriverID:       input.DriverID,
		Origin:         strings.TrimSpace(input.Origin),
		Destination:    strings.TrimSpace(input.Destination),
		Status:         "Draft",
		DepartureTime:  strings.TrimSpace(input.DepartureTime),
		ETA:            strings.TrimSpace(input.ETA),
		CargoWeight:    clampNonNegative(input.CargoWeight),
		EstimatedCost:  clampNonNegative(input.EstimatedCost),
	}

	if err := config.DB.Create(&trip).Error; err != nil {
		logger.AppLogger().WithError(err).Error("trips: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

func UpdateTripStatus(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !contains(validTripStatuses, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be Draft, Dispatched, Completed, or Cancelled"})
		return
	}

	var trip models.Trip
	if err := config.DB.Where("id = ? AND organisation_id = ?", c.Param("id"), orgID).First(&trip).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	trip.Status = body.Status
	if err := config.DB.Save(&trip).Error; err != nil {
		logger.AppLogger().WithError(err).Error("trips: status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip status"})
		return
	}

	c.JSON(http.StatusOK, trip)
}
