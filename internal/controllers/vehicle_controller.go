package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/models"
)

var validVehicleTypes = []string{"Truck", "Van", "Bike"}
var validVehicleStatuses = []string{"Available", "On Trip", "In Shop", "Retired"}

// ListVehicles returns the caller's fleet, newest first.
func ListVehicles(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var vehicles []models.Vehicle
	if err := scopedList(c, config.DB.Model(&models.Vehicle{}), orgID).Find(&vehicles).Error; err != nil {
		logger.AppLogger().WithError(err).Error("vehicles: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle registers a vehicle in the caller's organisation; status
// defaults to Available and odometer to 0.
func CreateVehicle(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var input struct {
		Model        string `json:"model"`
		Plate        string `json:"plate"`
		Type         string `json:"type"`
		Capacity     *int   `json:"capacity"`
		Status       string `json:"status"`
		Odometer     *int   `json:"odometer"`
		PurchaseDate string `json:"purchaseDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	if input.Model == "" || input.Plate == "" || input.Type == "" || input.Capacity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: model, plate, type, capacity"})
		return
	}

	typeNorm := strings.TrimSpace(input.Type)
	if !contains(validVehicleTypes, typeNorm) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type. Must be Truck, Van, or Bike"})
		return
	}

	if *input.Capacity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity must be a non-negative number"})
		return
	}

	status := "Available"
	if contains(validVehicleStatuses, input.Status) {
		status = input.Status
	}

	vehicle := models.Vehicle{
		OrganisationID: orgID,
		Model:          strings.TrimSpace(input.Model),
		Plate:          strings.TrimSpace(input.Plate),
		Type:           typeNorm,
		CapacityKg:     *input.Capacity,
		Status:         status,
		OdometerKm:     clampNonNegative(input.Odometer),
		PurchaseDate:   strings.TrimSpace(input.PurchaseDate),
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A vehicle with this plate already exists in your fleet"})
			return
		}
		logger.AppLogger().WithError(err).Error("vehicles: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicleStatus patches a vehicle's status within the caller's
// organisation. Foreign ids come back 404, never a cross-tenant leak.
func UpdateVehicleStatus(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !contains(validVehicleStatuses, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be Available, On Trip, In Shop, or Retired"})
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND organisation_id = ?", c.Param("id"), orgID).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	vehicle.Status = body.Status
	if err := config.DB.Save(&vehicle).Error; err != nil {
		logger.AppLogger().WithError(err).Error("vehicles: status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func contains(valid []string, v string) bool {
	for _, s := range valid {
		if s == v {
			return true
		}
	}
	return false
}
