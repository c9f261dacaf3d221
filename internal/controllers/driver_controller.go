package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/models"
)

var validDriverStatuses = []string{"active", "inactive", "suspended"}

func ListDrivers(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var drivers []models.Driver
	if err := scopedList(c, config.DB.Model(&models.Driver{}), orgID).Find(&drivers).Error; err != nil {
		logger.AppLogger().WithError(err).Error("drivers: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drivers"})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// CreateDriver adds a driver to the caller's organisation; status defaults
// to active.
func CreateDriver(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var input struct {
		Name          string `json:"name"`
		Phone         string `json:"phone"`
		LicenseNumber string `json:"licenseNumber"`
		LicenseExpiry string `json:"licenseExpiry"`
		Status        string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	if input.Name == "" || input.Phone == "" || input.LicenseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, phone, licenseNumber"})
		return
	}

	status := "active"
	if contains(validDriverStatuses, input.Status) {
		status = input.Status
	}

	driver := models.Driver{
		OrganisationID: orgID,
		Name:           strings.TrimSpace(input.Name),
		Phone:          strings.TrimSpace(input.Phone),
		LicenseNumber:  strings.TrimSpace(input.LicenseNumber),
		LicenseExpiry:  strings.TrimSpace(input.LicenseExpiry),
		Status:         status,
	}

	if err := config.DB.Create(&driver).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "A driver with this license number already exists in your organisation"})
			return
		}
		logger.AppLogger().WithError(err).Error("drivers: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver"})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

func UpdateDriverStatus(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !contains(validDriverStatuses, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be active, inactive, or suspended"})
		return
	}

	var driver models.Driver
	if err := config.DB.Where("id = ? AND organisation_id = ?", c.Param("id"), orgID).First(&driver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	driver.Status = body.Status
	if err := config.DB.Save(&driver).Error; err != nil {
		logger.AppLogger().WithError(err).Error("drivers: status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, driver)
}
