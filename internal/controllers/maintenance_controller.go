package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/models"
)

var validMaintenanceStatuses = []string{"Scheduled", "In Progress", "Completed"}

func ListMaintenanceLogs(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var logs []models.MaintenanceLog
	if err := scopedList(c, config.DB.Model(&models.MaintenanceLog{}), orgID).Find(&logs).Error; err != nil {
		logger.AppLogger().WithError(err).Error("maintenance: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list maintenance logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateMaintenanceLog opens a service log and pulls the vehicle into the
// shop: its status becomes In Shop as long as the log is open.
func CreateMaintenanceLog(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var input struct {
		VehicleID   uint   `json:"vehicleId"`
		Issue       string `json:"issue"`
		ServiceDate string `json:"serviceDate"`
		Cost        *int   `json:"cost"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	if input.VehicleID == 0 || input.Issue == "" || input.ServiceDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: vehicleId, issue, serviceDate"})
		return
	}

	status := "Scheduled"
	if contains(validMaintenanceStatuses, input.Status) {
		status = input.Status
	}

	entry := models.MaintenanceLog{
		OrganisationID: orgID,
		VehicleID:      input.VehicleID,
		Issue:          strings.TrimSpace(input.Issue),
		ServiceDate:    strings.TrimSpace(input.ServiceDate),
		Cost:           clampNonNegative(input.Cost),
		Status:         status,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		logger.AppLogger().WithError(err).Error("maintenance: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance log"})
		return
	}

	err := config.DB.Model(&models.Vehicle{}).
		Where("id = ? AND organisation_id = ?", entry.VehicleID, orgID).
		Update("status", "In Shop").Error
	if err != nil {
		logger.AppLogger().WithError(err).Error("maintenance: vehicle In Shop update failed")
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateMaintenanceStatus patches a log's status. Completing a log releases
// the vehicle back to Available only when it was the vehicle's last open
// log; the check and the release run as one conditional UPDATE so two
// concurrent completions cannot double-release.
func UpdateMaintenanceStatus(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !contains(validMaintenanceStatuses, body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: Scheduled, In Progress, Completed"})
		return
	}

	var entry models.MaintenanceLog
	if err := config.DB.Where("id = ? AND organisation_id = ?", c.Param("id"), orgID).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance log not found"})
		return
	}

	entry.Status = body.Status
	if err := config.DB.Save(&entry).Error; err != nil {
		logger.AppLogger().WithError(err).Error("maintenance: status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance status"})
		return
	}

	if body.Status == "Completed" {
		err := config.DB.Exec(`
			UPDATE vehicles SET status = 'Available'
			WHERE id = ? AND organisation_id = ? AND status = 'In Shop'
			  AND NOT EXISTS (
				SELECT 1 FROM maintenance_logs
				WHERE vehicle_id = ? AND organisation_id = ?
				  AND status <> 'Completed' AND id <> ?
			  )`,
			entry.VehicleID, orgID, entry.VehicleID, orgID, entry.ID,
		).Error
		if err != nil {
			logger.AppLogger().WithError(err).Error("maintenance: vehicle release failed")
		}
	}

	c.JSON(http.StatusOK, entry)
}
