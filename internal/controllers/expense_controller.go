package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/models"
)

func ListExpenses(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := scopedList(c, config.DB.Model(&models.Expense{}), orgID).Find(&expenses).Error; err != nil {
		logger.AppLogger().WithError(err).Error("expenses: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func CreateExpense(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	var input struct {
		TripID       uint   `json:"tripId"`
		FuelAmount   *int   `json:"fuelAmount"`
		FuelCost     *int   `json:"fuelCost"`
		OtherExpense *int   `json:"otherExpense"`
		ExpenseNote  string `json:"expenseNote"`
		Date         string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	if input.TripID == 0 || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: tripId, date"})
		return
	}

	expense := models.Expense{
		OrganisationID: orgID,
		TripID:         input.TripID,
		FuelAmount:     clampNonNegative(input.FuelAmount),
		FuelCost:       clampNonNegative(input.FuelCost),
		OtherExpense:   clampNonNegative(input.OtherExpense),
		ExpenseNote:    strings.TrimSpace(input.ExpenseNote),
		Date:           strings.TrimSpace(input.Date),
	}

	if err := config.DB.Create(&expense).Error; err != nil {
		logger.AppLogger().WithError(err).Error("expenses: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense hard-deletes an expense within the caller's organisation.
func DeleteExpense(c *gin.Context) {
	orgID, ok := requireOrgID(c)
	if !ok {
		return
	}

	res := config.DB.Where("id = ? AND organisation_id = ?", c.Param("id"), orgID).Delete(&models.Expense{})
	if res.Error != nil {
		logger.AppLogger().WithError(res.Error).Error("expenses: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted", "id": c.Param("id")})
}
