package models

import "time"

type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrganisationID uint   `json:"-" gorm:"index"`
	TripID         uint   `json:"tripId"`
	FuelAmount     int    `json:"fuelAmount"`
	FuelCost       int    `json:"fuelCost"`
	OtherExpense   int    `json:"otherExpense"`
	ExpenseNote    string `json:"expenseNote"`
	Date           string `json:"date"`
}
