package models

import "time"

type Vehicle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrganisationID uint   `json:"-" gorm:"index;uniqueIndex:idx_vehicles_org_plate"`
	Model          string `json:"model"`
	Plate          string `json:"plate" gorm:"uniqueIndex:idx_vehicles_org_plate"`
	Type           string `json:"type"` // Truck, Van or Bike
	CapacityKg     int    `json:"capacity" gorm:"column:capacity_kg"`
	Status         string `json:"status"` // Available, On Trip, In Shop or Retired
	OdometerKm     int    `json:"odometer" gorm:"column:odometer_km"`
	PurchaseDate   string `json:"purchaseDate" gorm:"column:purchase_date"`
}
