package models

import "time"

type Trip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrganisationID uint   `json:"-" gorm:"index"`
	VehicleID      uint   `json:"vehicleId"`
	DriverID       uint   `json:"driverId"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	Status         string `json:"status"` // Draft, Dispatched, Completed or Cancelled
	DepartureTime  string `json:"departureTime"`
	ETA            string `json:"eta" gorm:"column:eta"`
	CargoWeight    int    `json:"cargoWeight"`
	EstimatedCost  int    `json:"estimatedCost"`
}
