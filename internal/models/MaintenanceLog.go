package models

import "time"

type MaintenanceLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrganisationID uint   `json:"-" gorm:"index"`
	VehicleID      uint   `json:"vehicleId"`
	Issue          string `json:"issue"`
	ServiceDate    string `json:"serviceDate"`
	Cost           int    `json:"cost"`
	Status         string `json:"status"` // Scheduled, In Progress or Completed
}
