package models

import "time"

type Driver struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	OrganisationID uint   `json:"-" gorm:"index;uniqueIndex:idx_drivers_org_license"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	LicenseNumber  string `json:"licenseNumber" gorm:"uniqueIndex:idx_drivers_org_license"`
	LicenseExpiry  string `json:"licenseExpiry"`
	Status         string `json:"status"` // active, inactive or suspended
}
