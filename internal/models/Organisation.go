package models

import "time"

// Organisation is a per-user membership row. The manager's row is the
// canonical tenant: its id is the organisation_id every resource is scoped
// by, and its access_code is what dispatchers join with. Dispatcher rows
// duplicate the manager's name and access_code so login can resolve tenancy.
type Organisation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name       string `json:"name"`
	AccessCode string `json:"access_code" gorm:"index"`
	UserID     uint   `json:"user_id" gorm:"uniqueIndex"`
	Role       string `json:"role"` // "manager" or "dispatcher"
}
