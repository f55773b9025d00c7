package models

import (
	"time"
)

// ServiceRequest is a single ticket row. Status is stored as free text;
// the conventional values are "Open", "In Progress" and "Closed".
type ServiceRequest struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"       json:"id"`
	Title       string     `gorm:"size:100;not null"              json:"title"`
	Description string     `gorm:"type:text"                      json:"description"`
	Status      string     `gorm:"size:50;not null;index"         json:"status"`
	CreatedDate time.Time  `gorm:"not null;index"                 json:"createdDate"`
	CreatedBy   string     `gorm:"size:100;not null"              json:"createdBy"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
	UpdatedBy   string     `gorm:"size:100;not null;default:'System'" json:"updatedBy"`
}
