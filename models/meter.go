package models

import "time"

// Meter statuses.
const (
	MeterStatusActive   = "active"
	MeterStatusInactive = "inactive"
)

// Meter represents a prepaid utility meter registered to a user. The
// 11-digit meter number is the natural key; a meter is created explicitly
// via the add-meter endpoint or implicitly the first time an unknown number
// is recharged. Meters are never deleted.
type Meter struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       uint   `gorm:"index;not null;uniqueIndex:idx_user_meter"`
	MeterNumber  string `gorm:"size:11;not null;uniqueIndex:idx_user_meter"`
	Nickname     string `gorm:"size:255"`
	Address      string `gorm:"size:512"`
	CustomerName string `gorm:"size:255"`
	Type         string `gorm:"size:32;not null;default:STS"`
	Status       string `gorm:"size:16;not null;default:active"`
}
