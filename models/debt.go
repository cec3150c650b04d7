package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt categories.
const (
	DebtCategoryElectricity = "electricity"
	DebtCategoryWater       = "water"
	DebtCategoryMaintenance = "maintenance"
	DebtCategoryTrash       = "trash"
)

// Debt is an outstanding utility bill owed against a meter. It transitions
// pending -> paid exactly once and never reverses.
type Debt struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint            `gorm:"index;not null"`
	MeterNumber string          `gorm:"size:11;index;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category    string          `gorm:"size:32;not null"`
	DueDate     time.Time       `gorm:"index;not null"`
	Paid        bool            `gorm:"not null;default:false;index"`
	PaidAt      *time.Time
}
