package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User model. WalletBalance is the stored-value balance usable as a payment
// method; every change to it goes through the guarded update in wallet.go so
// the ledger and the balance move together.
type User struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time      `gorm:"index"`
	Username       string          `gorm:"size:255;not null;unique"`
	HashedPassword []byte          `gorm:"not null"`
	WalletBalance  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Meters         []Meter
	RoleID         *uint `gorm:"index"`
	Role           Role  `gorm:"foreignKey:RoleID;references:ID"`
}
