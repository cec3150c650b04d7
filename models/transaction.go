package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses.
const (
	TxStatusPending = "pending"
	TxStatusSuccess = "success"
	TxStatusFailed  = "failed"
)

// Transaction types.
const (
	TxTypeRecharge    = "recharge"
	TxTypeDebtPayment = "debt_payment"
	TxTypeTopup       = "topup"
)

// Payment methods.
const (
	PayMethodCard   = "card"
	PayMethodWallet = "wallet"
	PayMethodMobile = "mobile"
)

// Transaction is an immutable record of a recharge, debt payment or wallet
// top-up. Rows are append-only; status never changes after creation.
type Transaction struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	UserID        uint            `gorm:"index;not null"`
	MeterNumber   string          `gorm:"size:11;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Fee           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Units         string          `gorm:"size:32"` // display only, not metering data
	Status        string          `gorm:"size:16;not null"`
	PaymentMethod string          `gorm:"size:16;not null"`
	Token         string          `gorm:"size:64"` // successful recharges only
	Type          string          `gorm:"size:32;not null;index"`
}
