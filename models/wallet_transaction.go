package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet ledger entry types.
const (
	WalletTxDeposit = "deposit"
	WalletTxPayment = "payment"
)

// WalletTransaction is an append-only ledger entry for the user's wallet.
// BalanceAfter records the balance the guarded update produced, in the same
// database transaction, so the ledger never drifts from the stored balance.
type WalletTransaction struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UserID       uint            `gorm:"index;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type         string          `gorm:"size:16;not null"`
	Description  string          `gorm:"size:255"`
	Reference    string          `gorm:"size:64;uniqueIndex"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}
