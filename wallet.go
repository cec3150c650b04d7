package main

import (
	"meterpay/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// debitWallet decrements the user's balance by amount and appends the
// matching ledger row, all against the passed-in transaction handle. The
// decrement is a single guarded UPDATE (balance >= amount in the WHERE
// clause), so concurrent debits cannot take the balance negative; zero rows
// affected means insufficient funds and nothing has been written.
func debitWallet(tx *gorm.DB, userID uint, amount decimal.Decimal, description string) (*models.WalletTransaction, error) {
	res := tx.Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", userID, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientFunds
	}
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, err
	}
	wt := models.WalletTransaction{
		UserID:       userID,
		Amount:       amount,
		Type:         models.WalletTxPayment,
		Description:  description,
		Reference:    uuid.NewString(),
		BalanceAfter: user.WalletBalance,
	}
	if err := tx.Create(&wt).Error; err != nil {
		return nil, err
	}
	return &wt, nil
}

// creditWallet increments the user's balance and appends a deposit ledger
// row in the same transaction.
func creditWallet(tx *gorm.DB, userID uint, amount decimal.Decimal, description string) (*models.WalletTransaction, error) {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, err
	}
	wt := models.WalletTransaction{
		UserID:       userID,
		Amount:       amount,
		Type:         models.WalletTxDeposit,
		Description:  description,
		Reference:    uuid.NewString(),
		BalanceAfter: user.WalletBalance,
	}
	if err := tx.Create(&wt).Error; err != nil {
		return nil, err
	}
	return &wt, nil
}
