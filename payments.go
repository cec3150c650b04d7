package main

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"strings"
	"time"

	"meterpay/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// outcomeProvider decides whether a recharge attempt succeeds. The real
// path always succeeds; the simulated provider reproduces the mock
// backend's 90%-success behavior and is only wired in when
// RECHARGE_SIMULATE=1.
type outcomeProvider func() string

func realOutcome() string {
	return models.TxStatusSuccess
}

func simulatedOutcome() string {
	if mrand.Float64() < 0.9 {
		return models.TxStatusSuccess
	}
	return models.TxStatusFailed
}

// rechargeOutcome is selected at startup from the simulate flag.
var rechargeOutcome outcomeProvider = realOutcome

const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// newRechargeToken returns an opaque token of four dash-joined groups of
// four alphanumerics, e.g. "K3ZQ-7MHD-XW2A-9FRT".
func newRechargeToken() string {
	groups := make([]string, 4)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for g := range groups {
		var b strings.Builder
		for i := 0; i < 4; i++ {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				// crypto/rand failing means the process is in trouble anyway
				panic(err)
			}
			b.WriteByte(tokenAlphabet[n.Int64()])
		}
		groups[g] = b.String()
	}
	return strings.Join(groups, "-")
}

// unitsFor renders the kWh equivalent of a recharge amount at the configured
// tariff, rounded to one decimal for display. Not authoritative metering
// data.
func unitsFor(amount decimal.Decimal) string {
	return amount.Div(pricePerUnit).StringFixed(1)
}

// payDebt settles an outstanding debt for the user. All effects (wallet
// debit and ledger row when paying from the wallet, the debt_payment
// transaction row, the paid flag) commit or roll back together.
func payDebt(db *gorm.DB, userID, debtID uint, method string) (*models.Transaction, error) {
	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var debt models.Debt
		if err := tx.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
			return err
		}
		if debt.Paid {
			return ErrDebtAlreadyPaid
		}
		if method == models.PayMethodWallet {
			if _, err := debitWallet(tx, userID, debt.Amount, "debt payment "+debt.Category); err != nil {
				return err
			}
		}
		now := time.Now()
		t := models.Transaction{
			UserID:        userID,
			MeterNumber:   debt.MeterNumber,
			Amount:        debt.Amount,
			Total:         debt.Amount,
			Status:        models.TxStatusSuccess,
			PaymentMethod: method,
			Type:          models.TxTypeDebtPayment,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		if err := tx.Model(&debt).Updates(map[string]any{"paid": true, "paid_at": now}).Error; err != nil {
			return err
		}
		txn = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// createRecharge records a meter recharge. An unknown meter number is
// registered implicitly. The outcome is decided before any money moves:
// a failed (simulated) attempt is stored as a failed transaction with no
// wallet debit and no token, and is not an error.
func createRecharge(db *gorm.DB, userID uint, meterNumber string, amount decimal.Decimal, method string) (*models.Transaction, error) {
	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		meter := models.Meter{UserID: userID, MeterNumber: meterNumber}
		if err := tx.Where("user_id = ? AND meter_number = ?", userID, meterNumber).
			FirstOrCreate(&meter).Error; err != nil {
			return err
		}

		total := amount.Add(serviceFee)
		status := rechargeOutcome()
		if status == models.TxStatusSuccess && method == models.PayMethodWallet {
			if _, err := debitWallet(tx, userID, total, "recharge meter "+meterNumber); err != nil {
				return err
			}
		}

		t := models.Transaction{
			UserID:        userID,
			MeterNumber:   meterNumber,
			Amount:        amount,
			Fee:           serviceFee,
			Total:         total,
			Units:         unitsFor(amount),
			Status:        status,
			PaymentMethod: method,
			Type:          models.TxTypeRecharge,
		}
		if status == models.TxStatusSuccess {
			t.Token = newRechargeToken()
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		txn = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// topUpWallet credits the wallet and records a topup transaction.
func topUpWallet(db *gorm.DB, userID uint, amount decimal.Decimal, method string) (*models.Transaction, error) {
	var txn *models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := creditWallet(tx, userID, amount, "wallet top-up"); err != nil {
			return err
		}
		t := models.Transaction{
			UserID:        userID,
			Amount:        amount,
			Total:         amount,
			Status:        models.TxStatusSuccess,
			PaymentMethod: method,
			Type:          models.TxTypeTopup,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		txn = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
