// Package validate is the single home for the domain validation rules that
// every entry point shares: meter-number format, amount bounds, and the
// closed sets for payment methods and debt categories. Handlers must not
// restate these rules locally.
package validate

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var meterNumberRE = regexp.MustCompile(`^\d{11}$`)

// Recharge amount bounds, in currency units.
var (
	MinRecharge = decimal.NewFromInt(5)
	MaxRecharge = decimal.NewFromInt(1000)
)

var paymentMethods = map[string]bool{"card": true, "wallet": true, "mobile": true}

var debtCategories = map[string]bool{
	"electricity": true,
	"water":       true,
	"maintenance": true,
	"trash":       true,
}

// MeterNumber checks the 11-digit meter number format.
func MeterNumber(n string) error {
	if !meterNumberRE.MatchString(n) {
		return fmt.Errorf("meter number must be exactly 11 digits")
	}
	return nil
}

// RechargeAmount checks the recharge bounds [5, 1000].
func RechargeAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinRecharge) || amount.GreaterThan(MaxRecharge) {
		return fmt.Errorf("amount must be between %s and %s", MinRecharge, MaxRecharge)
	}
	return nil
}

// TopupAmount checks that a wallet deposit is strictly positive.
func TopupAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// PaymentMethod checks membership in {card, wallet, mobile}.
func PaymentMethod(m string) error {
	if !paymentMethods[m] {
		return fmt.Errorf("unknown payment method %q", m)
	}
	return nil
}

// DebtCategory checks membership in {electricity, water, maintenance, trash}.
func DebtCategory(c string) error {
	if !debtCategories[c] {
		return fmt.Errorf("unknown debt category %q", c)
	}
	return nil
}
