package main

import (
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Tariff values are configuration, not literals: they come from env with the
// defaults the mobile/web clients were built against.
var (
	pricePerUnit = decimal.RequireFromString("0.45")
	serviceFee   = decimal.RequireFromString("0.50")
)

// simulateOutcomes enables the mock 90%-success recharge outcome. Off by
// default; the real payment path always succeeds once validation and the
// wallet debit pass.
var simulateOutcomes bool

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadConfig reads tariff and simulation settings from the environment.
// Call after the .env file has been loaded.
func loadConfig() {
	ppu := envOr("PRICE_PER_UNIT", "0.45")
	if d, err := decimal.NewFromString(ppu); err == nil && d.IsPositive() {
		pricePerUnit = d
	} else {
		logrus.Warnf("ignoring invalid PRICE_PER_UNIT %q", ppu)
	}
	fee := envOr("SERVICE_FEE", "0.50")
	if d, err := decimal.NewFromString(fee); err == nil && !d.IsNegative() {
		serviceFee = d
	} else {
		logrus.Warnf("ignoring invalid SERVICE_FEE %q", fee)
	}
	simulateOutcomes = os.Getenv("RECHARGE_SIMULATE") == "1"
}
