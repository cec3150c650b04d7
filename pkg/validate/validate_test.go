package validate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMeterNumber(t *testing.T) {
	if err := MeterNumber("12345678901"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []string{"", "1234567890", "123456789012", "1234567890a", "12345 78901"}
	for _, n := range bad {
		if err := MeterNumber(n); err == nil {
			t.Fatalf("expected error for %q", n)
		}
	}
}

func TestRechargeAmountBounds(t *testing.T) {
	for _, s := range []string{"5", "20.00", "1000"} {
		if err := RechargeAmount(decimal.RequireFromString(s)); err != nil {
			t.Fatalf("unexpected error for %s: %v", s, err)
		}
	}
	for _, s := range []string{"4.99", "0", "-10", "1000.01"} {
		if err := RechargeAmount(decimal.RequireFromString(s)); err == nil {
			t.Fatalf("expected error for %s", s)
		}
	}
}

func TestTopupAmount(t *testing.T) {
	if err := TopupAmount(decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{"0", "-5"} {
		if err := TopupAmount(decimal.RequireFromString(s)); err == nil {
			t.Fatalf("expected error for %s", s)
		}
	}
}

func TestClosedSets(t *testing.T) {
	for _, m := range []string{"card", "wallet", "mobile"} {
		if err := PaymentMethod(m); err != nil {
			t.Fatalf("unexpected error for %s: %v", m, err)
		}
	}
	if err := PaymentMethod("cash"); err == nil {
		t.Fatal("expected error for cash")
	}
	for _, c := range []string{"electricity", "water", "maintenance", "trash"} {
		if err := DebtCategory(c); err != nil {
			t.Fatalf("unexpected error for %s: %v", c, err)
		}
	}
	if err := DebtCategory("internet"); err == nil {
		t.Fatal("expected error for internet")
	}
}
