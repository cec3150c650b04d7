package main

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
)

var tokenRE = regexp.MustCompile(`^[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}-[A-Z2-9]{4}$`)

func TestRechargeTokenFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok := newRechargeToken()
		if !tokenRE.MatchString(tok) {
			t.Fatalf("token %q does not match expected format", tok)
		}
		if seen[tok] {
			t.Fatalf("token %q repeated", tok)
		}
		seen[tok] = true
	}
}

func TestUnitsForDisplayRounding(t *testing.T) {
	// default tariff: 0.45 per unit
	if got := unitsFor(decimal.RequireFromString("20.00")); got != "44.4" {
		t.Fatalf("expected 44.4 units for 20.00, got %s", got)
	}
	if got := unitsFor(decimal.RequireFromString("9.00")); got != "20.0" {
		t.Fatalf("expected 20.0 units for 9.00, got %s", got)
	}
}

func TestSimulatedOutcomeOnlyEmitsKnownStatuses(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := simulatedOutcome()
		if s != "success" && s != "failed" {
			t.Fatalf("unexpected outcome %q", s)
		}
	}
	if realOutcome() != "success" {
		t.Fatal("real outcome must always succeed")
	}
}
