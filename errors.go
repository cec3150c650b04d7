package main

import "errors"

// Domain errors surfaced by the payment flows. Handlers map these to HTTP
// status codes at the boundary; below the boundary they travel as plain
// sentinel errors.
var (
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrDebtAlreadyPaid   = errors.New("debt already paid")
)
