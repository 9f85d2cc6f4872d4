package domain

import "errors"

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrUnknownCurrency  = errors.New("unknown currency")
)
