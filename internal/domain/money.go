package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount tagged with a currency. Operations never
// mutate the receiver; they return new values or an error.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney rejects NaN and infinite amounts; every failure is an
// error, never a panic.
func NewMoney(amount float64, c Currency) (Money, error) {
	if !isFinite(amount) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	return Money{
		Amount:   decimal.NewFromFloat(amount),
		Currency: c,
	}, nil
}

// MustMoney is for literals known to be finite; it panics otherwise.
func MustMoney(amount float64, c Currency) Money {
	m, err := NewMoney(amount, c)
	if err != nil {
		panic(err)
	}

	return m
}

// Ordering is the result of comparing two Money values.
type Ordering int

const (
	OrderingLess Ordering = iota - 1
	OrderingEqual
	OrderingGreater
	// OrderingIncomparable means the operands hold different currencies:
	// there is no order across currencies.
	OrderingIncomparable
)

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Mul(factor float64) (Money, error) {
	if !isFinite(factor) {
		return Money{}, fmt.Errorf("%w: factor %v", ErrInvalidAmount, factor)
	}

	return Money{Amount: m.Amount.Mul(decimal.NewFromFloat(factor)), Currency: m.Currency}, nil
}

// Mul is the scalar-first spelling of Money.Mul.
func Mul(factor float64, m Money) (Money, error) {
	return m.Mul(factor)
}

func (m Money) Div(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, m)
	}
	if !isFinite(divisor) {
		return Money{}, fmt.Errorf("%w: divisor %v", ErrInvalidAmount, divisor)
	}

	return Money{Amount: m.Amount.Div(decimal.NewFromFloat(divisor)), Currency: m.Currency}, nil
}

// Cmp orders same-currency values. Operands holding different
// currencies are not an error, they are simply not ordered.
func (m Money) Cmp(other Money) Ordering {
	if m.Currency != other.Currency {
		return OrderingIncomparable
	}

	return Ordering(m.Amount.Cmp(other.Amount))
}

// Equal reports whether both currency and amount match exactly,
// with no epsilon tolerance.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String renders the display symbol followed by the amount at exactly
// two decimal places, e.g. "$42.50".
func (m Money) String() string {
	return m.Currency.Symbol() + m.Amount.StringFixed(2)
}

// decimal.NewFromFloat panics on NaN and ±Inf, so they are rejected
// before any conversion.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
