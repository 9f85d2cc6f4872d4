package domain

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Currency is the closed set of denominations the library supports.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	ARS Currency = "ARS"
)

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	ARS: "ARS$",
}

// ParseCurrency accepts only codes that are both valid ISO 4217 and
// members of the supported set.
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	c := Currency(unit.String())
	if _, ok := symbols[c]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCurrency, c)
	}

	return c, nil
}

func (c Currency) String() string {
	return string(c)
}

// Symbol returns the display prefix used by Money.String.
func (c Currency) Symbol() string {
	return symbols[c]
}
