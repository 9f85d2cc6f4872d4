package domain

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is an ordered collection of Money values. Duplicate currencies
// are allowed; lookup returns the first match in insertion order.
//
// A Wallet value shared between goroutines for mutation needs external
// synchronization; the values themselves are immutable.
type Wallet struct {
	ID    uuid.UUID
	Owner string
	Items []Money
}

func NewWallet(owner string) Wallet {
	return Wallet{
		ID:    uuid.New(),
		Owner: owner,
	}
}

// Add returns a wallet with m appended. The receiver is left untouched.
func (w Wallet) Add(m Money) Wallet {
	items := make([]Money, 0, len(w.Items)+1)
	items = append(items, w.Items...)
	items = append(items, m)

	w.Items = items
	return w
}

// FindByCurrency returns the first value held in c.
func (w Wallet) FindByCurrency(c Currency) (Money, error) {
	for _, m := range w.Items {
		if m.Currency == c {
			return m, nil
		}
	}

	return Money{}, fmt.Errorf("%w: %s", ErrCurrencyNotFound, c)
}

// Total sums every item held in c. A wallet holding none of them
// yields zero Money of that currency.
func (w Wallet) Total(c Currency) (Money, error) {
	total := Money{Amount: decimal.Zero, Currency: c}

	for _, m := range w.Items {
		if m.Currency != c {
			continue
		}

		var err error
		total, err = total.Add(m)
		if err != nil {
			return Money{}, fmt.Errorf("total.Add: %w", err)
		}
	}

	return total, nil
}
