// README: Common money value object used across modules.
package types

import "github.com/shopspring/decimal"

const DefaultCurrency = "USD"

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// Cents builds a Money in the default currency from an amount in minor units.
func Cents(n int64) Money {
	return Money{Amount: decimal.New(n, -2), Currency: DefaultCurrency}
}

func (m Money) WithCurrency(currency string) Money {
	if currency == "" {
		return m
	}
	m.Currency = currency
	return m
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String renders the amount with two fraction digits and no currency symbol.
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}
