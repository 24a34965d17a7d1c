package models

import (
	"strings"

	"golang.org/x/text/currency"
)

// Currency is an ISO 4217 currency code.
//
// Transactions and accounts store their currency independently. A mismatch
// between a transaction and its account is not validated, only the code
// itself is checked for being a known ISO 4217 unit.
type Currency string

// DefaultCurrency is used when a resource is created without a currency.
const DefaultCurrency Currency = "EUR"

func (c Currency) validate() (Currency, error) {
	if c == "" {
		return DefaultCurrency, nil
	}

	unit, err := currency.ParseISO(strings.TrimSpace(string(c)))
	if err != nil {
		return c, ErrCurrencyInvalid
	}

	return Currency(unit.String()), nil
}
