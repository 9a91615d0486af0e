// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Currency is one of the fixed set of trip currencies.
type Currency string

// Supported trip currencies. HKD is the base currency of the ledger.
const (
	CurrencyAED Currency = "AED"
	CurrencyOMR Currency = "OMR"
	CurrencyHKD Currency = "HKD"
)

// BaseCurrency is the currency all ledger totals are converted into.
const BaseCurrency = CurrencyHKD

// ExchangeRates maps each supported currency to its value in the base
// currency. The rates are fixed for the duration of the trip.
var ExchangeRates = map[Currency]float64{
	CurrencyAED: 2.12,
	CurrencyOMR: 20.26,
	CurrencyHKD: 1.00,
}

// BudgetCategories is the suggested set of expense categories. The category
// field itself is free text; these are offered as defaults in the UI.
var BudgetCategories = []string{"Food", "Transport", "Stay", "Shopping"}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	_, ok := ExchangeRates[c]
	return ok
}

// BudgetEntry is a single expense in the multi-currency ledger.
// Entries are immutable once created except for deletion.
type BudgetEntry struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Currency    Currency  `json:"currency"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"date"`
}

// BaseAmount returns the entry's amount converted into the base currency.
func (e BudgetEntry) BaseAmount() float64 {
	return e.Amount * ExchangeRates[e.Currency]
}
