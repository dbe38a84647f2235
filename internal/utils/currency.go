// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultCurrencyLocale = "en"
	DefaultCurrency       = "CAD"
)

// nbsp separates the amount from a trailing symbol.
const nbsp = "\u00a0"

// CurrencyOptions selects the locale and ISO 4217 currency used by
// FormatCurrency. Empty fields fall back to DefaultCurrencyLocale and
// DefaultCurrency; unparsable values fall back the same way.
type CurrencyOptions struct {
	Locale   string
	Currency string
}

// FormatCurrency renders amount as a localized currency string.
//
// The number uses the locale's separators and the currency's standard
// number of fraction digits. English places the symbol before the number,
// French after it, separated by a no-break space (U+00A0):
//
//	utils.FormatCurrency(10, utils.CurrencyOptions{Currency: "CAD"})             // "CA$10.00"
//	utils.FormatCurrency(10, utils.CurrencyOptions{Locale: "fr", Currency: "CAD"}) // "10,00\u00a0$CA"
func FormatCurrency(amount float64, opts CurrencyOptions) string {
	tag := parseLocale(opts.Locale)
	unit := parseCurrency(opts.Currency)
	p := message.NewPrinter(tag)

	scale, _ := currency.Standard.Rounding(unit)
	symbol := p.Sprint(currency.Symbol(unit))
	digits := p.Sprint(number.Decimal(math.Abs(amount), number.Scale(scale)))

	sign := ""
	if amount < 0 && math.Abs(amount) >= 0.5*math.Pow10(-scale) {
		sign = "-"
	}

	if symbolFollows(tag) {
		return sign + digits + nbsp + symbol
	}
	return sign + symbol + digits
}

func parseLocale(locale string) language.Tag {
	if locale == "" {
		locale = DefaultCurrencyLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Make(DefaultCurrencyLocale)
	}
	return tag
}

func parseCurrency(code string) currency.Unit {
	if code == "" {
		code = DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.MustParseISO(DefaultCurrency)
	}
	return unit
}

func symbolFollows(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "fr"
}
