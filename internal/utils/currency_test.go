// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency_DefaultLocaleCAD(t *testing.T) {
	assert.Contains(t, FormatCurrency(10, CurrencyOptions{Currency: "CAD"}), "CA$10.00")
}

func TestFormatCurrency_Defaults(t *testing.T) {
	assert.Equal(t,
		FormatCurrency(10, CurrencyOptions{Locale: "en", Currency: "CAD"}),
		FormatCurrency(10, CurrencyOptions{}),
	)
}

func TestFormatCurrency_English(t *testing.T) {
	assert.Equal(t, "CA$1,234.50", FormatCurrency(1234.5, CurrencyOptions{Locale: "en", Currency: "CAD"}))
	assert.Equal(t, "-CA$5.25", FormatCurrency(-5.25, CurrencyOptions{Locale: "en", Currency: "CAD"}))
}

func TestFormatCurrency_FrenchSymbolFollows(t *testing.T) {
	assert.Equal(t, "10,00\u00a0$CA", FormatCurrency(10, CurrencyOptions{Locale: "fr", Currency: "CAD"}))

	got := FormatCurrency(1234.5, CurrencyOptions{Locale: "fr", Currency: "CAD"})
	assert.True(t, strings.HasSuffix(got, "234,50\u00a0$CA"), "got %q", got)
}

func TestFormatCurrency_ZeroFractionCurrency(t *testing.T) {
	got := FormatCurrency(500, CurrencyOptions{Locale: "en", Currency: "JPY"})

	assert.Contains(t, got, "500")
	assert.NotContains(t, got, ".")
}

func TestFormatCurrency_InvalidInputsFallBack(t *testing.T) {
	got := FormatCurrency(10, CurrencyOptions{Locale: "not a locale!", Currency: "???"})
	assert.Contains(t, got, "CA$10.00")
}
