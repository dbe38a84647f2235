// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/MKhiriev/adspace/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name string
		in   models.Pageable
		want models.Pageable
	}{
		{name: "zero value", in: models.Pageable{}, want: models.Pageable{Page: 0, Size: DefaultPageSize}},
		{name: "negative page", in: models.Pageable{Page: -3, Size: 5}, want: models.Pageable{Page: 0, Size: 5}},
		{name: "oversized", in: models.Pageable{Page: 2, Size: 500}, want: models.Pageable{Page: 2, Size: MaxPageSize}},
		{name: "valid", in: models.Pageable{Page: 1, Size: 20}, want: models.Pageable{Page: 1, Size: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePage(tt.in))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 9, TotalPages(100, 12))
}
