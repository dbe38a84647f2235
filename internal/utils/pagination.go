// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/MKhiriev/adspace/models"

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// NormalizePage clamps p to a valid request: page is zero-based and never
// negative, size defaults to DefaultPageSize and never exceeds MaxPageSize.
func NormalizePage(p models.Pageable) models.Pageable {
	if p.Page < 0 {
		p.Page = 0
	}
	switch {
	case p.Size <= 0:
		p.Size = DefaultPageSize
	case p.Size > MaxPageSize:
		p.Size = MaxPageSize
	}
	return p
}

// TotalPages returns the number of pages needed to hold total elements.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
