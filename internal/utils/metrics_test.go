// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/MKhiriev/adspace/models"
	"github.com/stretchr/testify/assert"
)

func TestReservationMetrics(t *testing.T) {
	stats := ReservationMetrics([]models.Reservation{
		{Status: models.ReservationApproved, TotalPrice: 100},
		{Status: models.ReservationApproved, TotalPrice: 50.5},
		{Status: models.ReservationDenied, TotalPrice: 70},
		{Status: models.ReservationPending, TotalPrice: 10},
		{Status: models.ReservationCancelled, TotalPrice: 20},
	})

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Denied)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Cancelled)
	assert.InDelta(t, 150.5, stats.ApprovedRevenue, 1e-9)
	assert.InDelta(t, 2.0/3.0, stats.ApprovalRate, 1e-9)
}

func TestReservationMetrics_Empty(t *testing.T) {
	assert.Equal(t, models.ReservationStats{}, ReservationMetrics(nil))
}
