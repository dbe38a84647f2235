// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/MKhiriev/adspace/models"

// ReservationMetrics counts reservations per status and derives the
// approved revenue and approval rate.
func ReservationMetrics(reservations []models.Reservation) models.ReservationStats {
	var stats models.ReservationStats
	for _, r := range reservations {
		stats.Total++
		switch r.Status {
		case models.ReservationPending:
			stats.Pending++
		case models.ReservationApproved:
			stats.Approved++
			stats.ApprovedRevenue += r.TotalPrice
		case models.ReservationDenied:
			stats.Denied++
		case models.ReservationCancelled:
			stats.Cancelled++
		}
	}

	if decided := stats.Approved + stats.Denied; decided > 0 {
		stats.ApprovalRate = float64(stats.Approved) / float64(decided)
	}
	return stats
}
