// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReservationStats summarizes the reservations of a business for its
// dashboard.
type ReservationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Denied    int `json:"denied"`
	Cancelled int `json:"cancelled"`

	// ApprovedRevenue sums TotalPrice over approved reservations.
	ApprovedRevenue float64 `json:"approvedRevenue"`

	// ApprovalRate is approved / (approved + denied), 0 when nothing was decided.
	ApprovalRate float64 `json:"approvalRate"`
}

// BrowseData is what the browse page renders.
type BrowseData struct {
	Media     Page[Media]     `json:"media"`
	Locations []MediaLocation `json:"locations"`
}

// DashboardData is what the business dashboard renders.
type DashboardData struct {
	Business     Business         `json:"business"`
	Media        []Media          `json:"media"`
	Reservations []Reservation    `json:"reservations"`
	Campaigns    []AdCampaign     `json:"campaigns"`
	Metrics      ReservationStats `json:"metrics"`
}
