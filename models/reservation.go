// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationApproved  ReservationStatus = "APPROVED"
	ReservationDenied    ReservationStatus = "DENIED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

// Reservation books a media item for a campaign over a date range.
type Reservation struct {
	ID         uuid.UUID         `json:"id"`
	MediaID    uuid.UUID         `json:"mediaId"`
	CampaignID uuid.UUID         `json:"campaignId"`
	BusinessID uuid.UUID         `json:"businessId,omitempty"`
	StartDate  time.Time         `json:"startDate"`
	EndDate    time.Time         `json:"endDate"`
	Status     ReservationStatus `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
}

// ReservationRequest is the body of the reserve action.
type ReservationRequest struct {
	CampaignID uuid.UUID `json:"campaignId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}
