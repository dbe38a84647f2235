// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

// GetReservationsByBusiness implements [ReservationAPI].
func (b *httpBackendAdapter) GetReservationsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	resp, err := b.request(ctx).
		SetPathParam("businessId", businessID.String()).
		SetResult(&reservations).
		Get("/media/reservations/business/{businessId}")
	if err = do("get business reservations", resp, err); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation implements [ReservationAPI].
func (b *httpBackendAdapter) CreateReservation(ctx context.Context, mediaID uuid.UUID, req models.ReservationRequest) (models.Reservation, error) {
	var created models.Reservation
	resp, err := b.jsonRequest(ctx, req).
		SetPathParam("mediaId", mediaID.String()).
		SetResult(&created).
		Post("/media/{mediaId}/reservations")
	if err = do("create reservation", resp, err); err != nil {
		return models.Reservation{}, err
	}
	return created, nil
}

// ApproveReservation implements [ReservationAPI].
func (b *httpBackendAdapter) ApproveReservation(ctx context.Context, id uuid.UUID) (models.Reservation, error) {
	return b.decideReservation(ctx, id, "approve")
}

// DenyReservation implements [ReservationAPI].
func (b *httpBackendAdapter) DenyReservation(ctx context.Context, id uuid.UUID) (models.Reservation, error) {
	return b.decideReservation(ctx, id, "deny")
}

func (b *httpBackendAdapter) decideReservation(ctx context.Context, id uuid.UUID, decision string) (models.Reservation, error) {
	var reservation models.Reservation
	resp, err := b.request(ctx).
		SetPathParams(map[string]string{"id": id.String(), "decision": decision}).
		SetResult(&reservation).
		Patch("/media/reservations/{id}/{decision}")
	if err = do(decision+" reservation", resp, err); err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}
