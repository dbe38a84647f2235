// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

type reservationService struct {
	reservations adapter.ReservationAPI
	media        adapter.MediaAPI
	campaigns    adapter.CampaignAPI
	businesses   adapter.BusinessAPI

	logger *logger.Logger
}

func NewReservationService(backend *adapter.BackendAdapters, log *logger.Logger) ReservationService {
	return &reservationService{
		reservations: backend.Reservation,
		media:        backend.Media,
		campaigns:    backend.Campaign,
		businesses:   backend.Business,
		logger:       log,
	}
}

// Reserve books mediaID for one of the session owner's campaigns.
//
// Returns:
//   - ErrValidation if the date range is empty or reversed, the campaign is
//     missing, or the media is not ACTIVE.
//   - ErrForbidden if the business does not advertise or the campaign
//     belongs to another business.
func (s *reservationService) Reserve(ctx context.Context, mediaID uuid.UUID, req models.ReservationRequest) (models.Reservation, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return models.Reservation{}, err
	}
	if !business.Advertiser {
		return models.Reservation{}, fmt.Errorf("%w: business is not an advertiser", ErrForbidden)
	}

	switch {
	case req.CampaignID == uuid.Nil:
		return models.Reservation{}, fmt.Errorf("%w: campaign is required", ErrValidation)
	case req.StartDate.IsZero() || req.EndDate.IsZero():
		return models.Reservation{}, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	case !req.EndDate.After(req.StartDate):
		return models.Reservation{}, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}

	campaign, err := s.campaigns.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return models.Reservation{}, upstreamError("get campaign", err)
	}
	if campaign.BusinessID != business.ID {
		return models.Reservation{}, fmt.Errorf("%w: campaign belongs to another business", ErrForbidden)
	}

	media, err := s.media.GetMediaByID(ctx, mediaID)
	if err != nil {
		return models.Reservation{}, upstreamError("get media", err)
	}
	if media.Status != models.MediaActive {
		return models.Reservation{}, fmt.Errorf("%w: media is not available for reservation", ErrValidation)
	}

	reservation, err := s.reservations.CreateReservation(ctx, mediaID, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("media_id", mediaID.String()).Msg("reservation failed")
		return models.Reservation{}, upstreamError("create reservation", err)
	}

	return reservation, nil
}

func (s *reservationService) Approve(ctx context.Context, id uuid.UUID) (models.Reservation, error) {
	return s.decide(ctx, id, s.reservations.ApproveReservation)
}

func (s *reservationService) Deny(ctx context.Context, id uuid.UUID) (models.Reservation, error) {
	return s.decide(ctx, id, s.reservations.DenyReservation)
}

// decide applies a decision to a PENDING reservation of the session
// owner's media.
func (s *reservationService) decide(ctx context.Context, id uuid.UUID,
	apply func(context.Context, uuid.UUID) (models.Reservation, error)) (models.Reservation, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return models.Reservation{}, err
	}

	reservations, err := s.reservations.GetReservationsByBusiness(ctx, business.ID)
	if err != nil {
		return models.Reservation{}, upstreamError("list business reservations", err)
	}

	var found *models.Reservation
	for i := range reservations {
		if reservations[i].ID == id {
			found = &reservations[i]
			break
		}
	}
	if found == nil {
		return models.Reservation{}, fmt.Errorf("%w: reservation is not on this business's media", ErrForbidden)
	}
	if found.Status != models.ReservationPending {
		return models.Reservation{}, fmt.Errorf("%w: reservation is already %s", ErrConflict, found.Status)
	}

	decided, err := apply(ctx, id)
	if err != nil {
		return models.Reservation{}, upstreamError("decide reservation", err)
	}

	logger.FromContext(ctx).Info().
		Str("reservation_id", id.String()).
		Str("status", string(decided.Status)).
		Msg("reservation decided")
	return decided, nil
}
