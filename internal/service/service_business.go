// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type businessService struct {
	businesses   adapter.BusinessAPI
	media        adapter.MediaAPI
	reservations adapter.ReservationAPI
	campaigns    adapter.CampaignAPI

	logger *logger.Logger
}

func NewBusinessService(backend *adapter.BackendAdapters, log *logger.Logger) BusinessService {
	return &businessService{
		businesses:   backend.Business,
		media:        backend.Media,
		reservations: backend.Reservation,
		campaigns:    backend.Campaign,
		logger:       log,
	}
}

// RegisterBusiness registers business on behalf of the session owner. The
// new business awaits verification.
func (s *businessService) RegisterBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	session, err := requireSession(ctx)
	if err != nil {
		return models.Business{}, err
	}

	business.Name = strings.TrimSpace(business.Name)
	switch {
	case business.Name == "":
		return models.Business{}, fmt.Errorf("%w: name is required", ErrValidation)
	case !business.Size.IsValid():
		return models.Business{}, fmt.Errorf("%w: unknown business size %q", ErrValidation, business.Size)
	case !business.Advertiser && !business.MediaOwner:
		return models.Business{}, fmt.Errorf("%w: business must advertise or own media", ErrValidation)
	}

	business.ID = uuid.Nil
	business.OwnerID = session.Subject
	business.VerificationStatus = models.VerificationPending

	created, err := s.businesses.CreateBusiness(ctx, business)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner", session.Subject).Msg("business registration failed")
		return models.Business{}, upstreamError("create business", err)
	}

	return created, nil
}

func (s *businessService) OwnBusiness(ctx context.Context) (models.Business, error) {
	return ownBusiness(ctx, s.businesses)
}

// Dashboard loads the business of the session owner and then its media,
// reservations and campaigns concurrently.
func (s *businessService) Dashboard(ctx context.Context) (models.DashboardData, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return models.DashboardData{}, err
	}

	data := models.DashboardData{Business: business}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		media, err := s.media.GetMediaByBusiness(gctx, business.ID)
		if err != nil {
			return upstreamError("list business media", err)
		}
		data.Media = media
		return nil
	})
	g.Go(func() error {
		reservations, err := s.reservations.GetReservationsByBusiness(gctx, business.ID)
		if err != nil {
			return upstreamError("list business reservations", err)
		}
		data.Reservations = reservations
		return nil
	})
	g.Go(func() error {
		campaigns, err := s.campaigns.GetCampaignsByBusiness(gctx, business.ID)
		if err != nil {
			return upstreamError("list business campaigns", err)
		}
		data.Campaigns = campaigns
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("business_id", business.ID.String()).Msg("dashboard loading failed")
		return models.DashboardData{}, err
	}

	data.Metrics = utils.ReservationMetrics(data.Reservations)
	return data, nil
}

func (s *businessService) OwnMedia(ctx context.Context) ([]models.Media, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return nil, err
	}

	media, err := s.media.GetMediaByBusiness(ctx, business.ID)
	if err != nil {
		return nil, upstreamError("list business media", err)
	}
	return media, nil
}

func (s *businessService) OwnReservations(ctx context.Context) ([]models.Reservation, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservations.GetReservationsByBusiness(ctx, business.ID)
	if err != nil {
		return nil, upstreamError("list business reservations", err)
	}
	return reservations, nil
}

func (s *businessService) OwnCampaigns(ctx context.Context) ([]models.AdCampaign, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaigns.GetCampaignsByBusiness(ctx, business.ID)
	if err != nil {
		return nil, upstreamError("list business campaigns", err)
	}
	return campaigns, nil
}
