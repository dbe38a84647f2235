// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

type campaignService struct {
	campaigns  adapter.CampaignAPI
	businesses adapter.BusinessAPI

	logger *logger.Logger
}

func NewCampaignService(backend *adapter.BackendAdapters, log *logger.Logger) CampaignService {
	return &campaignService{
		campaigns:  backend.Campaign,
		businesses: backend.Business,
		logger:     log,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, campaign models.AdCampaign) (models.AdCampaign, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return models.AdCampaign{}, err
	}

	campaign.Name = strings.TrimSpace(campaign.Name)
	if campaign.Name == "" {
		return models.AdCampaign{}, fmt.Errorf("%w: campaign name is required", ErrValidation)
	}
	for _, ad := range campaign.Ads {
		if err = validateAd(ad); err != nil {
			return models.AdCampaign{}, err
		}
	}

	campaign.ID = uuid.Nil
	campaign.BusinessID = business.ID

	created, err := s.campaigns.CreateCampaign(ctx, campaign)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("business_id", business.ID.String()).Msg("campaign creation failed")
		return models.AdCampaign{}, upstreamError("create campaign", err)
	}
	return created, nil
}

func (s *campaignService) AddAd(ctx context.Context, campaignID uuid.UUID, ad models.Ad) (models.AdCampaign, error) {
	if err := validateAd(ad); err != nil {
		return models.AdCampaign{}, err
	}
	if err := s.checkOwnership(ctx, campaignID); err != nil {
		return models.AdCampaign{}, err
	}

	ad.ID = uuid.Nil
	campaign, err := s.campaigns.AddAdToCampaign(ctx, campaignID, ad)
	if err != nil {
		return models.AdCampaign{}, upstreamError("add ad to campaign", err)
	}
	return campaign, nil
}

func (s *campaignService) DeleteAd(ctx context.Context, campaignID, adID uuid.UUID) error {
	if err := s.checkOwnership(ctx, campaignID); err != nil {
		return err
	}

	if err := s.campaigns.DeleteAdFromCampaign(ctx, campaignID, adID); err != nil {
		return upstreamError("delete ad from campaign", err)
	}
	return nil
}

func (s *campaignService) checkOwnership(ctx context.Context, campaignID uuid.UUID) error {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return err
	}

	campaign, err := s.campaigns.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return upstreamError("get campaign", err)
	}
	if campaign.BusinessID != business.ID {
		return fmt.Errorf("%w: campaign belongs to another business", ErrForbidden)
	}
	return nil
}

func validateAd(ad models.Ad) error {
	if strings.TrimSpace(ad.Name) == "" {
		return fmt.Errorf("%w: ad name is required", ErrValidation)
	}
	if !ad.Type.IsValid() {
		return fmt.Errorf("%w: unknown ad type %q", ErrValidation, ad.Type)
	}

	u, err := url.ParseRequestURI(ad.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: ad url must be an absolute http(s) url", ErrValidation)
	}
	return nil
}
