// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

// GetCampaignsByBusiness implements [CampaignAPI].
func (b *httpBackendAdapter) GetCampaignsByBusiness(ctx context.Context, businessID uuid.UUID) ([]models.AdCampaign, error) {
	var campaigns []models.AdCampaign
	resp, err := b.request(ctx).
		SetPathParam("businessId", businessID.String()).
		SetResult(&campaigns).
		Get("/ad-campaigns/business/{businessId}")
	if err = do("get business campaigns", resp, err); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetCampaignByID implements [CampaignAPI].
func (b *httpBackendAdapter) GetCampaignByID(ctx context.Context, id uuid.UUID) (models.AdCampaign, error) {
	var campaign models.AdCampaign
	resp, err := b.request(ctx).
		SetPathParam("id", id.String()).
		SetResult(&campaign).
		Get("/ad-campaigns/{id}")
	if err = do("get campaign", resp, err); err != nil {
		return models.AdCampaign{}, err
	}
	return campaign, nil
}

// CreateCampaign implements [CampaignAPI].
func (b *httpBackendAdapter) CreateCampaign(ctx context.Context, campaign models.AdCampaign) (models.AdCampaign, error) {
	var created models.AdCampaign
	resp, err := b.jsonRequest(ctx, campaign).
		SetResult(&created).
		Post("/ad-campaigns")
	if err = do("create campaign", resp, err); err != nil {
		return models.AdCampaign{}, err
	}
	return created, nil
}

// AddAdToCampaign implements [CampaignAPI].
func (b *httpBackendAdapter) AddAdToCampaign(ctx context.Context, campaignID uuid.UUID, ad models.Ad) (models.AdCampaign, error) {
	var campaign models.AdCampaign
	resp, err := b.jsonRequest(ctx, ad).
		SetPathParam("id", campaignID.String()).
		SetResult(&campaign).
		Post("/ad-campaigns/{id}/ads")
	if err = do("add ad", resp, err); err != nil {
		return models.AdCampaign{}, err
	}
	return campaign, nil
}

// DeleteAdFromCampaign implements [CampaignAPI].
func (b *httpBackendAdapter) DeleteAdFromCampaign(ctx context.Context, campaignID, adID uuid.UUID) error {
	resp, err := b.request(ctx).
		SetPathParams(map[string]string{"id": campaignID.String(), "adId": adID.String()}).
		Delete("/ad-campaigns/{id}/ads/{adId}")
	return do("delete ad", resp, err)
}

// DeleteCampaign implements [CampaignAPI].
func (b *httpBackendAdapter) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	resp, err := b.request(ctx).
		SetPathParam("id", id.String()).
		Delete("/ad-campaigns/{id}")
	return do("delete campaign", resp, err)
}
