// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

// GetBusinessByID implements [BusinessAPI].
func (b *httpBackendAdapter) GetBusinessByID(ctx context.Context, id uuid.UUID) (models.Business, error) {
	var business models.Business
	resp, err := b.request(ctx).
		SetPathParam("id", id.String()).
		SetResult(&business).
		Get("/businesses/{id}")
	if err = do("get business", resp, err); err != nil {
		return models.Business{}, err
	}
	return business, nil
}

// GetBusinessByOwner implements [BusinessAPI].
func (b *httpBackendAdapter) GetBusinessByOwner(ctx context.Context, ownerID string) (models.Business, error) {
	var business models.Business
	resp, err := b.request(ctx).
		SetPathParam("ownerId", ownerID).
		SetResult(&business).
		Get("/businesses/owner/{ownerId}")
	if err = do("get owner business", resp, err); err != nil {
		return models.Business{}, err
	}
	return business, nil
}

// CreateBusiness implements [BusinessAPI].
func (b *httpBackendAdapter) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	var created models.Business
	resp, err := b.jsonRequest(ctx, business).
		SetResult(&created).
		Post("/businesses")
	if err = do("create business", resp, err); err != nil {
		return models.Business{}, err
	}
	return created, nil
}

// UpdateBusiness implements [BusinessAPI].
func (b *httpBackendAdapter) UpdateBusiness(ctx context.Context, id uuid.UUID, business models.Business) (models.Business, error) {
	var updated models.Business
	resp, err := b.jsonRequest(ctx, business).
		SetPathParam("id", id.String()).
		SetResult(&updated).
		Put("/businesses/{id}")
	if err = do("update business", resp, err); err != nil {
		return models.Business{}, err
	}
	return updated, nil
}

// GetAllBusinesses implements [BusinessAPI].
func (b *httpBackendAdapter) GetAllBusinesses(ctx context.Context, pageable models.Pageable, status models.VerificationStatus) (models.Page[models.Business], error) {
	q := pageQuery(pageable)
	if status != "" {
		q.Set("verificationStatus", string(status))
	}

	var page models.Page[models.Business]
	resp, err := b.request(ctx).
		SetQueryParamsFromValues(q).
		SetResult(&page).
		Get("/businesses")
	if err = do("list businesses", resp, err); err != nil {
		return models.Page[models.Business]{}, err
	}
	return page, nil
}

// UpdateVerificationStatus implements [BusinessAPI].
func (b *httpBackendAdapter) UpdateVerificationStatus(ctx context.Context, businessID uuid.UUID, status models.VerificationStatus) (models.Verification, error) {
	var verification models.Verification
	resp, err := b.jsonRequest(ctx, models.VerificationUpdate{Status: status}).
		SetPathParam("id", businessID.String()).
		SetResult(&verification).
		Patch("/businesses/{id}/verification")
	if err = do("update verification", resp, err); err != nil {
		return models.Verification{}, err
	}
	return verification, nil
}
