// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/adspace/internal/adapter"
	"github.com/MKhiriev/adspace/internal/logger"
	"github.com/MKhiriev/adspace/internal/utils"
	"github.com/MKhiriev/adspace/models"
	"github.com/google/uuid"
)

type adminService struct {
	media      adapter.MediaAPI
	businesses adapter.BusinessAPI

	logger *logger.Logger
}

func NewAdminService(backend *adapter.BackendAdapters, log *logger.Logger) AdminService {
	return &adminService{
		media:      backend.Media,
		businesses: backend.Business,
		logger:     log,
	}
}

// PendingMedia lists media awaiting review.
func (s *adminService) PendingMedia(ctx context.Context, pageable models.Pageable) (models.Page[models.Media], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return models.Page[models.Media]{}, err
	}

	page, err := s.media.GetAllMedia(ctx, utils.NormalizePage(pageable), models.MediaPending)
	if err != nil {
		return models.Page[models.Media]{}, upstreamError("list pending media", err)
	}
	return page, nil
}

// PendingBusinesses lists businesses awaiting verification.
func (s *adminService) PendingBusinesses(ctx context.Context, pageable models.Pageable) (models.Page[models.Business], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return models.Page[models.Business]{}, err
	}

	page, err := s.businesses.GetAllBusinesses(ctx, utils.NormalizePage(pageable), models.VerificationPending)
	if err != nil {
		return models.Page[models.Business]{}, upstreamError("list pending businesses", err)
	}
	return page, nil
}

func (s *adminService) SetMediaStatus(ctx context.Context, id uuid.UUID, status models.MediaStatus) (models.Media, error) {
	session, err := requireAdmin(ctx)
	if err != nil {
		return models.Media{}, err
	}
	if !status.IsValid() {
		return models.Media{}, fmt.Errorf("%w: unknown media status %q", ErrValidation, status)
	}

	media, err := s.media.UpdateMediaStatus(ctx, id, status)
	if err != nil {
		return models.Media{}, upstreamError("update media status", err)
	}

	logger.FromContext(ctx).Info().
		Str("admin", session.Subject).
		Str("media_id", id.String()).
		Str("status", string(status)).
		Msg("media status changed")
	return media, nil
}

func (s *adminService) SetVerificationStatus(ctx context.Context, businessID uuid.UUID, status models.VerificationStatus) (models.Verification, error) {
	session, err := requireAdmin(ctx)
	if err != nil {
		return models.Verification{}, err
	}
	if !status.IsValid() {
		return models.Verification{}, fmt.Errorf("%w: unknown verification status %q", ErrValidation, status)
	}

	verification, err := s.businesses.UpdateVerificationStatus(ctx, businessID, status)
	if err != nil {
		return models.Verification{}, upstreamError("update verification status", err)
	}

	logger.FromContext(ctx).Info().
		Str("admin", session.Subject).
		Str("business_id", businessID.String()).
		Str("status", string(status)).
		Msg("business verification changed")
	return verification, nil
}
