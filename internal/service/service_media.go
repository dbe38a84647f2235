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

type mediaService struct {
	media      adapter.MediaAPI
	locations  adapter.MediaLocationAPI
	businesses adapter.BusinessAPI

	logger *logger.Logger
}

func NewMediaService(backend *adapter.BackendAdapters, log *logger.Logger) MediaService {
	return &mediaService{
		media:      backend.Media,
		locations:  backend.MediaLocation,
		businesses: backend.Business,
		logger:     log,
	}
}

// Browse loads one page of active media matching filter together with the
// location list used by the filter form.
func (s *mediaService) Browse(ctx context.Context, filter models.MediaFilter) (models.BrowseData, error) {
	if err := validateMediaFilter(filter); err != nil {
		return models.BrowseData{}, err
	}
	filter.Pageable = utils.NormalizePage(filter.Pageable)

	var data models.BrowseData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.media.GetAllFilteredActiveMedia(gctx, filter)
		if err != nil {
			return upstreamError("list active media", err)
		}
		data.Media = page
		return nil
	})
	g.Go(func() error {
		locations, err := s.locations.GetAllMediaLocations(gctx)
		if err != nil {
			return upstreamError("list media locations", err)
		}
		data.Locations = locations
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("browse data loading failed")
		return models.BrowseData{}, err
	}

	return data, nil
}

func validateMediaFilter(filter models.MediaFilter) error {
	switch {
	case filter.MinPrice < 0 || filter.MaxPrice < 0:
		return fmt.Errorf("%w: negative price bound", ErrValidation)
	case filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice:
		return fmt.Errorf("%w: min price above max price", ErrValidation)
	case filter.MinResolutionWidth < 0 || filter.MinResolutionHeight < 0:
		return fmt.Errorf("%w: negative resolution", ErrValidation)
	case filter.OrderBy != "" && filter.OrderBy != "asc" && filter.OrderBy != "desc":
		return fmt.Errorf("%w: order must be asc or desc", ErrValidation)
	}
	return nil
}

func (s *mediaService) GetMedia(ctx context.Context, id uuid.UUID) (models.Media, error) {
	media, err := s.media.GetMediaByID(ctx, id)
	if err != nil {
		return models.Media{}, upstreamError("get media", err)
	}
	return media, nil
}

// CreateMedia lists a new screen for the session owner's business. The
// business must be a media owner; the listing starts PENDING until an
// administrator reviews it.
func (s *mediaService) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return models.Media{}, err
	}
	if !business.MediaOwner {
		return models.Media{}, fmt.Errorf("%w: business is not a media owner", ErrForbidden)
	}

	media.Title = strings.TrimSpace(media.Title)
	switch {
	case media.Title == "":
		return models.Media{}, fmt.Errorf("%w: title is required", ErrValidation)
	case media.Price <= 0:
		return models.Media{}, fmt.Errorf("%w: price must be positive", ErrValidation)
	case media.Resolution.Width <= 0 || media.Resolution.Height <= 0:
		return models.Media{}, fmt.Errorf("%w: resolution is required", ErrValidation)
	case media.LoopDuration < 0:
		return models.Media{}, fmt.Errorf("%w: negative loop duration", ErrValidation)
	}

	media.ID = uuid.Nil
	media.BusinessID = business.ID
	media.OwnerName = business.Name
	media.Status = models.MediaPending

	created, err := s.media.CreateMedia(ctx, media)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("business_id", business.ID.String()).Msg("media creation failed")
		return models.Media{}, upstreamError("create media", err)
	}

	return created, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	business, err := ownBusiness(ctx, s.businesses)
	if err != nil {
		return err
	}

	media, err := s.media.GetMediaByID(ctx, id)
	if err != nil {
		return upstreamError("get media", err)
	}
	if media.BusinessID != business.ID {
		return fmt.Errorf("%w: media belongs to another business", ErrForbidden)
	}

	if err = s.media.DeleteMedia(ctx, id); err != nil {
		return upstreamError("delete media", err)
	}
	return nil
}
